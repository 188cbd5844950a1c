package site

import (
	"bytes"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Stats region markers. Only the text between them is ever replaced.
const (
	StatsBegin = "<!-- STATS_GO_HERE -->"
	StatsEnd   = "<!-- STATS_END -->"
)

var (
	ErrNoStatsRegion        = errors.New("page has no stats region")
	ErrAmbiguousStatsRegion = errors.New("page has more than one stats region")
)

// statsBounds returns the byte offsets of the region content
func statsBounds(page []byte) (start, end int, err error) {
	begin := []byte(StatsBegin)
	switch bytes.Count(page, begin) {
	case 0:
		return 0, 0, ErrNoStatsRegion
	case 1:
	default:
		return 0, 0, ErrAmbiguousStatsRegion
	}
	start = bytes.Index(page, begin) + len(begin)
	rel := bytes.Index(page[start:], []byte(StatsEnd))
	if rel < 0 {
		return 0, 0, ErrNoStatsRegion
	}
	return start, start + rel, nil
}

// StatsRegion returns the current content of the stats region
func StatsRegion(page []byte) (string, error) {
	start, end, err := statsBounds(page)
	if err != nil {
		return "", err
	}
	return string(page[start:end]), nil
}

// SpliceStats replaces the content of the single stats region with
// fragment. The markers and everything outside them are kept.
func SpliceStats(page []byte, fragment string) ([]byte, error) {
	start, end, err := statsBounds(page)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(page) + len(fragment))
	buf.Write(page[:start])
	buf.WriteByte('\n')
	buf.WriteString(strings.TrimSpace(fragment))
	buf.WriteByte('\n')
	buf.Write(page[end:])
	return buf.Bytes(), nil
}

var fragmentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// SanitizeFragment cleans a model-produced HTML snippet: a surrounding
// markdown code fence is dropped, then markup is restricted to user content
// elements plus class attributes. Comments, and so region markers, never
// survive.
func SanitizeFragment(raw string) string {
	return strings.TrimSpace(fragmentPolicy.Sanitize(stripFence(raw)))
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}
