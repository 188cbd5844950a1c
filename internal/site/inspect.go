package site

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StatsState describes the stats region of a rendered page
type StatsState int

const (
	StatsMissing StatsState = iota // no usable region
	StatsEmpty                     // placeholder only
	StatsFilled                    // extracted stats present
)

func (s StatsState) String() string {
	switch s {
	case StatsEmpty:
		return "empty"
	case StatsFilled:
		return "filled"
	default:
		return "missing"
	}
}

// InspectStats classifies the stats region of page
func InspectStats(page []byte) (StatsState, error) {
	region, err := StatsRegion(page)
	if errors.Is(err, ErrNoStatsRegion) || errors.Is(err, ErrAmbiguousStatsRegion) {
		return StatsMissing, nil
	}
	if err != nil {
		return StatsMissing, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(region))
	if err != nil {
		return StatsMissing, err
	}
	if doc.Find("[data-stats-placeholder]").Length() > 0 {
		return StatsEmpty, nil
	}
	if strings.TrimSpace(doc.Text()) == "" && doc.Find("img, table").Length() == 0 {
		return StatsEmpty, nil
	}
	return StatsFilled, nil
}
