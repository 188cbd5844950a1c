package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown    = goldmark.New(goldmark.WithExtensions(extension.GFM))
	notesPolicy = bluemonday.UGCPolicy()
)

// RenderNotes converts record notes from markdown to sanitized HTML
func RenderNotes(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(notesPolicy.SanitizeBytes(buf.Bytes())), nil
}
