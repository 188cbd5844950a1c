package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Issue is a problem found, and corrected, while decoding a catalog
type Issue struct {
	ID      string
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.ID, i.Message)
	}
	return fmt.Sprintf("%s.%s: %s", i.ID, i.Field, i.Message)
}

// rawCharacter mirrors Character with optional fields so defaults can be
// told apart from explicit values.
type rawCharacter struct {
	Name           *string `json:"name"`
	Icon           *string `json:"icon"`
	Group          *string `json:"group"`
	Classification *string `json:"classification"`
	IsRare         *bool   `json:"is_rare"`
	SortOrder      *int    `json:"sort_order"`
	Hidden         *bool   `json:"hidden"`
	Notes          string  `json:"notes"`
}

// DecodeCatalog parses a catalog document, preserving key order. Unknown
// group or classification values and missing fields are coerced to their
// defaults and reported as issues instead of failing the load.
func DecodeCatalog(data []byte) (*Catalog, []Issue, error) {
	cat := NewCatalog()
	if len(bytes.TrimSpace(data)) == 0 {
		return cat, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.New("catalog must be a JSON object")
	}

	var issues []Issue
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog key: %w", err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw rawCharacter
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", id, err)
		}
		if cat.Has(id) {
			issues = append(issues, Issue{ID: id, Message: "duplicate key, last entry wins"})
		}
		ch, recIssues := raw.normalize(id)
		issues = append(issues, recIssues...)
		cat.Put(id, ch)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("read catalog end: %w", err)
	}
	return cat, issues, nil
}

func (r rawCharacter) normalize(id string) (*Character, []Issue) {
	var issues []Issue
	note := func(field, format string, args ...any) {
		issues = append(issues, Issue{ID: id, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	ch := &Character{
		Group:          GroupUnknown,
		Classification: ClassificationStock,
		SortOrder:      DefaultSortOrder,
		Notes:          r.Notes,
	}
	if r.Name != nil {
		ch.Name = *r.Name
	} else {
		note("name", "missing")
	}
	if r.Icon != nil {
		ch.Icon = *r.Icon
		if derived := DeriveID(ch.Icon); derived != id {
			note("icon", "derives id %q", derived)
		}
	} else {
		note("icon", "missing")
	}
	if r.Group != nil {
		g, ok := ParseGroup(*r.Group)
		if !ok {
			note("group", "unknown value %q, using %s", *r.Group, GroupUnknown)
		}
		ch.Group = g
	} else {
		note("group", "missing, using %s", GroupUnknown)
	}
	if r.Classification != nil {
		c, ok := ParseClassification(*r.Classification)
		if !ok {
			note("classification", "unknown value %q, using %s", *r.Classification, ClassificationStock)
		}
		ch.Classification = c
	}
	if r.IsRare != nil {
		ch.IsRare = *r.IsRare
	}
	if r.SortOrder != nil {
		ch.SortOrder = *r.SortOrder
	}
	if r.Hidden != nil {
		ch.Hidden = *r.Hidden
	}
	return ch, issues
}
