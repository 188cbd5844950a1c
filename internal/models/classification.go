package models

import (
	"fmt"
	"strings"
)

// Classification drives the border styling of a character card.
type Classification int

const (
	ClassificationStock Classification = iota
	ClassificationScout
	ClassificationRecruit
)

var classificationNames = [...]string{
	ClassificationStock:   "Stock",
	ClassificationScout:   "Scout",
	ClassificationRecruit: "Recruit",
}

// Classifications returns every classification in display order
func Classifications() []Classification {
	return []Classification{ClassificationStock, ClassificationScout, ClassificationRecruit}
}

// Valid reports whether c is a known classification
func (c Classification) Valid() bool {
	return c >= ClassificationStock && c <= ClassificationRecruit
}

func (c Classification) String() string {
	if !c.Valid() {
		return classificationNames[ClassificationStock]
	}
	return classificationNames[c]
}

// BorderClass returns the CSS class used for icon and portrait borders
func (c Classification) BorderClass() string {
	switch c {
	case ClassificationScout:
		return "border-scout"
	case ClassificationRecruit:
		return "border-recruit"
	default:
		return "border-stock"
	}
}

// ParseClassification looks up a classification by name, ignoring case.
func ParseClassification(s string) (Classification, bool) {
	s = strings.TrimSpace(s)
	for i, name := range classificationNames {
		if strings.EqualFold(name, s) {
			return Classification(i), true
		}
	}
	return ClassificationStock, false
}

// MarshalText implements encoding.TextMarshaler
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Classification) UnmarshalText(text []byte) error {
	parsed, ok := ParseClassification(string(text))
	if !ok {
		return fmt.Errorf("unknown classification %q", string(text))
	}
	*c = parsed
	return nil
}
