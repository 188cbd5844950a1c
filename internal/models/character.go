package models

import (
	"path"
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultSortOrder is used for records that were never ordered by hand.
	DefaultSortOrder = 999

	idPrefix       = "spr-icon-pc-"
	idSuffix       = "-01"
	iconMarker     = "SPR_Icon"
	portraitMarker = "IMG_Portrait"
)

// Character represents one record of the wiki catalog
type Character struct {
	Name           string         `json:"name"`
	Icon           string         `json:"icon"`
	Group          Group          `json:"group"`
	Classification Classification `json:"classification"`
	IsRare         bool           `json:"is_rare"` // legacy, mirrors classification
	SortOrder      int            `json:"sort_order"`
	Hidden         bool           `json:"hidden"`
	Notes          string         `json:"notes,omitempty"` // markdown
}

// NewCharacter returns the default record for a freshly discovered icon
func NewCharacter(icon, name string, isRare bool) *Character {
	return &Character{
		Name:           name,
		Icon:           icon,
		Group:          GroupUnknown,
		Classification: ClassificationStock,
		IsRare:         isRare,
		SortOrder:      DefaultSortOrder,
	}
}

// Clone returns a copy of the record
func (c *Character) Clone() *Character {
	cp := *c
	return &cp
}

// DeriveID computes the stable identifier of a record from its icon filename:
// lowercased, extension stripped, underscores replaced by hyphens.
func DeriveID(icon string) string {
	base := strings.TrimSuffix(icon, path.Ext(icon))
	return strings.ReplaceAll(strings.ToLower(base), "_", "-")
}

// PageSlug is the identifier without the icon prefix and frame suffix, used
// as the page filename.
func PageSlug(id string) string {
	return strings.TrimSuffix(strings.TrimPrefix(id, idPrefix), idSuffix)
}

// PortraitFile maps an icon filename to its portrait counterpart.
func PortraitFile(icon string) string {
	return strings.ReplaceAll(icon, iconMarker, portraitMarker)
}

var iconPattern = regexp.MustCompile(`^SPR_Icon_PC_(\w+?)(\d*)_01\.png$`)

// ParsedIcon is the information recovered from an icon filename
type ParsedIcon struct {
	Name   string
	IsRare bool
}

// ParseIconFilename recognises SPR_Icon_PC_<Name><digits>_01.png. CamelCase
// names are split into words and a numbered variant is marked "(Rare)".
func ParseIconFilename(filename string) (ParsedIcon, bool) {
	m := iconPattern.FindStringSubmatch(filename)
	if m == nil {
		return ParsedIcon{}, false
	}
	name := splitCamel(m[1])
	isRare := m[2] != ""
	if isRare {
		name += " (Rare)"
	}
	return ParsedIcon{Name: name, IsRare: isRare}, true
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
