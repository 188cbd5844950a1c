package models

import (
	"fmt"
	"strings"
)

// Group is one of the fixed thematic sections of the wiki.
type Group int

// Groups in overview order.
const (
	GroupStockCharacters Group = iota
	GroupReboldouex
	GroupCoimbra
	GroupAuch
	GroupUstiur
	GroupBahamar
	GroupLosToldos
	GroupKatovic
	GroupGigante
	GroupUnreleased
	GroupUnknown
)

var groupNames = [...]string{
	GroupStockCharacters: "Stock Characters",
	GroupReboldouex:      "Cite Of Reboldouex",
	GroupCoimbra:         "Port Of Coimbra",
	GroupAuch:            "City of Auch",
	GroupUstiur:          "Ustiur",
	GroupBahamar:         "Bahamar",
	GroupLosToldos:       "Los Toldos",
	GroupKatovic:         "Katovic",
	GroupGigante:         "Gigante",
	GroupUnreleased:      "Unreleased",
	GroupUnknown:         "Unknown",
}

// Groups returns every group in overview order
func Groups() []Group {
	out := make([]Group, len(groupNames))
	for i := range groupNames {
		out[i] = Group(i)
	}
	return out
}

// Valid reports whether g is a member of the enumerated set
func (g Group) Valid() bool {
	return g >= GroupStockCharacters && g <= GroupUnknown
}

func (g Group) String() string {
	if !g.Valid() {
		return groupNames[GroupUnknown]
	}
	return groupNames[g]
}

// ParseGroup looks up a group by its display name, ignoring case and
// surrounding whitespace.
func ParseGroup(s string) (Group, bool) {
	s = strings.TrimSpace(s)
	for i, name := range groupNames {
		if strings.EqualFold(name, s) {
			return Group(i), true
		}
	}
	return GroupUnknown, false
}

// MarshalText implements encoding.TextMarshaler
func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *Group) UnmarshalText(text []byte) error {
	parsed, ok := ParseGroup(string(text))
	if !ok {
		return fmt.Errorf("unknown group %q", string(text))
	}
	*g = parsed
	return nil
}
