package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		icon string
		want string
	}{
		{"SPR_Icon_PC_Retiff_01.png", "spr-icon-pc-retiff-01"},
		{"SPR_Icon_PC_Grandma2_01.png", "spr-icon-pc-grandma2-01"},
		{"SPR_Icon_PC_BaekHo_01.PNG", "spr-icon-pc-baekho-01"},
		{"no_extension", "no-extension"},
	}
	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			got := DeriveID(tt.icon)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DeriveID(tt.icon), "derivation must be pure")
		})
	}
}

func TestPageSlugAndPortrait(t *testing.T) {
	assert.Equal(t, "retiff", PageSlug("spr-icon-pc-retiff-01"))
	assert.Equal(t, "grandma2", PageSlug("spr-icon-pc-grandma2-01"))
	assert.Equal(t, "custom-id", PageSlug("custom-id"))
	assert.Equal(t, "IMG_Portrait_PC_Retiff_01.png", PortraitFile("SPR_Icon_PC_Retiff_01.png"))
}

func TestParseIconFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     ParsedIcon
		ok       bool
	}{
		{"SPR_Icon_PC_Retiff_01.png", ParsedIcon{Name: "Retiff"}, true},
		{"SPR_Icon_PC_BaekHo_01.png", ParsedIcon{Name: "Baek Ho"}, true},
		{"SPR_Icon_PC_Grandma2_01.png", ParsedIcon{Name: "Grandma (Rare)", IsRare: true}, true},
		{"SPR_Icon_PC_SelvaNorte_01.png", ParsedIcon{Name: "Selva Norte"}, true},
		{"SPR_Icon_NPC_Guard_01.png", ParsedIcon{}, false},
		{"SPR_Icon_PC_Retiff_02.png", ParsedIcon{}, false},
		{"portrait.png", ParsedIcon{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, ok := ParseIconFilename(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCharacterDefaults(t *testing.T) {
	ch := NewCharacter("SPR_Icon_PC_Retiff_01.png", "Retiff", false)
	assert.Equal(t, GroupUnknown, ch.Group)
	assert.Equal(t, ClassificationStock, ch.Classification)
	assert.Equal(t, DefaultSortOrder, ch.SortOrder)
	assert.False(t, ch.Hidden)
}

func TestParseGroup(t *testing.T) {
	g, ok := ParseGroup(" city of auch ")
	assert.True(t, ok)
	assert.Equal(t, GroupAuch, g)

	g, ok = ParseGroup("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, GroupUnknown, g)

	assert.Len(t, Groups(), 11)
	assert.Equal(t, "Stock Characters", Groups()[0].String())
	assert.Equal(t, "Unknown", Group(42).String())
}
