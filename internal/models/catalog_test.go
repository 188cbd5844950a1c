package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
    "spr-icon-pc-zeta-01": {
        "name": "Zeta",
        "icon": "SPR_Icon_PC_Zeta_01.png",
        "group": "Katovic",
        "classification": "Recruit",
        "is_rare": true,
        "sort_order": 2,
        "hidden": false
    },
    "spr-icon-pc-alpha-01": {
        "name": "Alpha",
        "icon": "SPR_Icon_PC_Alpha_01.png",
        "group": "Stock Characters",
        "classification": "Stock",
        "is_rare": false,
        "sort_order": 0,
        "hidden": true
    }
}
`

func TestDecodeCatalogKeepsDocumentOrder(t *testing.T) {
	cat, issues, err := DecodeCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, []string{"spr-icon-pc-zeta-01", "spr-icon-pc-alpha-01"}, cat.IDs())

	zeta, ok := cat.Get("spr-icon-pc-zeta-01")
	require.True(t, ok)
	assert.Equal(t, GroupKatovic, zeta.Group)
	assert.Equal(t, ClassificationRecruit, zeta.Classification)
	assert.Equal(t, 2, zeta.SortOrder)

	alpha, _ := cat.Get("spr-icon-pc-alpha-01")
	assert.True(t, alpha.Hidden)
}

func TestEncodeMatchesIndentedDocument(t *testing.T) {
	cat, _, err := DecodeCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	out, err := cat.Encode()
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog, string(out))
}

func TestDecodeCatalogCoercesUnknownValues(t *testing.T) {
	doc := `{"spr-icon-pc-nix-01": {"name": "Nix", "icon": "SPR_Icon_PC_Nix_01.png", "group": "Atlantis", "classification": "Legendary"}}`

	cat, issues, err := DecodeCatalog([]byte(doc))
	require.NoError(t, err)

	nix, ok := cat.Get("spr-icon-pc-nix-01")
	require.True(t, ok)
	assert.Equal(t, GroupUnknown, nix.Group)
	assert.Equal(t, ClassificationStock, nix.Classification)
	assert.Equal(t, DefaultSortOrder, nix.SortOrder)

	fields := map[string]bool{}
	for _, is := range issues {
		fields[is.Field] = true
	}
	assert.True(t, fields["group"])
	assert.True(t, fields["classification"])
}

func TestDecodeCatalogReportsIconMismatch(t *testing.T) {
	doc := `{"custom": {"name": "Nix", "icon": "SPR_Icon_PC_Nix_01.png", "group": "Unknown"}}`

	cat, issues, err := DecodeCatalog([]byte(doc))
	require.NoError(t, err)
	assert.True(t, cat.Has("custom"))
	require.Len(t, issues, 1)
	assert.Equal(t, "icon", issues[0].Field)
}

func TestDecodeCatalogRejectsNonObject(t *testing.T) {
	_, _, err := DecodeCatalog([]byte(`[1, 2]`))
	assert.Error(t, err)

	cat, _, err := DecodeCatalog([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestCloneIsDeep(t *testing.T) {
	cat := NewCatalog()
	cat.Put("a", NewCharacter("A.png", "A", false))

	cp := cat.Clone()
	ch, _ := cp.Get("a")
	ch.Name = "changed"
	cp.Put("b", NewCharacter("B.png", "B", false))

	orig, _ := cat.Get("a")
	assert.Equal(t, "A", orig.Name)
	assert.Equal(t, 1, cat.Len())
}

func TestPlanAssignments(t *testing.T) {
	p := Plan{Groups: []PlanGroup{
		{Name: "Katovic", Normal: []string{"Garcia", " "}, Rare: []string{"Mertis"}},
		{Name: "Stock Characters", Normal: []string{"Retiff"}},
	}}
	got, err := p.Assignments()
	require.NoError(t, err)
	assert.Equal(t, []Assignment{
		{Group: GroupKatovic, Name: "Garcia"},
		{Group: GroupKatovic, Name: "Mertis", Rare: true},
		{Group: GroupStockCharacters, Name: "Retiff"},
	}, got)

	_, err = Plan{Groups: []PlanGroup{{Name: "Atlantis"}}}.Assignments()
	assert.Error(t, err)
}
