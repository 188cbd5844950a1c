package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/gemwiki/internal/models"
)

func catalog() *models.Catalog {
	cat := models.NewCatalog()
	for _, icon := range []string{
		"SPR_Icon_PC_Garcia_01.png",
		"SPR_Icon_PC_Mertis_01.png",
		"SPR_Icon_PC_Viki_01.png",
	} {
		p, _ := models.ParseIconFilename(icon)
		ch := models.NewCharacter(icon, p.Name, p.IsRare)
		ch.Group = models.GroupKatovic
		cat.Put(models.DeriveID(icon), ch)
	}
	retiff := models.NewCharacter("SPR_Icon_PC_Retiff_01.png", "Retiff", false)
	retiff.Group = models.GroupStockCharacters
	cat.Put("spr-icon-pc-retiff-01", retiff)
	return cat
}

func TestUnknownID(t *testing.T) {
	cat := catalog()
	assert.ErrorIs(t, Rename(cat, "nope", "x"), ErrNotFound)
	assert.ErrorIs(t, SetHidden(cat, "nope", true), ErrNotFound)
	assert.ErrorIs(t, SetGroup(cat, "nope", models.GroupAuch), ErrNotFound)
	assert.ErrorIs(t, SetClassification(cat, "nope", models.ClassificationScout), ErrNotFound)
	assert.ErrorIs(t, Annotate(cat, "nope", "x"), ErrNotFound)
	_, err := ToggleHidden(cat, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRename(t *testing.T) {
	cat := catalog()
	require.NoError(t, Rename(cat, "spr-icon-pc-viki-01", "  Viki the Brave "))
	ch, _ := cat.Get("spr-icon-pc-viki-01")
	assert.Equal(t, "Viki the Brave", ch.Name)

	assert.Error(t, Rename(cat, "spr-icon-pc-viki-01", "   "))
}

func TestSetClassificationTracksRarity(t *testing.T) {
	cat := catalog()
	id := "spr-icon-pc-garcia-01"

	require.NoError(t, SetClassification(cat, id, models.ClassificationRecruit))
	ch, _ := cat.Get(id)
	assert.True(t, ch.IsRare)

	require.NoError(t, SetClassification(cat, id, models.ClassificationScout))
	assert.False(t, ch.IsRare)
	assert.Equal(t, models.ClassificationScout, ch.Classification)

	assert.Error(t, SetClassification(cat, id, models.Classification(42)))
}

func TestVisibility(t *testing.T) {
	cat := catalog()
	id := "spr-icon-pc-mertis-01"

	hidden, err := ToggleHidden(cat, id)
	require.NoError(t, err)
	assert.True(t, hidden)

	hidden, err = ToggleHidden(cat, id)
	require.NoError(t, err)
	assert.False(t, hidden)

	require.NoError(t, SetHidden(cat, id, true))
	ch, _ := cat.Get(id)
	assert.True(t, ch.Hidden)
}

func TestReorder(t *testing.T) {
	cat := catalog()
	applied, unknown := Reorder(cat, models.GroupKatovic, []string{"viki", "Retiff", "", "Garcia", "Nobody"})

	assert.Equal(t, []string{"spr-icon-pc-viki-01", "spr-icon-pc-garcia-01"}, applied)
	assert.Equal(t, []string{"Retiff", "Nobody"}, unknown, "names outside the group are unknown")

	viki, _ := cat.Get("spr-icon-pc-viki-01")
	garcia, _ := cat.Get("spr-icon-pc-garcia-01")
	mertis, _ := cat.Get("spr-icon-pc-mertis-01")
	assert.Equal(t, 0, viki.SortOrder)
	assert.Equal(t, 1, garcia.SortOrder)
	assert.Equal(t, models.DefaultSortOrder, mertis.SortOrder)
}

func TestAnnotateAndMove(t *testing.T) {
	cat := catalog()
	id := "spr-icon-pc-retiff-01"
	require.NoError(t, Annotate(cat, id, "\n**Tank** build\n"))
	require.NoError(t, SetGroup(cat, id, models.GroupAuch))

	ch, _ := cat.Get(id)
	assert.Equal(t, "**Tank** build", ch.Notes)
	assert.Equal(t, models.GroupAuch, ch.Group)
}

func TestParseNameList(t *testing.T) {
	got := ParseNameList("Viki\n\n# top tier\n  Garcia  \r\nMertis")
	assert.Equal(t, []string{"Viki", "Garcia", "Mertis"}, got)
}
