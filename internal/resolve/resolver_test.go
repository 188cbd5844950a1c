package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/gemwiki/internal/models"
)

func fixture() *models.Catalog {
	cat := models.NewCatalog()
	add := func(icon, name string) {
		cat.Put(models.DeriveID(icon), models.NewCharacter(icon, name, false))
	}
	add("SPR_Icon_PC_Retiff_01.png", "Retiff")
	add("SPR_Icon_PC_Echella_01.png", "Echella")
	add("SPR_Icon_PC_Tikanile_01.png", "Tika")
	add("SPR_Icon_PC_Ganazu_01.png", "Ganazu")
	add("SPR_Icon_PC_Ganazu2_01.png", "Ganazu (Rare)")
	add("SPR_Icon_PC_Backho_01.png", "Backho")
	add("SPR_Icon_PC_Emilia_01.png", "Emilia")
	add("SPR_Icon_PC_Emilia3_01.png", "Emilia (Rare)")
	return cat
}

func TestResolveStrategies(t *testing.T) {
	cat := fixture()
	r := Default(nil)

	tests := []struct {
		name     string
		input    string
		wantID   string
		strategy Strategy
	}{
		{"exact ignores case", "retiff", "spr-icon-pc-retiff-01", StrategyExact},
		{"alias then exact", "Baek Ho", "spr-icon-pc-backho-01", StrategyExact},
		{"alias then id segment", "Reckless Emilia", "spr-icon-pc-emilia3-01", StrategyContains},
		{"id segment without alias", "Tikanile", "spr-icon-pc-tikanile-01", StrategyContains},
		{"plain exact beats versions", "Emilia", "spr-icon-pc-emilia-01", StrategyExact},
		{"fuzzy typo", "Echela", "spr-icon-pc-echella-01", StrategyFuzzy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := r.Resolve(tt.input, cat)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, m.ID)
			assert.Equal(t, tt.strategy, m.Strategy)
		})
	}
}

func TestResolveAliasSpellingsShareTarget(t *testing.T) {
	cat := fixture()
	r := Default(nil)

	a, ok := r.Resolve("Cold Hearted Ganuzu", cat)
	require.True(t, ok)
	b, ok := r.Resolve("Cold Hearted Ganazu", cat)
	require.True(t, ok)

	assert.Equal(t, "spr-icon-pc-ganazu2-01", a.ID)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "Ganazu2", a.Alias)
}

func TestResolveNotFound(t *testing.T) {
	_, ok := Default(nil).Resolve("Zzyzx", fixture())
	assert.False(t, ok)

	_, ok = Default(nil).Resolve("Retiff", models.NewCatalog())
	assert.False(t, ok)
}

func TestFuzzyUsesUnaliasedName(t *testing.T) {
	r := New(map[string]string{"Retif": "Nobody"})

	m, ok := r.Resolve("Retif", fixture())
	require.True(t, ok)
	assert.Equal(t, "spr-icon-pc-retiff-01", m.ID)
	assert.Equal(t, StrategyFuzzy, m.Strategy)
	assert.Equal(t, "Nobody", m.Alias)
	assert.Greater(t, m.Score, FuzzyCutoff)
}

func TestResolveTiesGoToCatalogOrder(t *testing.T) {
	cat := models.NewCatalog()
	cat.Put("spr-icon-pc-twin-01", models.NewCharacter("SPR_Icon_PC_Twin_01.png", "Twin", false))
	cat.Put("spr-icon-pc-twin2-01", models.NewCharacter("SPR_Icon_PC_Twin2_01.png", "Twin", false))

	m, ok := New(nil).Resolve("twin", cat)
	require.True(t, ok)
	assert.Equal(t, "spr-icon-pc-twin-01", m.ID)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 0.75, Similarity("abcd", "bcde"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("Retiff", "Retiff"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("Zzyzx", "Retiff"), 1e-9)
}

func TestSuggest(t *testing.T) {
	s, ok := Suggest("Retifff", fixture())
	require.True(t, ok)
	assert.Equal(t, "Retiff", s.Name)
	assert.Equal(t, 1, s.Distance)

	_, ok = Suggest("Retiff", models.NewCatalog())
	assert.False(t, ok)
}

func TestMergeAliasesDoesNotMutate(t *testing.T) {
	base := DefaultAliases()
	merged := MergeAliases(base, map[string]string{"Edward": "Eddie", "New": "Thing"})
	assert.Equal(t, "Eddie", merged["Edward"])
	assert.Equal(t, "Eduardo", base["Edward"])
	_, ok := base["New"]
	assert.False(t, ok)
}
