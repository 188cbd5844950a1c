package resolve

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/meur/gemwiki/internal/models"
)

// Suggestion is the nearest record name to an unresolved display name
type Suggestion struct {
	ID       string
	Name     string
	Distance int
}

// Suggest finds the record name with the smallest edit distance to name,
// compared in lowercase. It only feeds operator reports and is never applied.
func Suggest(name string, cat *models.Catalog) (Suggestion, bool) {
	want := strings.ToLower(name)
	best := Suggestion{Distance: -1}
	for id, ch := range cat.All() {
		d := levenshtein.ComputeDistance(want, strings.ToLower(ch.Name))
		if best.Distance < 0 || d < best.Distance {
			best = Suggestion{ID: id, Name: ch.Name, Distance: d}
		}
	}
	return best, best.Distance >= 0
}
