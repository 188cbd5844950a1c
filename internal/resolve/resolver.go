// Package resolve maps human-entered display names to catalog identifiers.
//
// Strategies are tried in a fixed order and the first hit wins:
//
//  1. alias substitution (static table)
//  2. caseless equality with a record name
//  3. the squashed lowercase name as a hyphen-delimited segment of an id
//  4. closest record name by similarity ratio, cutoff 0.6, using the
//     original unaliased name
//
// Ties inside a strategy go to the record that comes first in catalog order.
package resolve

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"

	"github.com/meur/gemwiki/internal/models"
)

// FuzzyCutoff is the minimum similarity ratio accepted by the fuzzy strategy
const FuzzyCutoff = 0.6

// Strategy identifies which step produced a match
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyExact
	StrategyContains
	StrategyFuzzy
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyContains:
		return "id"
	case StrategyFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Match is a successful resolution
type Match struct {
	ID       string
	Strategy Strategy
	Alias    string  // substituted name, empty when no alias applied
	Score    float64 // similarity ratio, fuzzy strategy only
}

// Resolver resolves display names against a catalog
type Resolver struct {
	aliases map[string]string
	cutoff  float64
}

// New creates a Resolver using exactly the given alias table
func New(aliases map[string]string) *Resolver {
	if aliases == nil {
		aliases = map[string]string{}
	}
	return &Resolver{aliases: aliases, cutoff: FuzzyCutoff}
}

// Default creates a Resolver with the built-in aliases overlaid by extra
func Default(extra map[string]string) *Resolver {
	return New(MergeAliases(builtinAliases, extra))
}

// Alias returns the substitution registered for name, if any
func (r *Resolver) Alias(name string) (string, bool) {
	target, ok := r.aliases[name]
	return target, ok
}

// Resolve locates the record for name. A miss is reported with ok=false and
// is never an error.
func (r *Resolver) Resolve(name string, cat *models.Catalog) (Match, bool) {
	target := name
	alias, aliased := r.aliases[name]
	if aliased {
		target = alias
	} else {
		alias = ""
	}

	if id, ok := exactName(target, cat); ok {
		return Match{ID: id, Strategy: StrategyExact, Alias: alias}, true
	}

	if squashed := strings.ToLower(strings.ReplaceAll(target, " ", "")); squashed != "" {
		needle := "-" + squashed + "-"
		for id := range cat.All() {
			if strings.Contains(id, needle) {
				return Match{ID: id, Strategy: StrategyContains, Alias: alias}, true
			}
		}
	}

	if candidate, score, ok := r.closest(name, cat); ok {
		for id, ch := range cat.All() {
			if ch.Name == candidate {
				return Match{ID: id, Strategy: StrategyFuzzy, Alias: alias, Score: score}, true
			}
		}
	}
	return Match{}, false
}

func exactName(name string, cat *models.Catalog) (string, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for id, ch := range cat.All() {
		if fold.String(ch.Name) == want {
			return id, true
		}
	}
	return "", false
}

// closest returns the record name with the highest similarity ratio to name,
// provided it reaches the cutoff.
func (r *Resolver) closest(name string, cat *models.Catalog) (string, float64, bool) {
	best, bestScore := "", -1.0
	for _, ch := range cat.All() {
		score := Similarity(ch.Name, name)
		if score >= r.cutoff && score > bestScore {
			best, bestScore = ch.Name, score
		}
	}
	if bestScore < 0 {
		return "", 0, false
	}
	return best, bestScore, true
}

// Similarity is the Ratcliff/Obershelp ratio of two strings compared
// character by character: 2*M/T, M matched characters out of T in total.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
