// Package importer applies a release plan to the catalog.
package importer

import (
	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/resolve"
)

// Match is one plan entry that found its record
type Match struct {
	Name     string
	ID       string
	Group    models.Group
	Rare     bool
	Strategy resolve.Strategy
}

// Unmatched is one plan entry that resolved to nothing
type Unmatched struct {
	Name       string
	Group      models.Group
	Rare       bool
	Suggestion *resolve.Suggestion
}

// Result is the outcome of applying a plan
type Result struct {
	Catalog   *models.Catalog
	Matched   []Match
	Unmatched []Unmatched
}

// Apply computes the catalog the plan describes. old is never modified.
//
// Every record is first reset to Unreleased/Stock/not rare, then each
// assignment is resolved in plan order and, on success, the record takes the
// planned group, classification, rarity and spelling and becomes visible.
// Unresolved names are collected, not fatal.
func Apply(old *models.Catalog, assignments []models.Assignment, r *resolve.Resolver) Result {
	cat := old.Clone()
	for _, ch := range cat.All() {
		ch.Group = models.GroupUnreleased
		ch.Classification = models.ClassificationStock
		ch.IsRare = false
	}

	res := Result{Catalog: cat}
	for _, a := range assignments {
		m, ok := r.Resolve(a.Name, cat)
		if !ok {
			u := Unmatched{Name: a.Name, Group: a.Group, Rare: a.Rare}
			if s, found := resolve.Suggest(a.Name, cat); found {
				u.Suggestion = &s
			}
			res.Unmatched = append(res.Unmatched, u)
			continue
		}

		ch, _ := cat.Get(m.ID)
		ch.Group = a.Group
		ch.Classification = models.ClassificationStock
		if a.Rare {
			ch.Classification = models.ClassificationRecruit
		}
		ch.IsRare = a.Rare
		ch.Hidden = false
		ch.Name = a.Name

		res.Matched = append(res.Matched, Match{
			Name:     a.Name,
			ID:       m.ID,
			Group:    a.Group,
			Rare:     a.Rare,
			Strategy: m.Strategy,
		})
	}
	return res
}
