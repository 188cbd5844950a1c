// Package editor holds the single-record curation operations behind the
// rename, classify, move, hide, show, toggle, reorder and note commands.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/meur/gemwiki/internal/models"
)

// ErrNotFound is returned for an id that is not in the catalog
var ErrNotFound = errors.New("character not found")

func get(cat *models.Catalog, id string) (*models.Character, error) {
	ch, ok := cat.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ch, nil
}

// Rename sets the display name. Blank names are rejected.
func Rename(cat *models.Catalog, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rename %s: empty name", id)
	}
	ch, err := get(cat, id)
	if err != nil {
		return err
	}
	ch.Name = name
	return nil
}

// SetClassification changes the border class and keeps the legacy rarity
// flag in step with it.
func SetClassification(cat *models.Catalog, id string, c models.Classification) error {
	if !c.Valid() {
		return fmt.Errorf("classification %d is not valid", int(c))
	}
	ch, err := get(cat, id)
	if err != nil {
		return err
	}
	ch.Classification = c
	ch.IsRare = c == models.ClassificationRecruit
	return nil
}

// SetGroup moves a record to g
func SetGroup(cat *models.Catalog, id string, g models.Group) error {
	if !g.Valid() {
		return fmt.Errorf("group %d is not valid", int(g))
	}
	ch, err := get(cat, id)
	if err != nil {
		return err
	}
	ch.Group = g
	return nil
}

func SetHidden(cat *models.Catalog, id string, hidden bool) error {
	ch, err := get(cat, id)
	if err != nil {
		return err
	}
	ch.Hidden = hidden
	return nil
}

// ToggleHidden flips visibility and returns the new state
func ToggleHidden(cat *models.Catalog, id string) (bool, error) {
	ch, err := get(cat, id)
	if err != nil {
		return false, err
	}
	ch.Hidden = !ch.Hidden
	return ch.Hidden, nil
}

// Annotate replaces the markdown notes of a record. Empty text clears them.
func Annotate(cat *models.Catalog, id, markdown string) error {
	ch, err := get(cat, id)
	if err != nil {
		return err
	}
	ch.Notes = strings.TrimSpace(markdown)
	return nil
}

// Reorder assigns sort_order 0..n-1 to the records of group g named in
// names, in the given order. Names are matched caselessly against the
// records of the group; the first match wins and a record is ordered at most
// once. Names that match nothing are returned in unknown. Records of g that
// are not named keep their current sort order.
func Reorder(cat *models.Catalog, g models.Group, names []string) (applied, unknown []string) {
	fold := cases.Fold()
	members := cat.InGroup(g)
	used := make(map[string]bool, len(members))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		want := fold.String(name)
		found := ""
		for _, id := range members {
			if used[id] {
				continue
			}
			ch, _ := cat.Get(id)
			if fold.String(ch.Name) == want {
				found = id
				break
			}
		}
		if found == "" {
			unknown = append(unknown, name)
			continue
		}
		ch, _ := cat.Get(found)
		ch.SortOrder = len(applied)
		used[found] = true
		applied = append(applied, found)
	}
	return applied, unknown
}

// ParseNameList splits a sort list into names, one per line, skipping
// blank lines and lines starting with '#'.
func ParseNameList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
