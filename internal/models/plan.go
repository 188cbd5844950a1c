package models

import (
	"fmt"
	"strings"
)

// Plan is a hand-authored group assignment for one release
type Plan struct {
	Aliases map[string]string `yaml:"aliases"`
	Groups  []PlanGroup       `yaml:"groups"`
}

// PlanGroup lists the characters of one group
type PlanGroup struct {
	Name   string   `yaml:"name"`
	Normal []string `yaml:"normal"`
	Rare   []string `yaml:"rare"`
}

// Assignment is a single (group, display name, rarity) entry of a plan
type Assignment struct {
	Group Group
	Name  string
	Rare  bool
}

// Assignments flattens the plan in file order: for every group its normal
// names, then its rare names. An unknown group name fails the whole plan.
func (p Plan) Assignments() ([]Assignment, error) {
	var out []Assignment
	for i, pg := range p.Groups {
		g, ok := ParseGroup(pg.Name)
		if !ok {
			return nil, fmt.Errorf("plan group %d: unknown group %q", i, pg.Name)
		}
		for _, name := range pg.Normal {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, Assignment{Group: g, Name: name})
			}
		}
		for _, name := range pg.Rare {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, Assignment{Group: g, Name: name, Rare: true})
			}
		}
	}
	return out, nil
}
