package api

import (
	"net/http"

	"github.com/meur/gemwiki/internal/models"
)

type groupView struct {
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Visible int    `json:"visible"`
}

// handleListGroups returns every group in overview order with its counts
func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	cat, err := s.catalog.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	groups := make([]groupView, 0, len(models.Groups()))
	for _, g := range models.Groups() {
		v := groupView{Name: g.String()}
		for _, id := range cat.InGroup(g) {
			ch, _ := cat.Get(id)
			v.Total++
			if !ch.Hidden {
				v.Visible++
			}
		}
		groups = append(groups, v)
	}

	respondJSON(w, http.StatusOK, groups)
}
