package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/site"
)

type characterView struct {
	ID string `json:"id"`
	models.Character
	Page  string `json:"page"`
	Stats string `json:"stats,omitempty"`
}

func (s *Server) view(id string, ch *models.Character) characterView {
	v := characterView{ID: id, Character: *ch, Page: site.PagePath(id)}
	if s.stats != nil {
		if state, err := s.stats.ReadStatsState(id); err == nil {
			v.Stats = state.String()
		}
	}
	return v
}

// handleListCharacters returns the catalog in catalog order, optionally
// restricted to one group
func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	cat, err := s.catalog.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	filter := r.URL.Query().Get("group")
	var group models.Group
	if filter != "" {
		g, ok := models.ParseGroup(filter)
		if !ok {
			respondError(w, http.StatusBadRequest, "Unknown group")
			return
		}
		group = g
	}

	characters := make([]characterView, 0, cat.Len())
	for id, ch := range cat.All() {
		if filter != "" && ch.Group != group {
			continue
		}
		characters = append(characters, s.view(id, ch))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"characters":  characters,
		"total_count": len(characters),
	})
}

// handleGetCharacter returns a single record by ID
func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cat, err := s.catalog.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}
	ch, ok := cat.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Character not found")
		return
	}

	respondJSON(w, http.StatusOK, s.view(id, ch))
}
