package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetGameModes returns the administered game modes, alphabetical
func (s *Server) handleGetGameModes(w http.ResponseWriter, r *http.Request) {
	snap := s.container.Snapshot()
	respondJSON(w, http.StatusOK, snap.GameModes)
}

// handleAddGameMode adds a game mode by name. A whitespace-only name is a
// silent no-op, mirroring the container's contract.
func (s *Server) handleAddGameMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.container.AddGameMode(r.Context(), req.Name)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleRemoveGameMode deletes a game mode by name. Players already
// referencing it keep their entries.
func (s *Server) handleRemoveGameMode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s.container.RemoveGameMode(r.Context(), name)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
