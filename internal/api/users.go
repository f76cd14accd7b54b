package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meur/mctiers/internal/view"
)

// handleAdminListUsers backs the admin users tab: substring search over
// Discord IDs plus pagination, newest first.
func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	snap := s.container.Snapshot()
	filtered := view.FilterUsersByDiscordID(snap.Users, r.URL.Query().Get("q"))
	pageUsers, totalPages := view.Paginate(filtered, queryPage(r))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users":       pageUsers,
		"total_count": len(filtered),
		"total_pages": totalPages,
	})
}

// handleDeleteUser removes a user account. The user's player records are
// a separate entity and are left alone.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.container.FindUserByID(id) == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	s.container.DeleteUser(r.Context(), id)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
