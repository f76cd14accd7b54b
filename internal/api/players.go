package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/meur/mctiers/internal/models"
	"github.com/meur/mctiers/internal/view"
)

// playerResponse decorates a player with resolved image URLs. Non-premium
// players resolve to the placeholder skin.
type playerResponse struct {
	models.Player
	AvatarURL string `json:"avatar_url"`
	BodyURL   string `json:"body_url"`
}

func (s *Server) playerResponse(p models.Player) playerResponse {
	return playerResponse{
		Player:    p,
		AvatarURL: s.avatars.AvatarURL(&p, 64),
		BodyURL:   s.avatars.BodyURL(&p, 150),
	}
}

func (s *Server) playerResponses(players []models.Player) []playerResponse {
	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, s.playerResponse(p))
	}
	return out
}

func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// handleListPlayers returns the ranked list screen: filtered by game
// mode, sorted by best tier, paginated.
func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = view.AllModes
	}
	page := queryPage(r)

	snap := s.container.Snapshot()
	filtered := view.FilterByMode(snap.Players, mode)
	sorted := view.SortByBestTier(filtered)
	pagePlayers, totalPages := view.Paginate(sorted, page)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players":     s.playerResponses(pagePlayers),
		"total_count": len(sorted),
		"page":        page,
		"total_pages": totalPages,
	})
}

// handleFeaturedPlayers returns the up-to-three featured players for the
// landing screen, ordered by rank slot.
func (s *Server) handleFeaturedPlayers(w http.ResponseWriter, r *http.Request) {
	snap := s.container.Snapshot()
	respondJSON(w, http.StatusOK, s.playerResponses(view.Featured(snap.Players)))
}

// handleSearchPlayer returns the single player whose username matches the
// query exactly (case-insensitive). A miss is 404, not a failure.
func (s *Server) handleSearchPlayer(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "q is required")
		return
	}

	snap := s.container.Snapshot()
	player := view.SearchExact(snap.Players, query)
	if player == nil {
		respondError(w, http.StatusNotFound, "No player found with that username")
		return
	}

	respondJSON(w, http.StatusOK, s.playerResponse(*player))
}

// --- Admin ---

func (s *Server) findPlayer(id string) *models.Player {
	snap := s.container.Snapshot()
	for i := range snap.Players {
		if snap.Players[i].ID == id {
			p := snap.Players[i]
			return &p
		}
	}
	return nil
}

// handleAdminListPlayers backs the admin players tab: substring search
// plus pagination, newest first.
func (s *Server) handleAdminListPlayers(w http.ResponseWriter, r *http.Request) {
	snap := s.container.Snapshot()
	filtered := view.FilterByUsername(snap.Players, r.URL.Query().Get("q"))
	pagePlayers, totalPages := view.Paginate(filtered, queryPage(r))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players":     s.playerResponses(pagePlayers),
		"total_count": len(filtered),
		"total_pages": totalPages,
	})
}

func validGameModes(gameModes []models.PlayerGameMode) bool {
	for _, gm := range gameModes {
		if gm.GameMode == "" || !gm.Tier.Valid() {
			return false
		}
	}
	return true
}

// handleCreatePlayer adds a new player. The write is forwarded to the
// remote store; the next reload makes it visible.
func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.PlayerCreate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.GameModes) == 0 {
		respondError(w, http.StatusBadRequest, "username and at least one game mode are required")
		return
	}
	if !validGameModes(req.GameModes) {
		respondError(w, http.StatusBadRequest, "Invalid game mode or tier")
		return
	}

	s.container.AddPlayer(r.Context(), &req)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleUpdatePlayer edits the provided fields of an existing player
func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.findPlayer(id) == nil {
		respondError(w, http.StatusNotFound, "Player not found")
		return
	}

	var update models.PlayerUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if update.GameModes != nil && !validGameModes(update.GameModes) {
		respondError(w, http.StatusBadRequest, "Invalid game mode or tier")
		return
	}

	s.container.UpdatePlayer(r.Context(), id, &update)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleDeletePlayer removes a player
func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.findPlayer(id) == nil {
		respondError(w, http.StatusNotFound, "Player not found")
		return
	}

	s.container.DeletePlayer(r.Context(), id)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleSetFeatured assigns an exclusive featured rank slot to a player
func (s *Server) handleSetFeatured(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.findPlayer(id) == nil {
		respondError(w, http.StatusNotFound, "Player not found")
		return
	}

	var req struct {
		Rank int `json:"rank"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rank < models.FeaturedRankMin || req.Rank > models.FeaturedRankMax {
		respondError(w, http.StatusBadRequest, "rank must be 1, 2 or 3")
		return
	}

	s.container.SetFeaturedPlayer(r.Context(), id, req.Rank)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleRemoveFeatured clears a player's featured slot
func (s *Server) handleRemoveFeatured(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.findPlayer(id) == nil {
		respondError(w, http.StatusNotFound, "Player not found")
		return
	}

	s.container.RemoveFeatured(r.Context(), id)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
