package api

import (
	"net/http"
	"time"

	"github.com/meur/mctiers/internal/models"
)

// sessionCookie names the slot the current user identity persists under,
// so a returning visitor does not need to re-authenticate.
const sessionCookie = "mctiers_session"

type credentials struct {
	DiscordID string `json:"discord_id"`
}

// handleLogin adopts an existing account as the session user. The owner
// identity may log in without an account; one is created on the fly.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := s.container.Login(r.Context(), creds.DiscordID)
	if !ok {
		respondError(w, http.StatusNotFound, "No account found with this Discord ID. Please register first.")
		return
	}

	s.setSession(w, user)
	respondJSON(w, http.StatusOK, user)
}

// handleRegister creates a new account and logs it in
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := s.container.Register(r.Context(), creds.DiscordID)
	if !ok {
		respondError(w, http.StatusConflict, "This Discord ID is already registered. Please login instead.")
		return
	}

	s.setSession(w, user)
	respondJSON(w, http.StatusCreated, user)
}

// handleLogout clears the session. It has no remote effect.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.container.Logout()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// handleMe returns the user the session resolves to
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := s.sessionUser(r)
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) setSession(w http.ResponseWriter, user *models.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    user.ID,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionUser resolves the session cookie against the snapshot.
func (s *Server) sessionUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return s.container.FindUserByID(cookie.Value)
}

// requireOwner admits only the owner account. This is the same boolean
// check the admin screen performs on render, not a trusted security
// boundary; genuine access control lives in the remote store's row-level
// policy.
func (s *Server) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.sessionUser(r)
		if user == nil || !user.IsOwner {
			respondError(w, http.StatusForbidden, "Owner access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
