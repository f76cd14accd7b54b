package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/meur/mctiers/internal/avatar"
	"github.com/meur/mctiers/internal/state"
)

// Server holds the HTTP server dependencies
type Server struct {
	container *state.Container
	avatars   *avatar.Service
	router    chi.Router
}

// New creates a new API server
func New(container *state.Container, avatars *avatar.Service) *Server {
	s := &Server{
		container: container,
		avatars:   avatars,
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*.mctiers.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Public screens
		r.Get("/players", s.handleListPlayers)
		r.Get("/players/featured", s.handleFeaturedPlayers)
		r.Get("/players/search", s.handleSearchPlayer)
		r.Get("/gamemodes", s.handleGetGameModes)

		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleMe)
		})

		// Admin screen, owner only
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireOwner)

			r.Get("/players", s.handleAdminListPlayers)
			r.Post("/players", s.handleCreatePlayer)
			r.Put("/players/{id}", s.handleUpdatePlayer)
			r.Delete("/players/{id}", s.handleDeletePlayer)
			r.Put("/players/{id}/featured", s.handleSetFeatured)
			r.Delete("/players/{id}/featured", s.handleRemoveFeatured)

			r.Get("/users", s.handleAdminListUsers)
			r.Delete("/users/{id}", s.handleDeleteUser)

			r.Post("/gamemodes", s.handleAddGameMode)
			r.Delete("/gamemodes/{name}", s.handleRemoveGameMode)
		})
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
