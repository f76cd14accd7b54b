// Package avatar builds image URLs for the mc-heads.net skin service.
package avatar

import (
	"fmt"
	"strings"

	"github.com/meur/mctiers/internal/models"
)

// DefaultBaseURL is the public skin service.
const DefaultBaseURL = "https://mc-heads.net"

// PlaceholderName is the skin rendered when a player's real username
// cannot be used.
const PlaceholderName = "MHF_Steve"

// Service constructs avatar and body image URLs for players.
type Service struct {
	baseURL string
}

// New creates a Service for the given base URL; empty means DefaultBaseURL.
func New(baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{baseURL: strings.TrimRight(baseURL, "/")}
}

// skinName returns the username to embed in a URL. Non-premium players
// always resolve to the placeholder, whatever their actual username.
func skinName(p *models.Player) string {
	if !p.IsPremium || p.Username == "" {
		return PlaceholderName
	}
	return p.Username
}

// AvatarURL returns the face image URL for a player at the given pixel size.
func (s *Service) AvatarURL(p *models.Player, size int) string {
	return fmt.Sprintf("%s/avatar/%s/%d", s.baseURL, skinName(p), size)
}

// BodyURL returns the full-body render URL for a player at the given pixel size.
func (s *Service) BodyURL(p *models.Player, size int) string {
	return fmt.Sprintf("%s/body/%s/%d", s.baseURL, skinName(p), size)
}
