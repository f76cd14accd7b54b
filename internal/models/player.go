package models

import "time"

// Featured rank slots. At most one player holds each at a time.
const (
	FeaturedRankMin = 1
	FeaturedRankMax = 3
)

// PlayerGameMode pairs a game mode name with the tier the player holds in
// it. A player's primary mode is the first entry in list order.
type PlayerGameMode struct {
	GameMode string `json:"game_mode"`
	Tier     Tier   `json:"tier"`
}

// Player represents a ranked player
type Player struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	SkinURL      string           `json:"skin_url"`
	IsPremium    bool             `json:"is_premium"`
	IsTested     bool             `json:"is_tested"`
	IsFeatured   bool             `json:"is_featured"`
	FeaturedRank *int             `json:"featured_rank,omitempty"`
	GameModes    []PlayerGameMode `json:"game_modes"`
	CreatedAt    time.Time        `json:"created_at"`
}

// BestTierIndex returns the minimum tier index across the player's game
// mode entries, or -1 when the player has no ranked entry.
func (p *Player) BestTierIndex() int {
	best := -1
	for _, gm := range p.GameModes {
		idx := gm.Tier.Index()
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best
}

// PlayerCreate is the request body for adding a player
type PlayerCreate struct {
	Username  string           `json:"username"`
	SkinURL   string           `json:"skin_url"`
	IsPremium bool             `json:"is_premium"`
	IsTested  bool             `json:"is_tested"`
	GameModes []PlayerGameMode `json:"game_modes"`
}

// PlayerUpdate is the request body for editing a player. Nil fields are
// left untouched on the remote row. ClearFeaturedRank nulls the rank slot,
// which a nil-able pointer cannot express on its own.
type PlayerUpdate struct {
	Username          *string          `json:"username,omitempty"`
	SkinURL           *string          `json:"skin_url,omitempty"`
	IsPremium         *bool            `json:"is_premium,omitempty"`
	IsTested          *bool            `json:"is_tested,omitempty"`
	IsFeatured        *bool            `json:"is_featured,omitempty"`
	FeaturedRank      *int             `json:"featured_rank,omitempty"`
	ClearFeaturedRank bool             `json:"clear_featured_rank,omitempty"`
	GameModes         []PlayerGameMode `json:"game_modes,omitempty"`
}
