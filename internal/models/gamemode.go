package models

import "time"

// GameMode is an administered PvP discipline players can be ranked in.
// Removing one does not strip it from players that already reference it.
type GameMode struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
