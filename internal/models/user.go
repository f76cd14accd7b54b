package models

import "time"

// User is a registered visitor, identified by a Discord ID. Discord IDs
// are unique under case-insensitive, trimmed comparison; the owner flag is
// granted when the identity matches the configured owner identity.
type User struct {
	ID        string    `json:"id"`
	DiscordID string    `json:"discord_id"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}
