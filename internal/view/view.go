// Package view contains the pure projections the screens render over a
// state snapshot. None of them mutate their input.
package view

import (
	"sort"
	"strings"

	"github.com/meur/mctiers/internal/models"
)

// PageSize is the fixed number of entries per page.
const PageSize = 10

// AllModes is the filter sentinel that disables game mode filtering.
const AllModes = "all"

// Featured returns up to three players holding a featured rank slot,
// ordered by slot (1 first).
func Featured(players []models.Player) []models.Player {
	var featured []models.Player
	for _, p := range players {
		if p.IsFeatured && p.FeaturedRank != nil {
			featured = append(featured, p)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return *featured[i].FeaturedRank < *featured[j].FeaturedRank
	})
	if len(featured) > 3 {
		featured = featured[:3]
	}
	return featured
}

// FilterByMode returns the players with at least one entry for the given
// game mode name (case-sensitive exact match). The AllModes sentinel
// returns the input unfiltered.
func FilterByMode(players []models.Player, mode string) []models.Player {
	if mode == AllModes {
		return players
	}
	var filtered []models.Player
	for _, p := range players {
		for _, gm := range p.GameModes {
			if gm.GameMode == mode {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// SortByBestTier returns a copy sorted ascending by each player's best
// (minimum-index) tier: HT1 first, then LT1, then HT2. Players with no
// ranked entry sort last. The sort is stable.
func SortByBestTier(players []models.Player) []models.Player {
	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].BestTierIndex(), sorted[j].BestTierIndex()
		if a < 0 {
			return false
		}
		if b < 0 {
			return true
		}
		return a < b
	})
	return sorted
}

// Paginate slices items into the 1-based page of PageSize entries and
// returns it with the total page count. Out-of-range page numbers are
// clamped; an empty list yields page 1 of 0.
func Paginate[T any](items []T, page int) ([]T, int) {
	totalPages := (len(items) + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// SearchExact returns the player whose username matches the query
// case-insensitively and exactly (not substring), or nil. A miss is a
// normal outcome, not an error.
func SearchExact(players []models.Player, query string) *models.Player {
	for i := range players {
		if strings.EqualFold(players[i].Username, query) {
			p := players[i]
			return &p
		}
	}
	return nil
}

// FilterByUsername returns the players whose username contains the query
// (case-insensitive). An empty query returns the input unfiltered.
func FilterByUsername(players []models.Player, query string) []models.Player {
	if query == "" {
		return players
	}
	query = strings.ToLower(query)
	var filtered []models.Player
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Username), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterUsersByDiscordID returns the users whose Discord ID contains the
// query (case-insensitive). An empty query returns the input unfiltered.
func FilterUsersByDiscordID(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	query = strings.ToLower(query)
	var filtered []models.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.DiscordID), query) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
