package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/mctiers/internal/models"
)

func player(username string, modes ...models.PlayerGameMode) models.Player {
	return models.Player{ID: username, Username: username, GameModes: modes}
}

func featuredPlayer(username string, rank int) models.Player {
	p := player(username)
	p.IsFeatured = true
	p.FeaturedRank = &rank
	return p
}

func TestFeaturedOrderAndCap(t *testing.T) {
	three := featuredPlayer("third", 3)
	one := featuredPlayer("first", 1)
	two := featuredPlayer("second", 2)
	plain := player("plain")
	// Featured flag without a rank does not count.
	flagOnly := player("flagOnly")
	flagOnly.IsFeatured = true

	got := Featured([]models.Player{three, plain, one, flagOnly, two})

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Username)
	assert.Equal(t, "second", got[1].Username)
	assert.Equal(t, "third", got[2].Username)
}

func TestFeaturedEmpty(t *testing.T) {
	assert.Empty(t, Featured([]models.Player{player("a"), player("b")}))
}

func TestFilterByMode(t *testing.T) {
	smp := player("smp", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierHT1})
	sky := player("sky", models.PlayerGameMode{GameMode: "Skywars", Tier: models.TierLT2})
	both := player("both",
		models.PlayerGameMode{GameMode: "SMP", Tier: models.TierHT3},
		models.PlayerGameMode{GameMode: "Skywars", Tier: models.TierLT1},
	)
	players := []models.Player{smp, sky, both}

	t.Run("all sentinel returns everything", func(t *testing.T) {
		assert.Equal(t, players, FilterByMode(players, AllModes))
	})

	t.Run("exact match", func(t *testing.T) {
		got := FilterByMode(players, "SMP")
		require.Len(t, got, 2)
		assert.Equal(t, "smp", got[0].Username)
		assert.Equal(t, "both", got[1].Username)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		assert.Empty(t, FilterByMode(players, "smp"))
	})

	t.Run("no matches is empty, not an error", func(t *testing.T) {
		assert.Empty(t, FilterByMode(players, "Bedwars"))
	})
}

func TestSortByBestTier(t *testing.T) {
	ht1 := player("ht1", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierHT1})
	lt3 := player("lt3", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierLT3})
	ht2 := player("ht2", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierHT2})

	got := SortByBestTier(FilterByMode([]models.Player{ht1, lt3, ht2}, "SMP"))

	require.Len(t, got, 3)
	assert.Equal(t, "ht1", got[0].Username)
	assert.Equal(t, "ht2", got[1].Username)
	assert.Equal(t, "lt3", got[2].Username)
}

func TestSortByBestTierSubTiers(t *testing.T) {
	// HT1 sorts before LT1, which sorts before HT2.
	lt1 := player("lt1", models.PlayerGameMode{GameMode: "Sword", Tier: models.TierLT1})
	ht2 := player("ht2", models.PlayerGameMode{GameMode: "Sword", Tier: models.TierHT2})
	ht1 := player("ht1", models.PlayerGameMode{GameMode: "Sword", Tier: models.TierHT1})

	got := SortByBestTier([]models.Player{lt1, ht2, ht1})

	assert.Equal(t, "ht1", got[0].Username)
	assert.Equal(t, "lt1", got[1].Username)
	assert.Equal(t, "ht2", got[2].Username)
}

func TestSortByBestTierUsesMinimumAcrossModes(t *testing.T) {
	multi := player("multi",
		models.PlayerGameMode{GameMode: "SMP", Tier: models.TierLT5},
		models.PlayerGameMode{GameMode: "UHC", Tier: models.TierHT1},
	)
	single := player("single", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierLT1})

	got := SortByBestTier([]models.Player{single, multi})

	assert.Equal(t, "multi", got[0].Username)
}

func TestSortByBestTierUnrankedLast(t *testing.T) {
	unranked := player("unranked")
	ranked := player("ranked", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierLT5})

	got := SortByBestTier([]models.Player{unranked, ranked})

	assert.Equal(t, "ranked", got[0].Username)
	assert.Equal(t, "unranked", got[1].Username)
}

func TestSortByBestTierDoesNotMutateInput(t *testing.T) {
	a := player("a", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierLT2})
	b := player("b", models.PlayerGameMode{GameMode: "SMP", Tier: models.TierHT1})
	players := []models.Player{a, b}

	SortByBestTier(players)

	assert.Equal(t, "a", players[0].Username)
}

func TestPaginate(t *testing.T) {
	var items []int
	for i := 0; i < 25; i++ {
		items = append(items, i)
	}

	t.Run("page lengths", func(t *testing.T) {
		page1, total := Paginate(items, 1)
		assert.Len(t, page1, 10)
		assert.Equal(t, 3, total)

		page3, _ := Paginate(items, 3)
		assert.Len(t, page3, 5)
	})

	t.Run("concatenating pages reproduces the list", func(t *testing.T) {
		var all []int
		_, total := Paginate(items, 1)
		for page := 1; page <= total; page++ {
			pageItems, _ := Paginate(items, page)
			all = append(all, pageItems...)
		}
		assert.Equal(t, items, all)
	})

	t.Run("page is clamped", func(t *testing.T) {
		high, _ := Paginate(items, 99)
		last, _ := Paginate(items, 3)
		assert.Equal(t, last, high)

		low, _ := Paginate(items, 0)
		first, _ := Paginate(items, 1)
		assert.Equal(t, first, low)
	})

	t.Run("empty list", func(t *testing.T) {
		pageItems, total := Paginate([]int{}, 1)
		assert.Empty(t, pageItems)
		assert.Equal(t, 0, total)
	})
}

func TestSearchExact(t *testing.T) {
	players := []models.Player{player("Technoblade"), player("Techno")}

	t.Run("case-insensitive exact match", func(t *testing.T) {
		got := SearchExact(players, "tEcHnObLaDe")
		require.NotNil(t, got)
		assert.Equal(t, "Technoblade", got.Username)
	})

	t.Run("not substring", func(t *testing.T) {
		got := SearchExact(players, "Technob")
		assert.Nil(t, got)
	})

	t.Run("miss is nil, not an error", func(t *testing.T) {
		assert.Nil(t, SearchExact(players, "Herobrine"))
	})
}

func TestFilterByUsername(t *testing.T) {
	players := []models.Player{player("Technoblade"), player("Dream"), player("DreamXD")}

	got := FilterByUsername(players, "dream")
	require.Len(t, got, 2)
	assert.Equal(t, "Dream", got[0].Username)

	assert.Equal(t, players, FilterByUsername(players, ""))
}

func TestFilterUsersByDiscordID(t *testing.T) {
	users := []models.User{
		{ID: "1", DiscordID: "axolotal1212"},
		{ID: "2", DiscordID: "steve#0001"},
	}

	got := FilterUsersByDiscordID(users, "AXO")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Equal(t, users, FilterUsersByDiscordID(users, ""))
}
