package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOrder(t *testing.T) {
	// The enumeration is totally ordered, best first.
	expected := []Tier{"HT1", "LT1", "HT2", "LT2", "HT3", "LT3", "HT4", "LT4", "HT5", "LT5"}
	assert.Equal(t, expected, Tiers)

	for i, tier := range Tiers {
		assert.Equal(t, i, tier.Index())
		assert.True(t, tier.Valid())
	}

	assert.Less(t, TierHT1.Index(), TierLT1.Index())
	assert.Less(t, TierLT1.Index(), TierHT2.Index())
}

func TestTierUnknown(t *testing.T) {
	assert.Equal(t, -1, Tier("S").Index())
	assert.False(t, Tier("ht1").Valid())
	assert.False(t, Tier("").Valid())
}

func TestTierHigh(t *testing.T) {
	assert.True(t, TierHT3.High())
	assert.False(t, TierLT3.High())
}

func TestBestTierIndex(t *testing.T) {
	tests := []struct {
		name  string
		modes []PlayerGameMode
		want  int
	}{
		{
			name: "single mode",
			modes: []PlayerGameMode{
				{GameMode: "SMP", Tier: TierHT2},
			},
			want: TierHT2.Index(),
		},
		{
			name: "minimum across modes",
			modes: []PlayerGameMode{
				{GameMode: "SMP", Tier: TierLT4},
				{GameMode: "Skywars", Tier: TierHT1},
				{GameMode: "UHC", Tier: TierLT2},
			},
			want: 0,
		},
		{
			name:  "no modes is undefined",
			modes: nil,
			want:  -1,
		},
		{
			name: "unknown tier ignored",
			modes: []PlayerGameMode{
				{GameMode: "SMP", Tier: "S"},
				{GameMode: "UHC", Tier: TierLT5},
			},
			want: TierLT5.Index(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{GameModes: tt.modes}
			assert.Equal(t, tt.want, p.BestTierIndex())
		})
	}
}
