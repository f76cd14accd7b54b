package models

import "strings"

// Tier is a skill rank label for one game mode. The enumeration is fixed
// and totally ordered: HT1 is the best, LT5 the worst. The HT/LT prefix
// marks the high/low sub-tier and only matters for display.
type Tier string

const (
	TierHT1 Tier = "HT1"
	TierLT1 Tier = "LT1"
	TierHT2 Tier = "HT2"
	TierLT2 Tier = "LT2"
	TierHT3 Tier = "HT3"
	TierLT3 Tier = "LT3"
	TierHT4 Tier = "HT4"
	TierLT4 Tier = "LT4"
	TierHT5 Tier = "HT5"
	TierLT5 Tier = "LT5"
)

// Tiers lists every tier in rank order, best first.
var Tiers = []Tier{
	TierHT1, TierLT1,
	TierHT2, TierLT2,
	TierHT3, TierLT3,
	TierHT4, TierLT4,
	TierHT5, TierLT5,
}

// Index returns the tier's position in rank order (HT1 = 0), or -1 for an
// unknown value.
func (t Tier) Index() int {
	for i, tier := range Tiers {
		if t == tier {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the ten known tiers.
func (t Tier) Valid() bool {
	return t.Index() >= 0
}

// High reports whether t is a high sub-tier.
func (t Tier) High() bool {
	return strings.HasPrefix(string(t), "HT")
}
