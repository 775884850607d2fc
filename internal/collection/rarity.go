package collection

import (
	"time"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// raritySalt keeps rarity independent of icon colors drawn from the same name hash
const raritySalt = 0x52415249

// rarityThresholds are checked in order; the first roll below the bound wins
var rarityThresholds = []struct {
	bound  int
	rarity domain.Rarity
}{
	{RarityLegendaryThreshold, domain.RarityLegendary},
	{RarityEpicThreshold, domain.RarityEpic},
	{RarityRareThreshold, domain.RarityRare},
	{RarityUncommonThreshold, domain.RarityUncommon},
}

// RarityConfigs holds the display settings of every rarity, common first.
var RarityConfigs = map[domain.Rarity]domain.RarityConfig{
	domain.RarityCommon:    {Rarity: domain.RarityCommon, Label: "コモン", Color: "#6B7280", Background: "#F3F4F6", Border: "#D1D5DB"},
	domain.RarityUncommon:  {Rarity: domain.RarityUncommon, Label: "アンコモン", Color: "#059669", Background: "#ECFDF5", Border: "#6EE7B7"},
	domain.RarityRare:      {Rarity: domain.RarityRare, Label: "レア", Color: "#2563EB", Background: "#EFF6FF", Border: "#93C5FD"},
	domain.RarityEpic:      {Rarity: domain.RarityEpic, Label: "エピック", Color: "#7C3AED", Background: "#F5F3FF", Border: "#C4B5FD", Sparkle: true},
	domain.RarityLegendary: {Rarity: domain.RarityLegendary, Label: "レジェンダリー", Color: "#D97706", Background: "#FFFBEB", Border: "#FCD34D", Sparkle: true},
}

// GetRarityConfig returns the display config for r, falling back to common.
func GetRarityConfig(r domain.Rarity) domain.RarityConfig {
	if cfg, ok := RarityConfigs[r]; ok {
		return cfg
	}
	return RarityConfigs[domain.RarityCommon]
}

// DetermineRarity classifies an item by its normalized name and, when given, the
// UTC day it was created. The same inputs always yield the same rarity.
func DetermineRarity(name string, createdAt *time.Time) domain.Rarity {
	key := utils.NormalizeName(name)
	if createdAt != nil && !createdAt.IsZero() {
		key += "|" + createdAt.UTC().Format(RarityDateLayout)
	}
	return rarityForRoll(utils.Bucket(utils.Mix(utils.StableHash(key), raritySalt), RarityRollRange))
}

func rarityForRoll(roll int) domain.Rarity {
	for _, t := range rarityThresholds {
		if roll < t.bound {
			return t.rarity
		}
	}
	return domain.RarityCommon
}

// itemRarity classifies a stored item
func itemRarity(item domain.Item) domain.Rarity {
	createdAt := item.CreatedAt
	return DetermineRarity(item.Name, &createdAt)
}
