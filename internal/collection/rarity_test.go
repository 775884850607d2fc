package collection

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

func TestDetermineRarity_Deterministic(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	names := []string{"", "りんご", "Old Camera", "🧸", "  spaced   name  "}
	for _, name := range names {
		assert.Equal(t, DetermineRarity(name, &created), DetermineRarity(name, &created), "name %q", name)
		assert.Equal(t, DetermineRarity(name, nil), DetermineRarity(name, nil), "name %q", name)
	}
}

func TestDetermineRarity_NormalizesName(t *testing.T) {
	assert.Equal(t, DetermineRarity("abc", nil), DetermineRarity("ＡＢＣ", nil))
	assert.Equal(t, DetermineRarity("old camera", nil), DetermineRarity("  Old   Camera ", nil))
}

func TestDetermineRarity_DayBucket(t *testing.T) {
	morning := time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 2, 23, 30, 0, 0, time.UTC)
	// Same UTC day regardless of the zone the timestamp carries
	sameInstant := evening.In(time.FixedZone("JST", 9*3600))

	assert.Equal(t, DetermineRarity("mug", &morning), DetermineRarity("mug", &evening))
	assert.Equal(t, DetermineRarity("mug", &evening), DetermineRarity("mug", &sameInstant))

	var zero time.Time
	assert.Equal(t, DetermineRarity("mug", nil), DetermineRarity("mug", &zero))
}

func TestDetermineRarity_Distribution(t *testing.T) {
	const samples = 20000
	counts := make(map[domain.Rarity]int)
	for i := 0; i < samples; i++ {
		counts[DetermineRarity(fmt.Sprintf("item-%d-%d", i, i*31), nil)]++
	}

	legendary := float64(counts[domain.RarityLegendary]) / samples
	common := float64(counts[domain.RarityCommon]) / samples

	assert.Less(t, legendary, 0.05)
	assert.Greater(t, common, 0.5)
	for _, r := range domain.AllRarities() {
		if r == domain.RarityCommon {
			continue
		}
		assert.Greater(t, counts[domain.RarityCommon], counts[r], "common should dominate %s", r)
	}
	assert.Greater(t, counts[domain.RarityUncommon], counts[domain.RarityLegendary])
}

func TestRarityForRoll(t *testing.T) {
	tests := []struct {
		roll     int
		expected domain.Rarity
	}{
		{0, domain.RarityLegendary},
		{4, domain.RarityLegendary},
		{5, domain.RarityEpic},
		{29, domain.RarityEpic},
		{30, domain.RarityRare},
		{99, domain.RarityRare},
		{100, domain.RarityUncommon},
		{299, domain.RarityUncommon},
		{300, domain.RarityCommon},
		{999, domain.RarityCommon},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("roll_%d", tt.roll), func(t *testing.T) {
			assert.Equal(t, tt.expected, rarityForRoll(tt.roll))
		})
	}
}

func TestGetRarityConfig(t *testing.T) {
	for _, r := range domain.AllRarities() {
		cfg := GetRarityConfig(r)
		assert.Equal(t, r, cfg.Rarity)
		assert.NotEmpty(t, cfg.Label)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, cfg.Color)
	}
	assert.Equal(t, domain.RarityCommon, GetRarityConfig("mythic").Rarity)
	assert.True(t, GetRarityConfig(domain.RarityLegendary).Sparkle)
	assert.False(t, GetRarityConfig(domain.RarityCommon).Sparkle)
}
