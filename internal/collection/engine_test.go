package collection

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

var t0 = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func makeItems(n int, categories ...string) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			ID:        fmt.Sprintf("item-%d", i),
			Name:      fmt.Sprintf("モノ%d", i),
			Category:  categories[i%len(categories)],
			CreatedAt: t0.Add(time.Duration(i) * time.Hour),
		}
	}
	return items
}

func achievementIDs(list []domain.Achievement) []string {
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	return ids
}

func progressIDs(list []domain.AchievementProgress) []string {
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	return ids
}

func sumBreakdown(m map[domain.Rarity]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

func TestCalculateExp(t *testing.T) {
	tests := []struct {
		name                      string
		items, categories, streak int
		expected                  int
	}{
		{"zero", 0, 0, 0, 0},
		{"single item", 1, 1, 1, 45},
		{"week streak bonus", 0, 0, 7, 85},
		{"month streak bonus", 0, 0, 30, 300},
		{"negative clamps", -3, -1, -9, 0},
		{"mixed", 10, 3, 7, 275},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateExp(tt.items, tt.categories, tt.streak))
		})
	}
}

func TestCalculateCollectionStats_ZeroState(t *testing.T) {
	stats := CalculateCollectionStats(nil, nil, 0)

	assert.Equal(t, 0, stats.TotalExp)
	assert.Equal(t, 1, stats.Level.Level.Level)
	assert.Empty(t, stats.UnlockedAchievements)
	assert.Empty(t, stats.UnlockedBadges)
	assert.Empty(t, stats.CategoryBreakdown)
	assert.Equal(t, []string{"first_item", "streak_3"}, progressIDs(stats.NextAchievements))

	require.Len(t, stats.RarityBreakdown, len(domain.AllRarities()))
	for _, r := range domain.AllRarities() {
		assert.Equal(t, 0, stats.RarityBreakdown[r], "bucket %s", r)
	}
}

func TestCalculateCollectionStats_SingleItem(t *testing.T) {
	items := []domain.Item{{ID: "1", Name: "りんご", Category: "food", CreatedAt: t0}}

	stats := CalculateCollectionStats(items, domain.DefaultCategories, 1)

	assert.Equal(t, []domain.CategoryBreakdown{
		{CategoryID: "food", Category: "食品・食材", Icon: "🍎", Count: 1},
	}, stats.CategoryBreakdown)
	assert.Equal(t, 1, sumBreakdown(stats.RarityBreakdown))
	assert.Equal(t, Levels[0].Level, stats.Level.Level.Level)
	assert.Less(t, stats.TotalExp, Levels[1].MinExp)
	assert.Equal(t, []string{"first_item"}, achievementIDs(stats.UnlockedAchievements))
	assert.Equal(t, 1, stats.ItemCount)
	assert.Equal(t, 1, stats.CategoryCount)
	assert.Equal(t, 1, stats.Streak)
}

func TestCalculateCollectionStats_TenItemsThreeCategories(t *testing.T) {
	items := makeItems(10, "food", "books", "toys")

	stats := CalculateCollectionStats(items, domain.DefaultCategories, 7)

	assert.Equal(t, 275, stats.TotalExp)
	assert.Equal(t, 3, stats.Level.Level.Level)
	assert.ElementsMatch(t,
		[]string{"first_item", "items_5", "items_10", "streak_3", "streak_7", "categories_3"},
		achievementIDs(stats.UnlockedAchievements))
	assert.Equal(t, []string{"categories_5", "categories_8"}, progressIDs(stats.NextAchievements))

	for _, a := range stats.UnlockedAchievements {
		switch a.Category {
		case domain.AchievementItems:
			assert.LessOrEqual(t, a.Threshold, 10)
		case domain.AchievementCategories:
			assert.LessOrEqual(t, a.Threshold, 3)
		case domain.AchievementStreak:
			assert.LessOrEqual(t, a.Threshold, 7)
		}
	}

	// Breakdown follows the category table order, not counts
	require.Len(t, stats.CategoryBreakdown, 3)
	assert.Equal(t, "food", stats.CategoryBreakdown[0].CategoryID)
	assert.Equal(t, 4, stats.CategoryBreakdown[0].Count)
	assert.Equal(t, "books", stats.CategoryBreakdown[1].CategoryID)
	assert.Equal(t, "toys", stats.CategoryBreakdown[2].CategoryID)
}

func TestCalculateCollectionStats_UnknownCategoryOmitted(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Name: "a", Category: "food", CreatedAt: t0},
		{ID: "2", Name: "b", Category: "deleted-custom", CreatedAt: t0},
	}

	stats := CalculateCollectionStats(items, domain.DefaultCategories, 0)

	require.Len(t, stats.CategoryBreakdown, 1)
	assert.Equal(t, "food", stats.CategoryBreakdown[0].CategoryID)
	// The item still counts everywhere else
	assert.Equal(t, 2, stats.ItemCount)
	assert.Equal(t, 2, stats.CategoryCount)
	assert.Equal(t, 2, sumBreakdown(stats.RarityBreakdown))
}

func TestCalculateCollectionStats_Monotonic(t *testing.T) {
	categories := []string{"food", "books", "toys", "daily", "other"}
	var items []domain.Item
	prev := CalculateCollectionStats(nil, domain.DefaultCategories, 0)

	for i := 0; i < 120; i++ {
		items = append(items, domain.Item{
			ID:        fmt.Sprintf("%d", i),
			Name:      fmt.Sprintf("thing %d", i*7919),
			Category:  categories[(i*3)%len(categories)],
			CreatedAt: t0,
		})
		streak := i / 4
		next := CalculateCollectionStats(items, domain.DefaultCategories, streak)

		assert.GreaterOrEqual(t, next.TotalExp, prev.TotalExp, "exp decreased at %d items", i+1)
		assert.GreaterOrEqual(t, next.Level.Level.Level, prev.Level.Level.Level, "level decreased at %d items", i+1)
		assert.GreaterOrEqual(t, len(next.UnlockedAchievements), len(prev.UnlockedAchievements))
		prev = next
	}
}

func TestCalculateCollectionStats_Idempotent(t *testing.T) {
	items := makeItems(37, "food", "kitchen")
	icon := "<svg/>"
	items[3].GeneratedIcon = &icon
	items[4].HasImage = true

	a := CalculateCollectionStats(items, domain.DefaultCategories, 5)
	b := CalculateCollectionStats(items, domain.DefaultCategories, 5)

	assert.Equal(t, a, b)
}

func TestCalculateCollectionStats_HistogramConservation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 250} {
		stats := CalculateCollectionStats(makeItems(max(n, 1), "food")[:n], nil, 0)
		assert.Equal(t, n, sumBreakdown(stats.RarityBreakdown), "n=%d", n)
	}
}

func TestPartitionAchievements_Exhaustive(t *testing.T) {
	inputs := []counters{
		{},
		{items: 1, streak: 1, categories: 1},
		{items: 10, streak: 7, categories: 3},
		{items: 5000, streak: 500, categories: 50},
	}
	for _, c := range inputs {
		unlocked, locked := partitionAchievements(c)
		require.Equal(t, len(Achievements), len(unlocked)+len(locked))

		seen := make(map[string]bool)
		for _, a := range unlocked {
			seen[a.ID] = true
			assert.GreaterOrEqual(t, c.value(a.Category), a.Threshold)
		}
		for _, p := range locked {
			assert.False(t, seen[p.ID], "%s both unlocked and locked", p.ID)
			seen[p.ID] = true
			assert.Equal(t, p.Threshold-p.Current, p.Remaining)
			assert.Positive(t, p.Remaining)
		}
		assert.Len(t, seen, len(Achievements))

		for i := 1; i < len(locked); i++ {
			assert.LessOrEqual(t, locked[i-1].Remaining, locked[i].Remaining)
		}
	}
}

func TestAchievements_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Achievements {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.Positive(t, a.Threshold)
		if a.Category != domain.AchievementItems {
			assert.Greater(t, a.Threshold, 2, "%s unlocks with a single item", a.ID)
		}
	}
}
