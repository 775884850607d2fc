package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

func statsWith(level int, achievementIDs []string, badgeIDs []string) domain.CollectionStats {
	stats := domain.CollectionStats{Level: domain.LevelProgress{Level: Levels[level-1]}}
	for _, id := range achievementIDs {
		stats.UnlockedAchievements = append(stats.UnlockedAchievements, domain.Achievement{ID: id})
	}
	for _, id := range badgeIDs {
		stats.UnlockedBadges = append(stats.UnlockedBadges, domain.CollectionBadge{ID: id})
	}
	return stats
}

func TestReduce_NilPreviousRecordsBaseline(t *testing.T) {
	stats := statsWith(3, []string{"first_item", "items_5"}, []string{"photographer"})

	next, diff := Reduce(nil, stats)

	assert.Equal(t, []string{"first_item", "items_5"}, next.AchievementIDs)
	assert.Equal(t, []string{"photographer"}, next.BadgeIDs)
	assert.Equal(t, 3, next.Level)
	assert.True(t, diff.IsEmpty())
	assert.False(t, diff.LeveledUp)
}

func TestReduce_ReportsNewUnlocks(t *testing.T) {
	prev := &domain.UnlockSnapshot{AchievementIDs: []string{"first_item"}, Level: 1}
	stats := statsWith(2, []string{"first_item", "items_5", "streak_3"}, []string{"photographer"})

	next, diff := Reduce(prev, stats)

	require.False(t, diff.IsEmpty())
	assert.Equal(t, []string{"items_5", "streak_3"}, achievementIDs(diff.NewAchievements))
	require.Len(t, diff.NewBadges, 1)
	assert.Equal(t, "photographer", diff.NewBadges[0].ID)
	assert.True(t, diff.LeveledUp)
	assert.Equal(t, 1, diff.PreviousLevel)
	assert.Equal(t, 2, diff.NewLevel)

	assert.Equal(t, []string{"first_item", "items_5", "streak_3"}, next.AchievementIDs)
	assert.Equal(t, 2, next.Level)
}

func TestReduce_NoChange(t *testing.T) {
	stats := statsWith(2, []string{"first_item"}, nil)
	prev, _ := Reduce(nil, stats)

	next, diff := Reduce(&prev, stats)

	assert.True(t, diff.IsEmpty())
	assert.Equal(t, prev, next)
}

func TestReduce_LostUnlocksAreRemembered(t *testing.T) {
	prev := &domain.UnlockSnapshot{
		AchievementIDs: []string{"first_item", "items_5"},
		BadgeIDs:       []string{"tagger"},
		Level:          3,
	}
	// Items were deleted: items_5, tagger and a level are gone
	shrunk := statsWith(2, []string{"first_item"}, nil)

	next, diff := Reduce(prev, shrunk)
	assert.True(t, diff.IsEmpty())
	assert.Equal(t, []string{"first_item", "items_5"}, next.AchievementIDs)
	assert.Equal(t, []string{"tagger"}, next.BadgeIDs)
	assert.Equal(t, 3, next.Level)

	// Earning them back does not notify twice
	regrown := statsWith(3, []string{"first_item", "items_5"}, []string{"tagger"})
	_, diff = Reduce(&next, regrown)
	assert.True(t, diff.IsEmpty())
}
