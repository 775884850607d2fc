package collection

import "github.com/osse101/MonoCollector_Go/internal/domain"

// Snapshot captures the unlock state of stats for later comparison.
func Snapshot(stats domain.CollectionStats) domain.UnlockSnapshot {
	snap := domain.UnlockSnapshot{
		BadgeIDs:       make([]string, 0, len(stats.UnlockedBadges)),
		AchievementIDs: make([]string, 0, len(stats.UnlockedAchievements)),
		Level:          stats.Level.Level.Level,
	}
	for _, b := range stats.UnlockedBadges {
		snap.BadgeIDs = append(snap.BadgeIDs, b.ID)
	}
	for _, a := range stats.UnlockedAchievements {
		snap.AchievementIDs = append(snap.AchievementIDs, a.ID)
	}
	return snap
}

// Reduce compares stats against the previously notified snapshot and returns the
// next snapshot plus what became unlocked in between. A nil prev records a
// baseline and reports nothing, so existing collections are not flooded with
// notifications on first contact.
func Reduce(prev *domain.UnlockSnapshot, stats domain.CollectionStats) (domain.UnlockSnapshot, domain.UnlockDiff) {
	next := Snapshot(stats)
	diff := domain.UnlockDiff{
		NewAchievements: []domain.Achievement{},
		NewBadges:       []domain.CollectionBadge{},
		PreviousLevel:   next.Level,
		NewLevel:        next.Level,
	}
	if prev == nil {
		return next, diff
	}

	seenAchievements := toSet(prev.AchievementIDs)
	for _, a := range stats.UnlockedAchievements {
		if _, ok := seenAchievements[a.ID]; !ok {
			diff.NewAchievements = append(diff.NewAchievements, a)
		}
	}

	seenBadges := toSet(prev.BadgeIDs)
	for _, b := range stats.UnlockedBadges {
		if _, ok := seenBadges[b.ID]; !ok {
			diff.NewBadges = append(diff.NewBadges, b)
		}
	}

	diff.PreviousLevel = prev.Level
	diff.LeveledUp = next.Level > prev.Level

	// Keep ids that were unlocked before even if they are locked now (items deleted),
	// so re-earning them does not notify twice.
	next.AchievementIDs = union(prev.AchievementIDs, next.AchievementIDs)
	next.BadgeIDs = union(prev.BadgeIDs, next.BadgeIDs)
	if prev.Level > next.Level {
		next.Level = prev.Level
	}
	return next, diff
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// union keeps a's order and appends b's ids not already present
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
