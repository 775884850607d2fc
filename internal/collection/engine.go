package collection

import "github.com/osse101/MonoCollector_Go/internal/domain"

// CalculateExp is the weighted EXP sum over the three counters. It is
// non-decreasing in each argument.
func CalculateExp(itemCount, categoryCount, streak int) int {
	if itemCount < 0 {
		itemCount = 0
	}
	if categoryCount < 0 {
		categoryCount = 0
	}
	if streak < 0 {
		streak = 0
	}

	exp := itemCount*ExpPerItem + categoryCount*ExpPerCategory + streak*ExpPerStreakDay
	if streak >= StreakWeekDays {
		exp += StreakBonusWeek
	}
	if streak >= StreakMonthDays {
		exp += StreakBonusMonth
	}
	return exp
}

// CalculateCollectionStats builds the gamification view of a collection.
// It is pure and total: nil inputs yield the zero state at the lowest level.
func CalculateCollectionStats(items []domain.Item, categories []domain.Category, streak int) domain.CollectionStats {
	if streak < 0 {
		streak = 0
	}

	perCategory := make(map[string]int)
	for _, item := range items {
		perCategory[item.Category]++
	}

	c := counters{
		items:      len(items),
		streak:     streak,
		categories: len(perCategory),
	}

	totalExp := CalculateExp(c.items, c.categories, c.streak)
	unlocked, locked := partitionAchievements(c)
	if len(locked) > NextAchievementsLimit {
		locked = locked[:NextAchievementsLimit]
	}

	rarities := make([]domain.Rarity, len(items))
	rarityBreakdown := make(map[domain.Rarity]int, len(domain.AllRarities()))
	for _, r := range domain.AllRarities() {
		rarityBreakdown[r] = 0
	}
	for i, item := range items {
		rarities[i] = itemRarity(item)
		rarityBreakdown[rarities[i]]++
	}

	return domain.CollectionStats{
		TotalExp:             totalExp,
		Level:                ResolveLevel(totalExp),
		ItemCount:            c.items,
		CategoryCount:        c.categories,
		Streak:               c.streak,
		UnlockedAchievements: unlocked,
		NextAchievements:     locked,
		UnlockedBadges: EvaluateBadges(BadgeContext{
			Items:      items,
			Categories: categories,
			Rarities:   rarities,
		}),
		RarityBreakdown:   rarityBreakdown,
		CategoryBreakdown: buildCategoryBreakdown(categories, perCategory),
	}
}

// buildCategoryBreakdown follows the category list order and skips empty or unknown categories
func buildCategoryBreakdown(categories []domain.Category, perCategory map[string]int) []domain.CategoryBreakdown {
	breakdown := make([]domain.CategoryBreakdown, 0, len(perCategory))
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if _, dup := seen[cat.ID]; dup {
			continue
		}
		seen[cat.ID] = struct{}{}

		count := perCategory[cat.ID]
		if count == 0 {
			continue
		}
		breakdown = append(breakdown, domain.CategoryBreakdown{
			CategoryID: cat.ID,
			Category:   cat.Name,
			Icon:       cat.Icon,
			Count:      count,
		})
	}
	return breakdown
}
