package collection

import (
	"sort"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Achievements is the static achievement table. Streak and category
// achievements start at 3 so the very first item only earns "first_item".
var Achievements = []domain.Achievement{
	// Item count
	{ID: "first_item", Name: "はじめの一枚", Description: "最初のモノを記録する", Icon: "📸", Tier: domain.TierBronze, Category: domain.AchievementItems, Threshold: 1},
	{ID: "items_5", Name: "記録の習慣", Description: "5個のモノを記録する", Icon: "🖐️", Tier: domain.TierBronze, Category: domain.AchievementItems, Threshold: 5},
	{ID: "items_10", Name: "コレクション開始", Description: "10個のモノを記録する", Icon: "🔟", Tier: domain.TierSilver, Category: domain.AchievementItems, Threshold: 10},
	{ID: "items_25", Name: "小さな博物館", Description: "25個のモノを記録する", Icon: "🏛️", Tier: domain.TierSilver, Category: domain.AchievementItems, Threshold: 25},
	{ID: "items_50", Name: "半百の記憶", Description: "50個のモノを記録する", Icon: "🎖️", Tier: domain.TierGold, Category: domain.AchievementItems, Threshold: 50},
	{ID: "items_100", Name: "百物語", Description: "100個のモノを記録する", Icon: "💯", Tier: domain.TierPlatinum, Category: domain.AchievementItems, Threshold: 100},
	{ID: "items_250", Name: "アーカイブの主", Description: "250個のモノを記録する", Icon: "🗄️", Tier: domain.TierDiamond, Category: domain.AchievementItems, Threshold: 250},
	{ID: "items_500", Name: "記録の巨人", Description: "500個のモノを記録する", Icon: "🗿", Tier: domain.TierDiamond, Category: domain.AchievementItems, Threshold: 500},
	{ID: "items_1000", Name: "千の思い出", Description: "1000個のモノを記録する", Icon: "🌌", Tier: domain.TierLegendary, Category: domain.AchievementItems, Threshold: 1000},

	// Daily streak
	{ID: "streak_3", Name: "三日坊主卒業", Description: "3日連続で記録する", Icon: "🔥", Tier: domain.TierBronze, Category: domain.AchievementStreak, Threshold: 3},
	{ID: "streak_7", Name: "一週間の継続", Description: "7日連続で記録する", Icon: "📅", Tier: domain.TierSilver, Category: domain.AchievementStreak, Threshold: 7},
	{ID: "streak_14", Name: "二週間の継続", Description: "14日連続で記録する", Icon: "⚡", Tier: domain.TierGold, Category: domain.AchievementStreak, Threshold: 14},
	{ID: "streak_30", Name: "ひと月の継続", Description: "30日連続で記録する", Icon: "🌙", Tier: domain.TierPlatinum, Category: domain.AchievementStreak, Threshold: 30},
	{ID: "streak_100", Name: "百日修行", Description: "100日連続で記録する", Icon: "☀️", Tier: domain.TierLegendary, Category: domain.AchievementStreak, Threshold: 100},

	// Distinct categories
	{ID: "categories_3", Name: "いろいろ記録", Description: "3つのカテゴリでモノを記録する", Icon: "🎨", Tier: domain.TierBronze, Category: domain.AchievementCategories, Threshold: 3},
	{ID: "categories_5", Name: "幅広い収集", Description: "5つのカテゴリでモノを記録する", Icon: "🧭", Tier: domain.TierSilver, Category: domain.AchievementCategories, Threshold: 5},
	{ID: "categories_8", Name: "多才なコレクター", Description: "8つのカテゴリでモノを記録する", Icon: "🌈", Tier: domain.TierGold, Category: domain.AchievementCategories, Threshold: 8},
	{ID: "categories_13", Name: "全カテゴリ制覇", Description: "13のカテゴリでモノを記録する", Icon: "🏅", Tier: domain.TierDiamond, Category: domain.AchievementCategories, Threshold: 13},
}

// counters holds the scalar dimensions achievements are measured against
type counters struct {
	items      int
	streak     int
	categories int
}

func (c counters) value(category domain.AchievementCategory) int {
	switch category {
	case domain.AchievementItems:
		return c.items
	case domain.AchievementStreak:
		return c.streak
	case domain.AchievementCategories:
		return c.categories
	default:
		return 0
	}
}

// partitionAchievements splits the table into unlocked achievements (table order)
// and every locked achievement with its remaining distance, closest first.
func partitionAchievements(c counters) ([]domain.Achievement, []domain.AchievementProgress) {
	unlocked := make([]domain.Achievement, 0, len(Achievements))
	locked := make([]domain.AchievementProgress, 0, len(Achievements))

	for _, a := range Achievements {
		current := c.value(a.Category)
		if current >= a.Threshold {
			unlocked = append(unlocked, a)
			continue
		}
		locked = append(locked, domain.AchievementProgress{
			Achievement: a,
			Current:     current,
			Remaining:   a.Threshold - current,
		})
	}

	sort.SliceStable(locked, func(i, j int) bool {
		if locked[i].Remaining != locked[j].Remaining {
			return locked[i].Remaining < locked[j].Remaining
		}
		return locked[i].Threshold < locked[j].Threshold
	})

	return unlocked, locked
}
