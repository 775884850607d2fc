package collection

import "github.com/osse101/MonoCollector_Go/internal/domain"

// BadgeContext is everything a badge rule may look at. Rarities is parallel to Items.
type BadgeContext struct {
	Items      []domain.Item
	Categories []domain.Category
	Rarities   []domain.Rarity
}

// badgeRule pairs a badge with its unlock predicate
type badgeRule struct {
	badge    domain.CollectionBadge
	unlocked func(BadgeContext) bool
}

var badgeRules = []badgeRule{
	{
		badge:    domain.CollectionBadge{ID: "photographer", Name: "カメラマン", Description: "写真付きのモノを記録する", Icon: "📷"},
		unlocked: func(c BadgeContext) bool { return countItems(c.Items, func(i domain.Item) bool { return i.HasImage }) >= 1 },
	},
	{
		badge:    domain.CollectionBadge{ID: "icon_artist", Name: "アイコン職人", Description: "アイコンを生成したモノを記録する", Icon: "🎨"},
		unlocked: func(c BadgeContext) bool { return countItems(c.Items, hasGeneratedIcon) >= 1 },
	},
	{
		badge:    domain.CollectionBadge{ID: "all_rounder", Name: "オールラウンダー", Description: "すべてのカテゴリでモノを記録する", Icon: "🌐"},
		unlocked: spansAllCategories,
	},
	{
		badge:    domain.CollectionBadge{ID: "declutter_master", Name: "手放し上手", Description: "10個のモノを手放し済みにする", Icon: "🧹"},
		unlocked: func(c BadgeContext) bool {
			return countItems(c.Items, func(i domain.Item) bool { return i.IsCollected }) >= BadgeDeclutterThreshold
		},
	},
	{
		badge:    domain.CollectionBadge{ID: "legend_finder", Name: "伝説の発見者", Description: "レジェンダリーのモノを記録する", Icon: "🌟"},
		unlocked: func(c BadgeContext) bool {
			for _, r := range c.Rarities {
				if r == domain.RarityLegendary {
					return true
				}
			}
			return false
		},
	},
	{
		badge:    domain.CollectionBadge{ID: "tagger", Name: "タグ付け名人", Description: "タグ付きのモノを5個記録する", Icon: "🏷️"},
		unlocked: func(c BadgeContext) bool {
			return countItems(c.Items, func(i domain.Item) bool { return len(i.Tags) > 0 }) >= BadgeTaggerThreshold
		},
	},
	{
		badge:    domain.CollectionBadge{ID: "storyteller", Name: "語り部", Description: "メモ付きのモノを5個記録する", Icon: "📝"},
		unlocked: func(c BadgeContext) bool {
			return countItems(c.Items, func(i domain.Item) bool { return i.Notes != "" }) >= BadgeStorytellerThreshold
		},
	},
}

// Badges returns the static badge table in display order.
func Badges() []domain.CollectionBadge {
	out := make([]domain.CollectionBadge, len(badgeRules))
	for i, r := range badgeRules {
		out[i] = r.badge
	}
	return out
}

// EvaluateBadges returns the unlocked badges in table order.
func EvaluateBadges(c BadgeContext) []domain.CollectionBadge {
	unlocked := make([]domain.CollectionBadge, 0, len(badgeRules))
	for _, r := range badgeRules {
		if r.unlocked(c) {
			unlocked = append(unlocked, r.badge)
		}
	}
	return unlocked
}

func hasGeneratedIcon(i domain.Item) bool {
	return i.GeneratedIcon != nil && *i.GeneratedIcon != ""
}

func countItems(items []domain.Item, pred func(domain.Item) bool) int {
	n := 0
	for _, i := range items {
		if pred(i) {
			n++
		}
	}
	return n
}

// spansAllCategories requires at least one item in every listed category
func spansAllCategories(c BadgeContext) bool {
	if len(c.Categories) == 0 {
		return false
	}
	used := make(map[string]struct{}, len(c.Items))
	for _, i := range c.Items {
		used[i.Category] = struct{}{}
	}
	for _, cat := range c.Categories {
		if _, ok := used[cat.ID]; !ok {
			return false
		}
	}
	return true
}
