package stats

import (
	"math"
	"sort"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// AnalyticsInput is everything the analytics reducer looks at
type AnalyticsInput struct {
	Items      []domain.AnalyticsItemRow
	Users      []domain.AnalyticsUserRow
	Categories []domain.Category
	Reviews    domain.ReviewSummary
}

// BuildAnalytics folds the rows into the dashboard summary. The window covers
// the last days calendar days in loc, today included.
func BuildAnalytics(in AnalyticsInput, days int, now time.Time, loc *time.Location) domain.Analytics {
	if loc == nil {
		loc = time.UTC
	}
	days = utils.ClampInt(days, 1, MaxAnalyticsDays)
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	windowStart := today.AddDate(0, 0, -(days - 1))

	a := domain.Analytics{
		GeneratedAt:        now.UTC(),
		WindowDays:         days,
		RarityDistribution: make(map[domain.Rarity]int, len(domain.AllRarities())),
		Reviews:            in.Reviews,
	}
	for _, r := range domain.AllRarities() {
		a.RarityDistribution[r] = 0
	}

	for _, u := range in.Users {
		a.TotalUsers++
		if u.IsGuest {
			a.GuestUsers++
		}
		if u.LinkCount > 0 {
			a.LinkedUsers++
		}
		if !u.CreatedAt.Before(windowStart) {
			a.NewUsersInWindow++
		}
	}

	perCategory := make(map[string]int)
	perDay := make(map[string]int)
	active := make(map[string]bool)
	for _, item := range in.Items {
		a.TotalItems++
		if item.IsCollected {
			a.CollectedItems++
		}
		if item.HasImage {
			a.ItemsWithImage++
		}
		if item.HasIcon {
			a.ItemsWithIcon++
		}
		perCategory[item.Category]++

		createdAt := item.CreatedAt
		a.RarityDistribution[collection.DetermineRarity(item.Name, &createdAt)]++

		if !createdAt.Before(windowStart) {
			active[item.UserID] = true
			perDay[createdAt.In(loc).Format(DateLayout)]++
		}
	}

	a.ActiveUsersInWindow = len(active)
	if a.TotalUsers > 0 {
		a.AverageItemsPerUser = math.Round(utils.SafeDivide(float64(a.TotalItems), float64(a.TotalUsers))*100) / 100
	}
	a.ItemsPerCategory = categoryCounts(perCategory, in.Categories)
	a.ItemsPerDay = dailySeries(perDay, windowStart, days)
	a.TopItemNames = topNames(in.Items, TopItemNamesLimit)
	return a
}

// categoryCounts orders by count desc, ties by category table order. Ids
// missing from the table (deleted custom categories) are reported under their id.
func categoryCounts(counts map[string]int, categories []domain.Category) []domain.CategoryCount {
	order := make(map[string]int, len(categories))
	out := make([]domain.CategoryCount, 0, len(counts))
	for i, c := range categories {
		if _, seen := order[c.ID]; seen {
			continue
		}
		order[c.ID] = i
		if n := counts[c.ID]; n > 0 {
			out = append(out, domain.CategoryCount{CategoryID: c.ID, Name: c.Name, Icon: c.Icon, Count: n})
		}
	}
	for id, n := range counts {
		if _, known := order[id]; !known && n > 0 {
			order[id] = len(categories)
			out = append(out, domain.CategoryCount{CategoryID: id, Name: id, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if order[out[i].CategoryID] != order[out[j].CategoryID] {
			return order[out[i].CategoryID] < order[out[j].CategoryID]
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}

// dailySeries has one entry per day of the window, oldest first, zeros included
func dailySeries(counts map[string]int, start time.Time, days int) []domain.DailyCount {
	out := make([]domain.DailyCount, days)
	for i := range out {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		out[i] = domain.DailyCount{Date: date, Count: counts[date]}
	}
	return out
}

// topNames groups by normalized name and reports the first spelling seen
func topNames(items []domain.AnalyticsItemRow, limit int) []domain.NameCount {
	type group struct {
		display string
		count   int
	}
	groups := make(map[string]*group)
	for _, item := range items {
		key := utils.NormalizeName(item.Name)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{display: item.Name}
			groups[key] = g
		}
		g.count++
	}

	out := make([]domain.NameCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.NameCount{Name: g.display, Count: g.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
