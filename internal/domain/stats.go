package domain

import "time"

// AnalyticsItemRow is the per-item projection the analytics reducer works on
type AnalyticsItemRow struct {
	UserID      string
	Name        string
	Category    string
	IsCollected bool
	HasImage    bool
	HasIcon     bool
	CreatedAt   time.Time
}

// AnalyticsUserRow is the per-user projection the analytics reducer works on
type AnalyticsUserRow struct {
	UserID    string
	IsGuest   bool
	LinkCount int
	CreatedAt time.Time
}

// CategoryCount is the number of items in one category
type CategoryCount struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Count      int    `json:"count"`
}

// DailyCount is the number of items created on one calendar day
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// NameCount is how many times an item name was registered
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Analytics is the admin dashboard summary
type Analytics struct {
	GeneratedAt         time.Time       `json:"generated_at"`
	WindowDays          int             `json:"window_days"`
	TotalUsers          int             `json:"total_users"`
	GuestUsers          int             `json:"guest_users"`
	LinkedUsers         int             `json:"linked_users"`
	NewUsersInWindow    int             `json:"new_users_in_window"`
	ActiveUsersInWindow int             `json:"active_users_in_window"`
	TotalItems          int             `json:"total_items"`
	CollectedItems      int             `json:"collected_items"`
	ItemsWithImage      int             `json:"items_with_image"`
	ItemsWithIcon       int             `json:"items_with_icon"`
	AverageItemsPerUser float64         `json:"average_items_per_user"`
	ItemsPerCategory    []CategoryCount `json:"items_per_category"`
	ItemsPerDay         []DailyCount    `json:"items_per_day"`
	TopItemNames        []NameCount     `json:"top_item_names"`
	RarityDistribution  map[Rarity]int  `json:"rarity_distribution"`
	Reviews             ReviewSummary   `json:"reviews"`
}

// LeaderboardEntry ranks a user by collection size
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	ItemCount   int    `json:"item_count"`
}
