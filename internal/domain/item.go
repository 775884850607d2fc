package domain

import "time"

// Item is a single belonging a user photographed before letting it go.
type Item struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Location      string     `json:"location,omitempty"`
	Tags          []string   `json:"tags"`
	Notes         string     `json:"notes,omitempty"`
	IsCollected   bool       `json:"is_collected"`
	HasImage      bool       `json:"has_image"`
	GeneratedIcon *string    `json:"generated_icon,omitempty"`
	IconSource    IconSource `json:"icon_source,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IconSource records which generator produced an item's icon
type IconSource string

const (
	IconSourceNone  IconSource = ""
	IconSourceName  IconSource = "name"
	IconSourcePhoto IconSource = "photo"
)

// ItemImage is the photo blob attached to an item
type ItemImage struct {
	ItemID      string    `json:"item_id"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	BlurHash    string    `json:"blurhash"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemFilter narrows item listings
type ItemFilter struct {
	Category    string
	IsCollected *bool
	Limit       int
	Offset      int
}

// ItemUpdate carries a partial update; nil fields are left untouched
type ItemUpdate struct {
	Name        *string
	Category    *string
	Location    *string
	Tags        []string
	Notes       *string
	IsCollected *bool
}

// Category groups items. Default categories are shared by all users;
// custom categories belong to a single user.
type Category struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id,omitempty"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	ItemCount int     `json:"item_count"`
	SortOrder int     `json:"sort_order"`
	IsDefault bool    `json:"is_default"`
}

// CategorySyncResult reports how the default category table was reconciled
type CategorySyncResult struct {
	Inserted  int
	Updated   int
	Unchanged int
}

// CategoryOther is where items land when their custom category is deleted
const CategoryOther = "other"

// DefaultCategories is the seeded category table, in display order.
// The migration that seeds the database must stay in sync with this list.
var DefaultCategories = []Category{
	{ID: "food", Name: "食品・食材", Icon: "🍎", Color: "#EF4444", SortOrder: 1, IsDefault: true},
	{ID: "clothing", Name: "衣類・ファッション", Icon: "👕", Color: "#3B82F6", SortOrder: 2, IsDefault: true},
	{ID: "electronics", Name: "家電・電子機器", Icon: "📱", Color: "#6366F1", SortOrder: 3, IsDefault: true},
	{ID: "books", Name: "本・雑誌", Icon: "📚", Color: "#A16207", SortOrder: 4, IsDefault: true},
	{ID: "furniture", Name: "家具・インテリア", Icon: "🪑", Color: "#92400E", SortOrder: 5, IsDefault: true},
	{ID: "kitchen", Name: "キッチン用品", Icon: "🍳", Color: "#F59E0B", SortOrder: 6, IsDefault: true},
	{ID: "toys", Name: "おもちゃ・ホビー", Icon: "🧸", Color: "#EC4899", SortOrder: 7, IsDefault: true},
	{ID: "daily", Name: "日用品・化粧品", Icon: "🧴", Color: "#14B8A6", SortOrder: 8, IsDefault: true},
	{ID: "stationery", Name: "文房具", Icon: "✏️", Color: "#8B5CF6", SortOrder: 9, IsDefault: true},
	{ID: "sports", Name: "スポーツ・アウトドア", Icon: "⚽", Color: "#22C55E", SortOrder: 10, IsDefault: true},
	{ID: "memories", Name: "思い出の品", Icon: "💌", Color: "#F43F5E", SortOrder: 11, IsDefault: true},
	{ID: "accessories", Name: "アクセサリー・小物", Icon: "💍", Color: "#D946EF", SortOrder: 12, IsDefault: true},
	{ID: "other", Name: "その他", Icon: "📦", Color: "#6B7280", SortOrder: 13, IsDefault: true},
}
