package category

// Field limits, in runes
const (
	MaxNameLength = 50
	MaxIconLength = 8
)

// Custom category defaults
const (
	DefaultIcon      = "📦"
	DefaultSortOrder = 100
)

// Error context messages
const (
	ErrContextListCategories = "failed to list categories"
	ErrContextGetCategory    = "failed to get category"
	ErrContextCreateCategory = "failed to create category"
	ErrContextUpdateCategory = "failed to update category"
	ErrContextDeleteCategory = "failed to delete category"
)

// Log messages
const (
	LogMsgCategoryCreated    = "Custom category created"
	LogMsgCategoryUpdated    = "Custom category updated"
	LogMsgCategoryDeleted    = "Custom category deleted"
	LogMsgEventPublishFailed = "Failed to publish category event"
)
