package item

// Field limits, in runes
const (
	MaxNameLength     = 100
	MaxLocationLength = 100
	MaxNotesLength    = 1000
	MaxTagLength      = 30
	MaxTags           = 10
)

// DefaultMaxImageBytes is the photo upload limit (5 MiB)
const DefaultMaxImageBytes = 5 << 20

// List paging
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Error context messages
const (
	ErrContextCreateItem   = "failed to create item"
	ErrContextGetItem      = "failed to get item"
	ErrContextListItems    = "failed to list items"
	ErrContextUpdateItem   = "failed to update item"
	ErrContextDeleteItem   = "failed to delete item"
	ErrContextGetCategory  = "failed to get category"
	ErrContextSaveImage    = "failed to save image"
	ErrContextGetImage     = "failed to get image"
	ErrContextDeleteImage  = "failed to delete image"
	ErrContextSetIcon      = "failed to store generated icon"
	ErrContextInspectImage = "unreadable image"
)

// Log messages
const (
	LogMsgItemCreated        = "Item created"
	LogMsgItemUpdated        = "Item updated"
	LogMsgItemDeleted        = "Item deleted"
	LogMsgImageUploaded      = "Item image uploaded"
	LogMsgIconGenerated      = "Item icon generated"
	LogMsgEventPublishFailed = "Failed to publish item event"
)
