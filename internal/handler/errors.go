package handler

// Generic client error messages. They carry no internal detail.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Image upload error messages
	ErrMsgReadImageFailed = "Failed to read image upload"
	ErrMsgMissingImage    = "Image file is required"
)

// Client messages for domain errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgForbiddenError      = "You are not allowed to do that"

	// User messages
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgAlreadyLinkedError   = "That account is already linked to another user"
	ErrMsgLinkNotFoundError    = "Account link not found"
	ErrMsgInvalidProviderError = "Unsupported account provider"

	// Item messages
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgImageNotFoundError = "Image not found"
	ErrMsgInvalidImageError  = "Unsupported or corrupt image. Use JPEG, PNG, GIF or WebP."
	ErrMsgImageTooLargeError = "Image is too large"

	// Category messages
	ErrMsgCategoryNotFoundError = "Category not found"
	ErrMsgCategoryExistsError   = "A category with that id already exists"
	ErrMsgDefaultCategoryError  = "Default categories cannot be changed"

	// Review messages
	ErrMsgInvalidRatingError = "Rating must be between 1 and 5"
)

// Success messages for API responses
const (
	MsgItemDeleted     = "Item deleted"
	MsgImageDeleted    = "Image deleted"
	MsgCategoryDeleted = "Category deleted"
	MsgAccountUnlinked = "Account unlinked"
	MsgCachePurged     = "Analytics cache purged"
)
