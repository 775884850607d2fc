package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound         = "user not found"
	ErrMsgAccountAlreadyLinked = "account already linked to another user"
	ErrMsgLinkNotFound         = "account link not found"
	ErrMsgInvalidProvider      = "invalid provider"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Image errors
	ErrMsgImageNotFound = "image not found"
	ErrMsgInvalidImage  = "invalid image"
	ErrMsgImageTooLarge = "image too large"

	// Category errors
	ErrMsgCategoryNotFound = "category not found"
	ErrMsgCategoryExists   = "category already exists"
	ErrMsgDefaultCategory  = "default categories cannot be modified"

	// Review errors
	ErrMsgInvalidRating = "rating must be between 1 and 5"

	// Access errors
	ErrMsgForbidden = "forbidden"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound         = errors.New(ErrMsgUserNotFound)
	ErrAccountAlreadyLinked = errors.New(ErrMsgAccountAlreadyLinked)
	ErrLinkNotFound         = errors.New(ErrMsgLinkNotFound)
	ErrInvalidProvider      = errors.New(ErrMsgInvalidProvider)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Image errors
	ErrImageNotFound = errors.New(ErrMsgImageNotFound)
	ErrInvalidImage  = errors.New(ErrMsgInvalidImage)
	ErrImageTooLarge = errors.New(ErrMsgImageTooLarge)

	// Category errors
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)
	ErrCategoryExists   = errors.New(ErrMsgCategoryExists)
	ErrDefaultCategory  = errors.New(ErrMsgDefaultCategory)

	// Review errors
	ErrInvalidRating = errors.New(ErrMsgInvalidRating)

	// Access errors
	ErrForbidden = errors.New(ErrMsgForbidden)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
