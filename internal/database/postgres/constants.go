package postgres

// PostgreSQL Error Codes
const (
	PgErrorCodeUniqueViolation     = "23505"
	PgErrorCodeForeignKeyViolation = "23503"

	// PgErrorCodeInvalidText is raised when a malformed UUID reaches a uuid column
	PgErrorCodeInvalidText = "22P02"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser   = "failed to insert user"
	ErrMsgFailedToGetUser      = "failed to get user"
	ErrMsgFailedToGetUserLinks = "failed to get user links"
	ErrMsgFailedToInsertLink   = "failed to insert account link"
	ErrMsgFailedToClearGuest   = "failed to clear guest flag"
	ErrMsgFailedToDeleteLink   = "failed to delete account link"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToListItems        = "failed to list items"
	ErrMsgFailedToUpdateItem       = "failed to update item"
	ErrMsgFailedToDeleteItem       = "failed to delete item"
	ErrMsgFailedToAdjustCount      = "failed to adjust category count"
	ErrMsgFailedToSaveImage        = "failed to save image"
	ErrMsgFailedToGetImage         = "failed to get image"
	ErrMsgFailedToDeleteImage      = "failed to delete image"
	ErrMsgFailedToSetGeneratedIcon = "failed to set generated icon"
)

// Error Messages - Category Operations
const (
	ErrMsgFailedToListCategories = "failed to list categories"
	ErrMsgFailedToGetCategory    = "failed to get category"
	ErrMsgFailedToInsertCategory = "failed to insert category"
	ErrMsgFailedToUpdateCategory = "failed to update category"
	ErrMsgFailedToDeleteCategory = "failed to delete category"
	ErrMsgFailedToReassignItems  = "failed to move items to other"
	ErrMsgFailedToSyncDefaults   = "failed to sync default categories"
)

// Error Messages - Snapshot Operations
const (
	ErrMsgFailedToGetSnapshot  = "failed to get unlock snapshot"
	ErrMsgFailedToSaveSnapshot = "failed to save unlock snapshot"
)

// Error Messages - Review Operations
const (
	ErrMsgFailedToUpsertReview     = "failed to upsert review"
	ErrMsgFailedToListReviews      = "failed to list reviews"
	ErrMsgFailedToGetReviewSummary = "failed to get review summary"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToQueryAnalyticsItems = "failed to query analytics items"
	ErrMsgFailedToQueryAnalyticsUsers = "failed to query analytics users"
	ErrMsgFailedToQueryCategoryNames  = "failed to query category names"
	ErrMsgFailedToQueryLeaderboard    = "failed to query leaderboard"
)
