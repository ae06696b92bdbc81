package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Seed operation error messages
	ErrMsgCreateSeedFailed     = "Failed to create seed"
	ErrMsgGetSeedFailed        = "Failed to get seed"
	ErrMsgListSeedsFailed      = "Failed to list seeds"
	ErrMsgUpdateSeedFailed     = "Failed to update seed"
	ErrMsgDeleteSeedFailed     = "Failed to delete seed"
	ErrMsgAdjustQuantityFailed = "Failed to adjust seed quantity"

	// Planting operation error messages
	ErrMsgPlantFailed        = "Failed to record planting"
	ErrMsgUnplantFailed      = "Failed to remove planting"
	ErrMsgListPlantingFailed = "Failed to list plantings"

	// Calendar operation error messages
	ErrMsgGetCalendarFailed = "Failed to build calendar"

	// Journal operation error messages
	ErrMsgAppendJournalFailed = "Failed to append journal entry"
	ErrMsgListJournalFailed   = "Failed to list journal entries"

	// Wiki operation error messages
	ErrMsgListWikiFailed = "Failed to list wiki entries"
	ErrMsgGetWikiFailed  = "Failed to get wiki entry"
)
