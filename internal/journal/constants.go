package journal

// User-facing text
const (
	// ExpectedHarvestPrefix precedes the projected window in a journal view
	ExpectedHarvestPrefix = "Expected harvest: "

	// MsgMissingSeedData is shown when the referenced seed is gone or its
	// growth data cannot produce a window
	MsgMissingSeedData = "Missing seed data"

	// AutoEntryFormat is the message appended when a planting is recorded
	AutoEntryFormat = "%s planted on %s"

	// FallbackSeedName substitutes for a seed whose name is unknown
	FallbackSeedName = "Seed"
)

// Validation limits
const (
	MaxMessageLength = 2000
)

// Log Messages
const (
	LogMsgEntryAppended     = "Journal entry appended"
	LogMsgAutoEntryAppended = "Auto journal entry appended for planting"
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
