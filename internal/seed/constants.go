package seed

// Validation limits
const (
	MaxNameLength = 100
	MaxInfoLength = 2000
)

// Log Messages
const (
	LogMsgSeedCreated        = "Seed created"
	LogMsgSeedUpdated        = "Seed updated"
	LogMsgSeedDeleted        = "Seed deleted"
	LogMsgQuantityAdjusted   = "Seed quantity adjusted"
	LogMsgEventPublishFailed = "Failed to publish seed event"
)
