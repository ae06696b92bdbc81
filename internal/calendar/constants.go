package calendar

// DefaultCacheSize is used when the service is constructed without tuning
const DefaultCacheSize = 256

// Log Messages
const (
	LogMsgCalendarRebuilt   = "Calendar view rebuilt"
	LogMsgCalendarCacheHit  = "Calendar view served from cache"
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgUserCacheEvicted  = "Calendar cache invalidated for user"
)
