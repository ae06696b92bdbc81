package planting

// Log Messages
const (
	LogMsgPlantingRecorded   = "Planting recorded"
	LogMsgPlantingRemoved    = "Planting removed"
	LogMsgEventPublishFailed = "Failed to publish planting event"
)
