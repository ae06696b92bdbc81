package database

import "time"

// Pool sizing defaults, applied when Options leave a field unset
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
	DefaultConnLifetime   = 30 * time.Minute
	DefaultConnIdleTime   = 5 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgConnected = "Connected to database"
)
