package domain

import "time"

// JournalEntry is a dated log line, either auto-appended when a planting is
// recorded or written by the user.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // canonical "YYYY-MM-DD"
	SeedID    string    `json:"seed_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalView is a journal entry enriched with the projected harvest window
// for display. ExpectedHarvest falls back to a placeholder when the seed is
// missing or its growth data is unusable.
type JournalView struct {
	JournalEntry
	ExpectedHarvest string `json:"expected_harvest,omitempty"`
}
