package domain

import "time"

// PlantingRecord represents a user's record that a seed was planted on a
// specific calendar day. Multiple seeds may be planted on the same day.
type PlantingRecord struct {
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // canonical "YYYY-MM-DD"
	SeedID    string    `json:"seed_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PlantingSet is a snapshot of a user's plantings: date -> planted seed ids.
// Order within a day is irrelevant.
type PlantingSet map[string][]string
