package repository

import (
	"context"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Planting handles persistence of planted-date records
type Planting interface {
	// Upsert records that a seed was planted on a date. Re-planting the same
	// seed on the same day is a no-op.
	Upsert(ctx context.Context, record *domain.PlantingRecord) error

	// Delete removes a planting; domain.ErrPlantingNotFound when absent
	Delete(ctx context.Context, userID, date, seedID string) error

	// ListByUser returns the full snapshot of the user's plantings as a
	// date -> seed-ids map, the annotator's input shape
	ListByUser(ctx context.Context, userID string) (domain.PlantingSet, error)
}
