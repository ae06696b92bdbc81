package repository

import (
	"context"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Seed handles persistence of a user's seed inventory
type Seed interface {
	// Create inserts a new seed and fills in generated fields (ID, timestamps)
	Create(ctx context.Context, seed *domain.Seed) error

	// GetByID retrieves one of the user's seeds; domain.ErrSeedNotFound on miss
	GetByID(ctx context.Context, userID, seedID string) (*domain.Seed, error)

	// GetByIDs retrieves the subset of the given seeds that exist for the user.
	// Missing ids are silently absent from the result.
	GetByIDs(ctx context.Context, userID string, seedIDs []string) ([]domain.Seed, error)

	// ListByUser returns the user's seeds ordered by name ascending
	ListByUser(ctx context.Context, userID string) ([]domain.Seed, error)

	// Update persists changes to an existing seed; domain.ErrSeedNotFound on miss
	Update(ctx context.Context, seed *domain.Seed) error

	// AdjustQuantity changes the stored quantity by delta, clamped at zero,
	// and returns the new quantity
	AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error)

	// BeginTx starts a transaction for multi-table seed operations
	BeginTx(ctx context.Context) (SeedTx, error)
}

// SeedTx groups the writes that must happen atomically when a seed is
// removed: the seed row plus every planting that references it.
type SeedTx interface {
	Tx

	DeleteSeed(ctx context.Context, userID, seedID string) error
	DeletePlantingsBySeed(ctx context.Context, userID, seedID string) error
}
