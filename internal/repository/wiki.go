package repository

import (
	"context"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Wiki provides read access to the shared seed reference catalog. Fruit and
// vegetable entries live in separate tables; implementations return them
// merged.
type Wiki interface {
	// List returns all reference entries, category-tagged, unordered
	List(ctx context.Context) ([]domain.WikiEntry, error)

	// GetByID retrieves one entry; domain.ErrWikiEntryNotFound on miss
	GetByID(ctx context.Context, id string) (*domain.WikiEntry, error)
}
