package repository

import (
	"context"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Journal handles persistence of journal entries
type Journal interface {
	// Insert appends a journal entry and fills in generated fields
	Insert(ctx context.Context, entry *domain.JournalEntry) error

	// ListByUser returns the user's entries ordered by date descending,
	// newest first within a day
	ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}
