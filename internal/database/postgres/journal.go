package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlavell/sproutlog/internal/domain"
)

// JournalRepository implements the journal repository for PostgreSQL
type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

// Insert appends a journal entry and fills in the generated id and timestamp
func (r *JournalRepository) Insert(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (user_id, entry_date, seed_id, message)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING entry_id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Date, entry.SeedID, entry.Message).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// ListByUser returns the user's entries newest first
func (r *JournalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, user_id, to_char(entry_date, 'YYYY-MM-DD'), COALESCE(seed_id::text, ''), message, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.SeedID, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}
	return entries, nil
}
