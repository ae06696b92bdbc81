package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlavell/sproutlog/internal/domain"
)

// WikiRepository implements the wiki repository for PostgreSQL. Fruit and
// vegetable reference entries live in separate tables and are merged on read.
type WikiRepository struct {
	db *pgxpool.Pool
}

// NewWikiRepository creates a new WikiRepository
func NewWikiRepository(db *pgxpool.Pool) *WikiRepository {
	return &WikiRepository{db: db}
}

const wikiUnionQuery = `
	SELECT id, name, 'Fruit' AS category, min_growth_days, max_growth_days,
	       COALESCE(preferred_weather, ''), COALESCE(info, ''), COALESCE(image_url, '')
	FROM fruit_seeds
	UNION ALL
	SELECT id, name, 'Vegetable' AS category, min_growth_days, max_growth_days,
	       COALESCE(preferred_weather, ''), COALESCE(info, ''), COALESCE(image_url, '')
	FROM vegetable_seeds
`

func scanWikiEntry(row pgx.Row, entry *domain.WikiEntry) error {
	return row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.Category,
		&entry.MinGrowthDays,
		&entry.MaxGrowthDays,
		&entry.PreferredWeather,
		&entry.Info,
		&entry.ImageURL,
	)
}

// List returns all reference entries from both category tables
func (r *WikiRepository) List(ctx context.Context) ([]domain.WikiEntry, error) {
	rows, err := r.db.Query(ctx, wikiUnionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query wiki entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.WikiEntry
	for rows.Next() {
		var entry domain.WikiEntry
		if err := scanWikiEntry(rows, &entry); err != nil {
			return nil, fmt.Errorf("failed to scan wiki entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wiki entries: %w", err)
	}
	return entries, nil
}

// GetByID retrieves one entry from either category table
func (r *WikiRepository) GetByID(ctx context.Context, id string) (*domain.WikiEntry, error) {
	query := `SELECT * FROM (` + wikiUnionQuery + `) AS wiki WHERE id = $1`

	var entry domain.WikiEntry
	err := scanWikiEntry(r.db.QueryRow(ctx, query, id), &entry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWikiEntryNotFound
		}
		return nil, fmt.Errorf("failed to get wiki entry: %w", err)
	}
	return &entry, nil
}
