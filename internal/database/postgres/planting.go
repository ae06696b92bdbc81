package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlavell/sproutlog/internal/domain"
)

// PlantingRepository implements the planting repository for PostgreSQL
type PlantingRepository struct {
	db *pgxpool.Pool
}

// NewPlantingRepository creates a new PlantingRepository
func NewPlantingRepository(db *pgxpool.Pool) *PlantingRepository {
	return &PlantingRepository{db: db}
}

// Upsert records that a seed was planted on a date. Re-planting the same
// seed on the same day is a no-op.
func (r *PlantingRepository) Upsert(ctx context.Context, record *domain.PlantingRecord) error {
	query := `
		INSERT INTO planted_dates (user_id, planted_on, seed_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, planted_on, seed_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, record.UserID, record.Date, record.SeedID)
	if err != nil {
		return fmt.Errorf("failed to upsert planting: %w", err)
	}
	return nil
}

// Delete removes a planting record
func (r *PlantingRepository) Delete(ctx context.Context, userID, date, seedID string) error {
	query := `DELETE FROM planted_dates WHERE user_id = $1 AND planted_on = $2 AND seed_id = $3`
	tag, err := r.db.Exec(ctx, query, userID, date, seedID)
	if err != nil {
		return fmt.Errorf("failed to delete planting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlantingNotFound
	}
	return nil
}

// ListByUser returns the full snapshot of the user's plantings keyed by
// canonical date string
func (r *PlantingRepository) ListByUser(ctx context.Context, userID string) (domain.PlantingSet, error) {
	query := `
		SELECT to_char(planted_on, 'YYYY-MM-DD'), seed_id
		FROM planted_dates
		WHERE user_id = $1
		ORDER BY planted_on, seed_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plantings: %w", err)
	}
	defer rows.Close()

	set := make(domain.PlantingSet)
	for rows.Next() {
		var date, seedID string
		if err := rows.Scan(&date, &seedID); err != nil {
			return nil, fmt.Errorf("failed to scan planting: %w", err)
		}
		set[date] = append(set[date], seedID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plantings: %w", err)
	}
	return set, nil
}
