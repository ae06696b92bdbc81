package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/repository"
)

// SeedRepository implements the seed repository for PostgreSQL
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository creates a new SeedRepository
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

const seedColumns = `seed_id, user_id, name, category, quantity, min_growth_days, max_growth_days, preferred_weather, info, created_at, updated_at`

func scanSeed(row pgx.Row, seed *domain.Seed) error {
	return row.Scan(
		&seed.ID,
		&seed.UserID,
		&seed.Name,
		&seed.Category,
		&seed.Quantity,
		&seed.MinGrowthDays,
		&seed.MaxGrowthDays,
		&seed.PreferredWeather,
		&seed.Info,
		&seed.CreatedAt,
		&seed.UpdatedAt,
	)
}

// Create inserts a new seed and fills in the generated id and timestamps
func (r *SeedRepository) Create(ctx context.Context, seed *domain.Seed) error {
	query := `
		INSERT INTO seeds (user_id, name, category, quantity, min_growth_days, max_growth_days, preferred_weather, info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seed_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		seed.UserID,
		seed.Name,
		seed.Category,
		seed.Quantity,
		seed.MinGrowthDays,
		seed.MaxGrowthDays,
		seed.PreferredWeather,
		seed.Info,
	).Scan(&seed.ID, &seed.CreatedAt, &seed.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert seed: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's seeds
func (r *SeedRepository) GetByID(ctx context.Context, userID, seedID string) (*domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE user_id = $1 AND seed_id = $2`

	var seed domain.Seed
	err := scanSeed(r.db.QueryRow(ctx, query, userID, seedID), &seed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeedNotFound
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return &seed, nil
}

// GetByIDs retrieves the subset of the given seeds that exist for the user
func (r *SeedRepository) GetByIDs(ctx context.Context, userID string, seedIDs []string) ([]domain.Seed, error) {
	if len(seedIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + seedColumns + ` FROM seeds WHERE user_id = $1 AND seed_id = ANY($2)`
	rows, err := r.db.Query(ctx, query, userID, seedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query seeds: %w", err)
	}
	defer rows.Close()

	var seeds []domain.Seed
	for rows.Next() {
		var seed domain.Seed
		if err := scanSeed(rows, &seed); err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seeds: %w", err)
	}
	return seeds, nil
}

// ListByUser returns the user's seeds ordered by name ascending
func (r *SeedRepository) ListByUser(ctx context.Context, userID string) ([]domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE user_id = $1 ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seeds: %w", err)
	}
	defer rows.Close()

	var seeds []domain.Seed
	for rows.Next() {
		var seed domain.Seed
		if err := scanSeed(rows, &seed); err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seeds: %w", err)
	}
	return seeds, nil
}

// Update persists changes to an existing seed
func (r *SeedRepository) Update(ctx context.Context, seed *domain.Seed) error {
	query := `
		UPDATE seeds
		SET name = $1, category = $2, quantity = $3, min_growth_days = $4,
		    max_growth_days = $5, preferred_weather = $6, info = $7, updated_at = NOW()
		WHERE user_id = $8 AND seed_id = $9
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		seed.Name,
		seed.Category,
		seed.Quantity,
		seed.MinGrowthDays,
		seed.MaxGrowthDays,
		seed.PreferredWeather,
		seed.Info,
		seed.UserID,
		seed.ID,
	).Scan(&seed.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSeedNotFound
		}
		return fmt.Errorf("failed to update seed: %w", err)
	}
	return nil
}

// AdjustQuantity changes the stored quantity by delta, clamped at zero,
// and returns the new quantity
func (r *SeedRepository) AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error) {
	query := `
		UPDATE seeds
		SET quantity = GREATEST(quantity + $1, 0), updated_at = NOW()
		WHERE user_id = $2 AND seed_id = $3
		RETURNING quantity
	`
	var quantity int
	err := r.db.QueryRow(ctx, query, delta, userID, seedID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrSeedNotFound
		}
		return 0, fmt.Errorf("failed to adjust seed quantity: %w", err)
	}
	return quantity, nil
}

// BeginTx starts a transaction for multi-table seed operations
func (r *SeedRepository) BeginTx(ctx context.Context) (repository.SeedTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &seedTx{tx: tx}, nil
}

// seedTx implements repository.SeedTx on a pgx transaction
type seedTx struct {
	tx pgx.Tx
}

func (t *seedTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *seedTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// DeleteSeed removes the seed row inside the transaction
func (t *seedTx) DeleteSeed(ctx context.Context, userID, seedID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM seeds WHERE user_id = $1 AND seed_id = $2`, userID, seedID)
	if err != nil {
		return fmt.Errorf("failed to delete seed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSeedNotFound
	}
	return nil
}

// DeletePlantingsBySeed removes every planting that references the seed
func (t *seedTx) DeletePlantingsBySeed(ctx context.Context, userID, seedID string) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM planted_dates WHERE user_id = $1 AND seed_id = $2`, userID, seedID)
	if err != nil {
		return fmt.Errorf("failed to delete plantings for seed: %w", err)
	}
	return nil
}
