package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/logger"
	"github.com/mlavell/sproutlog/internal/repository"
)

// Service defines the seed inventory interface
type Service interface {
	Create(ctx context.Context, userID string, input NewSeed) (*domain.Seed, error)
	Get(ctx context.Context, userID, seedID string) (*domain.Seed, error)
	List(ctx context.Context, userID string) ([]domain.Seed, error)
	Update(ctx context.Context, userID, seedID string, input UpdateSeed) (*domain.Seed, error)
	AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error)
	Delete(ctx context.Context, userID, seedID string) error
}

// NewSeed carries the fields for creating a seed. Growth duration arrives
// either as typed day counts or as a legacy free-text string ("60-90 days");
// the string form wins when both are set.
type NewSeed struct {
	Name             string
	Category         domain.SeedCategory
	Quantity         int
	MinGrowthDays    int
	MaxGrowthDays    int
	GrowthTime       string
	PreferredWeather string
	Info             string
}

// UpdateSeed carries the mutable fields of an existing seed. Nil pointers
// leave the stored value unchanged.
type UpdateSeed struct {
	Name             *string
	Category         *domain.SeedCategory
	Quantity         *int
	MinGrowthDays    *int
	MaxGrowthDays    *int
	GrowthTime       *string
	PreferredWeather *string
	Info             *string
}

type service struct {
	repo repository.Seed
	bus  event.Bus
}

// NewService creates a new seed service
func NewService(repo repository.Seed, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// Create validates and inserts a new seed, then announces it on the bus
func (s *service) Create(ctx context.Context, userID string, input NewSeed) (*domain.Seed, error) {
	minDays, maxDays, err := resolveGrowthDays(input.GrowthTime, input.MinGrowthDays, input.MaxGrowthDays)
	if err != nil {
		return nil, err
	}

	seed := &domain.Seed{
		UserID:           userID,
		Name:             strings.TrimSpace(input.Name),
		Category:         input.Category,
		Quantity:         input.Quantity,
		MinGrowthDays:    minDays,
		MaxGrowthDays:    maxDays,
		PreferredWeather: strings.TrimSpace(input.PreferredWeather),
		Info:             input.Info,
	}

	if err := validateSeed(seed); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	logger.FromContext(ctx).Info(LogMsgSeedCreated, "seedID", seed.ID, "name", seed.Name)
	s.publish(ctx, event.NewSeedEvent(event.SeedCreated, userID, seed.ID, seed.Name))

	return seed, nil
}

// Get retrieves one of the user's seeds
func (s *service) Get(ctx context.Context, userID, seedID string) (*domain.Seed, error) {
	return s.repo.GetByID(ctx, userID, seedID)
}

// List returns the user's seeds ordered by name
func (s *service) List(ctx context.Context, userID string) ([]domain.Seed, error) {
	seeds, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return seeds, nil
}

// Update applies the provided fields to an existing seed
func (s *service) Update(ctx context.Context, userID, seedID string, input UpdateSeed) (*domain.Seed, error) {
	seed, err := s.repo.GetByID(ctx, userID, seedID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		seed.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		seed.Category = *input.Category
	}
	if input.Quantity != nil {
		seed.Quantity = *input.Quantity
	}
	if input.GrowthTime != nil {
		minDays, maxDays, err := ParseGrowthRange(*input.GrowthTime)
		if err != nil {
			return nil, err
		}
		seed.MinGrowthDays = minDays
		seed.MaxGrowthDays = maxDays
	} else {
		if input.MinGrowthDays != nil {
			seed.MinGrowthDays = *input.MinGrowthDays
		}
		if input.MaxGrowthDays != nil {
			seed.MaxGrowthDays = *input.MaxGrowthDays
		}
	}
	if input.PreferredWeather != nil {
		seed.PreferredWeather = strings.TrimSpace(*input.PreferredWeather)
	}
	if input.Info != nil {
		seed.Info = *input.Info
	}

	if err := validateSeed(seed); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, seed); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSeedUpdated, "seedID", seed.ID)
	s.publish(ctx, event.NewSeedEvent(event.SeedUpdated, userID, seed.ID, seed.Name))

	return seed, nil
}

// AdjustQuantity changes the stored quantity by delta, clamped at zero
func (s *service) AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error) {
	quantity, err := s.repo.AdjustQuantity(ctx, userID, seedID, delta)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgQuantityAdjusted, "seedID", seedID, "delta", delta, "quantity", quantity)
	return quantity, nil
}

// Delete removes the seed and every planting that references it in one
// transaction
func (s *service) Delete(ctx context.Context, userID, seedID string) error {
	seed, err := s.repo.GetByID(ctx, userID, seedID)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DeletePlantingsBySeed(ctx, userID, seedID); err != nil {
		return err
	}
	if err := tx.DeleteSeed(ctx, userID, seedID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgSeedDeleted, "seedID", seedID, "name", seed.Name)
	s.publish(ctx, event.NewSeedEvent(event.SeedDeleted, userID, seedID, seed.Name))

	return nil
}

// publish sends an event, logging failures instead of surfacing them. Event
// delivery never fails the originating write.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "eventType", evt.Type, "error", err)
	}
}

// resolveGrowthDays picks between typed day counts and a legacy string
func resolveGrowthDays(growthTime string, minDays, maxDays int) (int, int, error) {
	if strings.TrimSpace(growthTime) != "" {
		return ParseGrowthRange(growthTime)
	}
	return minDays, maxDays, nil
}

func validateSeed(seed *domain.Seed) error {
	if seed.Name == "" || len(seed.Name) > MaxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", domain.ErrInvalidInput, MaxNameLength)
	}
	if !seed.Category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, seed.Category)
	}
	if seed.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
	}
	if seed.MinGrowthDays < 0 || seed.MaxGrowthDays < seed.MinGrowthDays {
		return fmt.Errorf("%w: min %d, max %d", domain.ErrInvalidGrowthRange, seed.MinGrowthDays, seed.MaxGrowthDays)
	}
	if len(seed.Info) > MaxInfoLength {
		return fmt.Errorf("%w: info exceeds %d characters", domain.ErrInvalidInput, MaxInfoLength)
	}
	return nil
}
