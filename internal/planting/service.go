package planting

import (
	"context"
	"fmt"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/logger"
	"github.com/mlavell/sproutlog/internal/metrics"
	"github.com/mlavell/sproutlog/internal/repository"
)

// Service defines the planting record interface
type Service interface {
	// Plant records that a seed was planted on a date. Re-planting the same
	// seed on the same day is accepted and changes nothing.
	Plant(ctx context.Context, userID, date, seedID string) error

	// Unplant removes a planting record
	Unplant(ctx context.Context, userID, date, seedID string) error

	// ListByUser returns the user's full planting snapshot
	ListByUser(ctx context.Context, userID string) (domain.PlantingSet, error)
}

type service struct {
	repo     repository.Planting
	seedRepo repository.Seed
	bus      event.Bus
}

// NewService creates a new planting service
func NewService(repo repository.Planting, seedRepo repository.Seed, bus event.Bus) Service {
	return &service{repo: repo, seedRepo: seedRepo, bus: bus}
}

// Plant validates the date and seed, stores the record and announces it
func (s *service) Plant(ctx context.Context, userID, date, seedID string) error {
	day, err := domain.ParseDay(date)
	if err != nil {
		return err
	}

	seed, err := s.seedRepo.GetByID(ctx, userID, seedID)
	if err != nil {
		return err
	}

	record := &domain.PlantingRecord{
		UserID: userID,
		Date:   day.String(),
		SeedID: seedID,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	metrics.PlantingsRecorded.Inc()
	logger.FromContext(ctx).Info(LogMsgPlantingRecorded, "date", record.Date, "seedID", seedID, "seed", seed.Name)
	s.publish(ctx, event.NewPlantingRecordedEvent(userID, record.Date, seedID, seed.Name))

	return nil
}

// Unplant removes a planting record and announces the removal
func (s *service) Unplant(ctx context.Context, userID, date, seedID string) error {
	day, err := domain.ParseDay(date)
	if err != nil {
		return err
	}

	// Resolve the seed name before the row disappears; the seed itself may
	// already be gone, so a miss only blanks the name.
	seedName := ""
	if seed, err := s.seedRepo.GetByID(ctx, userID, seedID); err == nil {
		seedName = seed.Name
	}

	if err := s.repo.Delete(ctx, userID, day.String(), seedID); err != nil {
		return err
	}

	metrics.PlantingsRemoved.Inc()
	logger.FromContext(ctx).Info(LogMsgPlantingRemoved, "date", day.String(), "seedID", seedID)
	s.publish(ctx, event.NewPlantingRemovedEvent(userID, day.String(), seedID, seedName))

	return nil
}

// ListByUser returns the user's full planting snapshot
func (s *service) ListByUser(ctx context.Context, userID string) (domain.PlantingSet, error) {
	set, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return set, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "eventType", evt.Type, "error", err)
	}
}
