package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/logger"
	"github.com/mlavell/sproutlog/internal/metrics"
	"github.com/mlavell/sproutlog/internal/repository"
)

// Service defines the calendar view interface
type Service interface {
	// GetCalendar returns the full annotation map for the user. The view is
	// rebuilt from a fresh snapshot whenever the underlying data changed;
	// unchanged snapshots are served from cache.
	GetCalendar(ctx context.Context, userID, selectedDate string) (*domain.CalendarView, error)

	// InvalidateUser drops every cached view belonging to the user
	InvalidateUser(userID string)

	// RegisterEventHandlers subscribes cache invalidation to data-change events
	RegisterEventHandlers(bus event.Bus)
}

type service struct {
	plantingRepo repository.Planting
	seedRepo     repository.Seed
	cache        *viewCache
}

// NewService creates a new calendar service
func NewService(plantingRepo repository.Planting, seedRepo repository.Seed, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		plantingRepo: plantingRepo,
		seedRepo:     seedRepo,
		cache:        newViewCache(cacheSize, cacheTTL),
	}
}

// GetCalendar snapshots the user's plantings and seed catalog, then either
// serves the memoized view or rebuilds it wholesale
func (s *service) GetCalendar(ctx context.Context, userID, selectedDate string) (*domain.CalendarView, error) {
	plantings, err := s.plantingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	seeds, err := s.seedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	catalog := make(map[string]domain.Seed, len(seeds))
	for _, seed := range seeds {
		catalog[seed.ID] = seed
	}

	key := cacheKey(userID, selectedDate)
	fingerprint := snapshotFingerprint(plantings, catalog, selectedDate)

	if view, ok := s.cache.get(key, fingerprint); ok {
		metrics.CalendarCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgCalendarCacheHit, "selected", selectedDate)
		return view, nil
	}

	view := Annotate(plantings, catalog, selectedDate)

	metrics.CalendarRebuilds.Inc()
	for _, skipped := range view.Skipped {
		metrics.CalendarSkippedEntries.WithLabelValues(skipped.Reason).Inc()
	}
	logger.FromContext(ctx).Debug(LogMsgCalendarRebuilt,
		"days", len(view.Days), "skipped", len(view.Skipped), "selected", selectedDate)

	s.cache.put(key, fingerprint, view)
	return view, nil
}

// InvalidateUser drops every cached view belonging to the user
func (s *service) InvalidateUser(userID string) {
	s.cache.invalidateUser(userID)
}

// RegisterEventHandlers invalidates the user's cached views on every
// planting or seed change
func (s *service) RegisterEventHandlers(bus event.Bus) {
	invalidate := func(ctx context.Context, evt event.Event) error {
		userID, ok := eventUserID(evt)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "eventType", evt.Type)
			return fmt.Errorf("unexpected payload type for event %s", evt.Type)
		}
		s.InvalidateUser(userID)
		logger.FromContext(ctx).Debug(LogMsgUserCacheEvicted, "eventType", evt.Type)
		return nil
	}

	bus.Subscribe(event.PlantingRecorded, invalidate)
	bus.Subscribe(event.PlantingRemoved, invalidate)
	bus.Subscribe(event.SeedCreated, invalidate)
	bus.Subscribe(event.SeedUpdated, invalidate)
	bus.Subscribe(event.SeedDeleted, invalidate)
}

func eventUserID(evt event.Event) (string, bool) {
	switch payload := evt.Payload.(type) {
	case event.PlantingPayloadV1:
		return payload.UserID, true
	case event.SeedPayloadV1:
		return payload.UserID, true
	default:
		return "", false
	}
}
