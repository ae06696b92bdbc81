package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/growth"
	"github.com/mlavell/sproutlog/internal/logger"
	"github.com/mlavell/sproutlog/internal/metrics"
	"github.com/mlavell/sproutlog/internal/repository"
)

// Service defines the journal interface
type Service interface {
	// Append stores a user-written entry for a date, optionally tied to a seed
	Append(ctx context.Context, userID, date, seedID, message string) (*domain.JournalEntry, error)

	// ListByUser returns the user's entries newest first, each enriched with
	// the projected harvest window when its seed data allows one
	ListByUser(ctx context.Context, userID string) ([]domain.JournalView, error)

	// RegisterEventHandlers subscribes the auto-append handler to the bus
	RegisterEventHandlers(bus event.Bus)
}

type service struct {
	repo     repository.Journal
	seedRepo repository.Seed
}

// NewService creates a new journal service
func NewService(repo repository.Journal, seedRepo repository.Seed) Service {
	return &service{repo: repo, seedRepo: seedRepo}
}

// Append stores a user-written entry
func (s *service) Append(ctx context.Context, userID, date, seedID, message string) (*domain.JournalEntry, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" || len(message) > MaxMessageLength {
		return nil, fmt.Errorf("%w: message must be 1-%d characters", domain.ErrInvalidInput, MaxMessageLength)
	}

	if seedID != "" {
		if _, err := s.seedRepo.GetByID(ctx, userID, seedID); err != nil {
			return nil, err
		}
	}

	entry := &domain.JournalEntry{
		UserID:  userID,
		Date:    day.String(),
		SeedID:  seedID,
		Message: message,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	metrics.JournalEntriesAppended.Inc()
	logger.FromContext(ctx).Info(LogMsgEntryAppended, "date", entry.Date, "entryID", entry.ID)

	return entry, nil
}

// ListByUser returns the user's entries enriched for display. An entry whose
// seed is gone or whose growth data is unusable gets the placeholder text
// instead of failing the whole listing.
func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.JournalView, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	catalog, err := s.loadReferencedSeeds(ctx, userID, entries)
	if err != nil {
		return nil, err
	}

	views := make([]domain.JournalView, 0, len(entries))
	for _, entry := range entries {
		view := domain.JournalView{JournalEntry: entry}
		if entry.SeedID != "" {
			view.ExpectedHarvest = expectedHarvestText(entry, catalog)
		}
		views = append(views, view)
	}
	return views, nil
}

// RegisterEventHandlers subscribes the planting auto-append handler
func (s *service) RegisterEventHandlers(bus event.Bus) {
	bus.Subscribe(event.PlantingRecorded, s.handlePlantingRecorded)
}

// handlePlantingRecorded appends a log line for every recorded planting
func (s *service) handlePlantingRecorded(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.PlantingPayloadV1)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "eventType", evt.Type)
		return fmt.Errorf("unexpected payload type for event %s", evt.Type)
	}

	seedName := payload.SeedName
	if seedName == "" {
		seedName = FallbackSeedName
	}

	entry := &domain.JournalEntry{
		UserID:  payload.UserID,
		Date:    payload.Date,
		SeedID:  payload.SeedID,
		Message: fmt.Sprintf(AutoEntryFormat, seedName, payload.Date),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to append auto journal entry: %w", err)
	}

	metrics.JournalEntriesAppended.Inc()
	logger.FromContext(ctx).Info(LogMsgAutoEntryAppended, "date", payload.Date, "seedID", payload.SeedID)

	return nil
}

func (s *service) loadReferencedSeeds(ctx context.Context, userID string, entries []domain.JournalEntry) (map[string]domain.Seed, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, entry := range entries {
		if entry.SeedID == "" {
			continue
		}
		if _, ok := seen[entry.SeedID]; ok {
			continue
		}
		seen[entry.SeedID] = struct{}{}
		ids = append(ids, entry.SeedID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seeds, err := s.seedRepo.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	catalog := make(map[string]domain.Seed, len(seeds))
	for _, seed := range seeds {
		catalog[seed.ID] = seed
	}
	return catalog, nil
}

func expectedHarvestText(entry domain.JournalEntry, catalog map[string]domain.Seed) string {
	seed, ok := catalog[entry.SeedID]
	if !ok {
		return MsgMissingSeedData
	}
	window, err := growth.WindowForSeed(entry.Date, seed)
	if err != nil {
		return MsgMissingSeedData
	}
	return ExpectedHarvestPrefix + window.String()
}
