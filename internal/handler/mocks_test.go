package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/seed"
)

type mockSeedService struct {
	mock.Mock
}

func (m *mockSeedService) Create(ctx context.Context, userID string, input seed.NewSeed) (*domain.Seed, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *mockSeedService) Get(ctx context.Context, userID, seedID string) (*domain.Seed, error) {
	args := m.Called(ctx, userID, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *mockSeedService) List(ctx context.Context, userID string) ([]domain.Seed, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *mockSeedService) Update(ctx context.Context, userID, seedID string, input seed.UpdateSeed) (*domain.Seed, error) {
	args := m.Called(ctx, userID, seedID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *mockSeedService) AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error) {
	args := m.Called(ctx, userID, seedID, delta)
	return args.Int(0), args.Error(1)
}

func (m *mockSeedService) Delete(ctx context.Context, userID, seedID string) error {
	args := m.Called(ctx, userID, seedID)
	return args.Error(0)
}

type mockPlantingService struct {
	mock.Mock
}

func (m *mockPlantingService) Plant(ctx context.Context, userID, date, seedID string) error {
	args := m.Called(ctx, userID, date, seedID)
	return args.Error(0)
}

func (m *mockPlantingService) Unplant(ctx context.Context, userID, date, seedID string) error {
	args := m.Called(ctx, userID, date, seedID)
	return args.Error(0)
}

func (m *mockPlantingService) ListByUser(ctx context.Context, userID string) (domain.PlantingSet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PlantingSet), args.Error(1)
}

type mockCalendarService struct {
	mock.Mock
}

func (m *mockCalendarService) GetCalendar(ctx context.Context, userID, selectedDate string) (*domain.CalendarView, error) {
	args := m.Called(ctx, userID, selectedDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarView), args.Error(1)
}

func (m *mockCalendarService) InvalidateUser(userID string) {
	m.Called(userID)
}

func (m *mockCalendarService) RegisterEventHandlers(bus event.Bus) {
	m.Called(bus)
}

type mockJournalService struct {
	mock.Mock
}

func (m *mockJournalService) Append(ctx context.Context, userID, date, seedID, message string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, date, seedID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *mockJournalService) ListByUser(ctx context.Context, userID string) ([]domain.JournalView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalView), args.Error(1)
}

func (m *mockJournalService) RegisterEventHandlers(bus event.Bus) {
	m.Called(bus)
}

type mockWikiService struct {
	mock.Mock
}

func (m *mockWikiService) List(ctx context.Context, category domain.SeedCategory) ([]domain.WikiEntry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WikiEntry), args.Error(1)
}

func (m *mockWikiService) Get(ctx context.Context, id string) (*domain.WikiEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WikiEntry), args.Error(1)
}

func (m *mockWikiService) Search(ctx context.Context, query string) ([]domain.WikiEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WikiEntry), args.Error(1)
}
