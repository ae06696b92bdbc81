package seed

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/repository"
)

type mockSeedRepo struct {
	mock.Mock
}

func (m *mockSeedRepo) Create(ctx context.Context, seed *domain.Seed) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *mockSeedRepo) GetByID(ctx context.Context, userID, seedID string) (*domain.Seed, error) {
	args := m.Called(ctx, userID, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *mockSeedRepo) GetByIDs(ctx context.Context, userID string, seedIDs []string) ([]domain.Seed, error) {
	args := m.Called(ctx, userID, seedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *mockSeedRepo) ListByUser(ctx context.Context, userID string) ([]domain.Seed, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *mockSeedRepo) Update(ctx context.Context, seed *domain.Seed) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *mockSeedRepo) AdjustQuantity(ctx context.Context, userID, seedID string, delta int) (int, error) {
	args := m.Called(ctx, userID, seedID, delta)
	return args.Int(0), args.Error(1)
}

func (m *mockSeedRepo) BeginTx(ctx context.Context) (repository.SeedTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SeedTx), args.Error(1)
}

type mockSeedTx struct {
	mock.Mock
}

func (m *mockSeedTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockSeedTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockSeedTx) DeleteSeed(ctx context.Context, userID, seedID string) error {
	args := m.Called(ctx, userID, seedID)
	return args.Error(0)
}

func (m *mockSeedTx) DeletePlantingsBySeed(ctx context.Context, userID, seedID string) error {
	args := m.Called(ctx, userID, seedID)
	return args.Error(0)
}

type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *mockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
