package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/event"
)

const testUserID = "user-1"

func newTestService(t *testing.T) (Service, *mockSeedRepo, *mockBus) {
	t.Helper()
	repo := new(mockSeedRepo)
	bus := new(mockBus)
	return NewService(repo, bus), repo, bus
}

func TestService_Create(t *testing.T) {
	t.Run("creates seed with typed growth days", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Seed) bool {
			return s.Name == "Tomato" && s.MinGrowthDays == 60 && s.MaxGrowthDays == 80
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Seed).ID = "seed-1"
		}).Return(nil)
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.SeedCreated
		})).Return(nil)

		seed, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:          "Tomato",
			Category:      domain.CategoryVegetable,
			Quantity:      5,
			MinGrowthDays: 60,
			MaxGrowthDays: 80,
		})

		require.NoError(t, err)
		assert.Equal(t, "seed-1", seed.ID)
		assert.Equal(t, testUserID, seed.UserID)
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("normalizes legacy growth string", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Seed) bool {
			return s.MinGrowthDays == 30 && s.MaxGrowthDays == 60
		})).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:       "Lettuce",
			Category:   domain.CategoryVegetable,
			GrowthTime: "30-60 days",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("legacy string wins over typed fields", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Seed) bool {
			return s.MinGrowthDays == 90 && s.MaxGrowthDays == 90
		})).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:          "Carrot",
			Category:      domain.CategoryVegetable,
			GrowthTime:    "90 days",
			MinGrowthDays: 1,
			MaxGrowthDays: 2,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:     "Mystery",
			Category: "Herb",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:     "   ",
			Category: domain.CategoryFruit,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects inverted growth range", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:          "Pepper",
			Category:      domain.CategoryVegetable,
			MinGrowthDays: 90,
			MaxGrowthDays: 60,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidGrowthRange)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("publish failure does not fail the create", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

		_, err := svc.Create(context.Background(), testUserID, NewSeed{
			Name:          "Apple",
			Category:      domain.CategoryFruit,
			MinGrowthDays: 60,
			MaxGrowthDays: 90,
		})

		require.NoError(t, err)
	})
}

func TestService_Update(t *testing.T) {
	existing := func() *domain.Seed {
		return &domain.Seed{
			ID:            "seed-1",
			UserID:        testUserID,
			Name:          "Tomato",
			Category:      domain.CategoryVegetable,
			Quantity:      5,
			MinGrowthDays: 60,
			MaxGrowthDays: 80,
		}
	}

	t.Run("applies partial update", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("GetByID", mock.Anything, testUserID, "seed-1").Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Seed) bool {
			return s.Quantity == 12 && s.Name == "Tomato"
		})).Return(nil)
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.SeedUpdated
		})).Return(nil)

		quantity := 12
		seed, err := svc.Update(context.Background(), testUserID, "seed-1", UpdateSeed{Quantity: &quantity})

		require.NoError(t, err)
		assert.Equal(t, 12, seed.Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("normalizes legacy growth string on update", func(t *testing.T) {
		svc, repo, bus := newTestService(t)

		repo.On("GetByID", mock.Anything, testUserID, "seed-1").Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Seed) bool {
			return s.MinGrowthDays == 70 && s.MaxGrowthDays == 100
		})).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		growth := "70-100 days"
		_, err := svc.Update(context.Background(), testUserID, "seed-1", UpdateSeed{GrowthTime: &growth})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("seed not found", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.On("GetByID", mock.Anything, testUserID, "missing").Return(nil, domain.ErrSeedNotFound)

		_, err := svc.Update(context.Background(), testUserID, "missing", UpdateSeed{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSeedNotFound)
	})
}

func TestService_AdjustQuantity(t *testing.T) {
	t.Run("returns new quantity", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.On("AdjustQuantity", mock.Anything, testUserID, "seed-1", -2).Return(3, nil)

		quantity, err := svc.AdjustQuantity(context.Background(), testUserID, "seed-1", -2)

		require.NoError(t, err)
		assert.Equal(t, 3, quantity)
	})

	t.Run("seed not found", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.On("AdjustQuantity", mock.Anything, testUserID, "missing", 1).Return(0, domain.ErrSeedNotFound)

		_, err := svc.AdjustQuantity(context.Background(), testUserID, "missing", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSeedNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes seed and its plantings atomically", func(t *testing.T) {
		svc, repo, bus := newTestService(t)
		tx := new(mockSeedTx)

		repo.On("GetByID", mock.Anything, testUserID, "seed-1").
			Return(&domain.Seed{ID: "seed-1", UserID: testUserID, Name: "Tomato"}, nil)
		repo.On("BeginTx", mock.Anything).Return(tx, nil)
		tx.On("DeletePlantingsBySeed", mock.Anything, testUserID, "seed-1").Return(nil)
		tx.On("DeleteSeed", mock.Anything, testUserID, "seed-1").Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.SeedDeleted
		})).Return(nil)

		err := svc.Delete(context.Background(), testUserID, "seed-1")

		require.NoError(t, err)
		tx.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("rolls back when seed delete fails", func(t *testing.T) {
		svc, repo, bus := newTestService(t)
		tx := new(mockSeedTx)

		repo.On("GetByID", mock.Anything, testUserID, "seed-1").
			Return(&domain.Seed{ID: "seed-1", UserID: testUserID, Name: "Tomato"}, nil)
		repo.On("BeginTx", mock.Anything).Return(tx, nil)
		tx.On("DeletePlantingsBySeed", mock.Anything, testUserID, "seed-1").Return(nil)
		tx.On("DeleteSeed", mock.Anything, testUserID, "seed-1").Return(errors.New("boom"))
		tx.On("Rollback", mock.Anything).Return(nil)

		err := svc.Delete(context.Background(), testUserID, "seed-1")

		require.Error(t, err)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("seed not found", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.On("GetByID", mock.Anything, testUserID, "missing").Return(nil, domain.ErrSeedNotFound)

		err := svc.Delete(context.Background(), testUserID, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSeedNotFound)
		repo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})
}
