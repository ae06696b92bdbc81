package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(PlantingRecorded, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	evt := NewPlantingRecordedEvent("user-1", "2024-06-10", "seed-1", "Tomato")
	err := bus.Publish(context.Background(), evt)
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, PlantingRecorded, received[0].Type)

	payload, ok := received[0].Payload.(PlantingPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "2024-06-10", payload.Date)
	assert.Equal(t, "Tomato", payload.SeedName)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewSeedEvent(SeedDeleted, "u", "s", "Apple"))
	assert.NoError(t, err)
}

func TestMemoryBusHandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(PlantingRemoved, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(PlantingRemoved, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewPlantingRemovedEvent("u", "2024-01-01", "s", "Apple"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 handler(s) failed")
	// A failing handler must not stop the others
	assert.Equal(t, 2, calls)
}

func TestMemoryBusConcurrentPublish(t *testing.T) {
	bus := NewMemoryBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(SeedUpdated, func(ctx context.Context, e Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = bus.Publish(context.Background(), NewSeedEvent(SeedUpdated, "u", "s", "Apple"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}
