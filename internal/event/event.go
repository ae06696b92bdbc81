package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	PlantingRecorded Type = "planting.recorded"
	PlantingRemoved  Type = "planting.removed"
	SeedCreated      Type = "seed.created"
	SeedUpdated      Type = "seed.updated"
	SeedDeleted      Type = "seed.deleted"
)

// Typed event payloads for type safety

// PlantingPayloadV1 is the typed payload for planting events
type PlantingPayloadV1 struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	SeedID    string `json:"seed_id"`
	SeedName  string `json:"seed_name"`
	Timestamp int64  `json:"timestamp"`
}

// SeedPayloadV1 is the typed payload for seed inventory events
type SeedPayloadV1 struct {
	UserID    string `json:"user_id"`
	SeedID    string `json:"seed_id"`
	SeedName  string `json:"seed_name"`
	Timestamp int64  `json:"timestamp"`
}

// NewPlantingRecordedEvent creates a new planting recorded event
func NewPlantingRecordedEvent(userID, date, seedID, seedName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantingRecorded,
		Payload: PlantingPayloadV1{
			UserID:    userID,
			Date:      date,
			SeedID:    seedID,
			SeedName:  seedName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlantingRemovedEvent creates a new planting removed event
func NewPlantingRemovedEvent(userID, date, seedID, seedName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantingRemoved,
		Payload: PlantingPayloadV1{
			UserID:    userID,
			Date:      date,
			SeedID:    seedID,
			SeedName:  seedName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSeedEvent creates a seed inventory event of the given type
func NewSeedEvent(eventType Type, userID, seedID, seedName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: SeedPayloadV1{
			UserID:    userID,
			SeedID:    seedID,
			SeedName:  seedName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
