package content

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravtsov/content-portal/internal/db"
)

// EventStore is the subset of the repository the event manager needs.
type EventStore interface {
	Events(ctx context.Context) ([]db.Event, error)
	EventByID(ctx context.Context, id int) (*db.Event, error)
	CreateEvent(ctx context.Context, event *db.Event) error
	UpdateEvent(ctx context.Context, event *db.Event) (int, error)
	DeleteEvent(ctx context.Context, id int) (*db.Event, error)
}

type EventManager struct {
	db EventStore
}

func NewEventManager(store EventStore) *EventManager {
	return &EventManager{
		db: store,
	}
}

func (m *EventManager) Events(ctx context.Context) ([]Event, error) {
	list, err := m.db.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get events: %w", err)
	}

	return NewEventList(list), nil
}

func (m *EventManager) EventByID(ctx context.Context, id int) (*Event, error) {
	dbEvent, err := m.db.EventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get event by id: %w", err)
	} else if dbEvent == nil {
		return nil, nil
	}

	event := NewEventModel(dbEvent)
	return &event, nil
}

// CreateEvent inserts a new event and returns it with the
// database-assigned identifier and timestamps filled in.
func (m *EventManager) CreateEvent(ctx context.Context, payload NewEvent) (*Event, error) {
	now := time.Now()
	dbEvent := &db.Event{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,
		StartsAt:    payload.StartsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.db.CreateEvent(ctx, dbEvent); err != nil {
		return nil, fmt.Errorf("db create event: %w", err)
	}

	event := NewEventModel(dbEvent)
	return &event, nil
}

// UpdateEvent replaces the event identified by event.ID and returns the
// stored record, or nil when no such event exists.
func (m *EventManager) UpdateEvent(ctx context.Context, event Event) (*Event, error) {
	event.UpdatedAt = time.Now()

	affected, err := m.db.UpdateEvent(ctx, &event.Event)
	if err != nil {
		return nil, fmt.Errorf("db update event: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return m.EventByID(ctx, event.ID)
}

// DeleteEvent removes the event and returns the record as it was before
// deletion, or nil when no such event exists.
func (m *EventManager) DeleteEvent(ctx context.Context, id int) (*Event, error) {
	dbEvent, err := m.db.DeleteEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db delete event: %w", err)
	} else if dbEvent == nil {
		return nil, nil
	}

	event := NewEventModel(dbEvent)
	return &event, nil
}
