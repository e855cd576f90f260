package mocks

import (
	"context"

	"github.com/planup/planup/internal/calendar"
	"github.com/planup/planup/internal/repository"
	"github.com/stretchr/testify/mock"
)

// EventRepository is a mock for repository.EventRepository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) ListCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	args := m.Called(ctx)
	if cals, ok := args.Get(0).([]calendar.Calendar); ok {
		return cals, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) CreateEvent(ctx context.Context, calendarID string, ev calendar.Event) (string, error) {
	args := m.Called(ctx, calendarID, ev)
	return args.String(0), args.Error(1)
}

func (m *EventRepository) ListEvents(ctx context.Context, calendarID string) ([]repository.StoredEvent, error) {
	args := m.Called(ctx, calendarID)
	if evs, ok := args.Get(0).([]repository.StoredEvent); ok {
		return evs, args.Error(1)
	}
	return nil, args.Error(1)
}

// CalendarProvider is a mock for calendar.Provider.
type CalendarProvider struct {
	mock.Mock
}

func (m *CalendarProvider) RequestPermission(ctx context.Context) (calendar.PermissionStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(calendar.PermissionStatus), args.Error(1)
}

func (m *CalendarProvider) ListCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	args := m.Called(ctx)
	if cals, ok := args.Get(0).([]calendar.Calendar); ok {
		return cals, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarProvider) CreateEvent(ctx context.Context, calendarID string, ev calendar.Event) error {
	args := m.Called(ctx, calendarID, ev)
	return args.Error(0)
}
