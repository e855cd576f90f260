package repository

import (
	"context"

	"github.com/planup/planup/internal/calendar"
)

// EventRepository manages calendar and calendar-event persistence
type EventRepository interface {
	ListCalendars(ctx context.Context) ([]calendar.Calendar, error)
	CreateEvent(ctx context.Context, calendarID string, ev calendar.Event) (string, error)
	ListEvents(ctx context.Context, calendarID string) ([]StoredEvent, error)
}

// StoredEvent is a persisted calendar event
type StoredEvent struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendar_id"`
	calendar.Event
}
