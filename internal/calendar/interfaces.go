package calendar

import "context"

// Provider is the external calendar capability. Callers treat every failure,
// including permission denial and an empty calendar set, as non-fatal.
type Provider interface {
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	ListCalendars(ctx context.Context) ([]Calendar, error)
	CreateEvent(ctx context.Context, calendarID string, ev Event) error
}

// EventRepository provides persistence for calendars and scheduled events.
type EventRepository interface {
	ListCalendars(ctx context.Context) ([]Calendar, error)
	CreateEvent(ctx context.Context, calendarID string, ev Event) (string, error)
}
