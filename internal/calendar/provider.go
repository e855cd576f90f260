package calendar

import (
	"context"
	"fmt"
	"log/slog"
)

// LocalProvider is a calendar provider backed by the local event store. It
// stands in for the device calendar: the permission outcome is fixed at
// construction (from configuration) and calendars and events live in the
// event repository.
type LocalProvider struct {
	events     EventRepository
	permission PermissionStatus
	logger     *slog.Logger
}

// NewLocalProvider creates a provider over the given event store.
func NewLocalProvider(events EventRepository, permission PermissionStatus, logger *slog.Logger) *LocalProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalProvider{events: events, permission: permission, logger: logger}
}

// RequestPermission reports the configured permission outcome.
func (p *LocalProvider) RequestPermission(_ context.Context) (PermissionStatus, error) {
	return p.permission, nil
}

// ListCalendars returns the calendars known to the event store.
func (p *LocalProvider) ListCalendars(ctx context.Context) ([]Calendar, error) {
	cals, err := p.events.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}
	return cals, nil
}

// CreateEvent schedules ev into the given calendar.
func (p *LocalProvider) CreateEvent(ctx context.Context, calendarID string, ev Event) error {
	id, err := p.events.CreateEvent(ctx, calendarID, ev)
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	p.logger.Debug("calendar event created", "event_id", id, "calendar_id", calendarID, "title", ev.Title)
	return nil
}
