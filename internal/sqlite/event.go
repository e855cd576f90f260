package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/planup/planup/internal/calendar"
	"github.com/planup/planup/internal/repository"
)

// EventRepository implements repository.EventRepository for SQLite
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListCalendars returns all known calendars
func (r *EventRepository) ListCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, writable FROM calendars ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	defer rows.Close()

	var cals []calendar.Calendar
	for rows.Next() {
		var cal calendar.Calendar
		if err := rows.Scan(&cal.ID, &cal.Name, &cal.Writable); err != nil {
			return nil, fmt.Errorf("failed to scan calendar: %w", err)
		}
		cals = append(cals, cal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calendar rows: %w", err)
	}
	return cals, nil
}

// CreateEvent inserts a scheduled event and returns its id
func (r *EventRepository) CreateEvent(ctx context.Context, calendarID string, ev calendar.Event) (string, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM calendars WHERE id = ?`, calendarID).Scan(&exists)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("calendar %q: %w", calendarID, repository.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to check calendar: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (id, calendar_id, title, notes, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, calendarID, ev.Title, ev.Notes, ev.Start, ev.End)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// ListEvents returns events in a calendar ordered by start time
func (r *EventRepository) ListEvents(ctx context.Context, calendarID string) ([]repository.StoredEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, calendar_id, title, notes, start_at, end_at
		FROM calendar_events
		WHERE calendar_id = ?
		ORDER BY start_at
	`, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []repository.StoredEvent
	for rows.Next() {
		var ev repository.StoredEvent
		var notes sql.NullString
		if err := rows.Scan(&ev.ID, &ev.CalendarID, &ev.Title, &notes, &ev.Start, &ev.End); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if notes.Valid {
			ev.Notes = notes.String
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}
