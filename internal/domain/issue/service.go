package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/planup/planup/internal/calendar"
	"github.com/planup/planup/internal/domain/feed"
)

// Service orchestrates user actions: it validates input, dispatches the
// optional best-effort calendar side effect, and commits exactly one feed
// record per accepted action. The commit is never gated on the side effect.
type Service struct {
	feed     *feed.Store
	cal      calendar.Provider
	logger   *slog.Logger
	dispatch func(func())
	latency  time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithDispatcher overrides how side-effect tasks are launched. The default
// runs them on their own goroutine; tests inject a synchronous dispatcher.
func WithDispatcher(dispatch func(func())) ServiceOption {
	return func(s *Service) {
		if dispatch != nil {
			s.dispatch = dispatch
		}
	}
}

// WithLatency adds an artificial delay before the commit, standing in for
// the issue-tracker round trip. The delay postpones the commit but never
// aborts it.
func WithLatency(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.latency = d
		}
	}
}

// NewService creates a new action orchestrator. cal may be nil when no
// calendar capability is available; due dates then skip scheduling entirely.
func NewService(feedStore *feed.Store, cal calendar.Provider, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		feed:     feedStore,
		cal:      cal,
		logger:   logger,
		dispatch: func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIssue validates req, dispatches calendar scheduling when a due date
// is present, and commits an issue_created record. Validation failures are
// returned before anything else happens; once validation passes a record is
// always committed, whatever the side effect does.
func (s *Service) CreateIssue(ctx context.Context, req CreateRequest) (feed.ActivityRecord, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return feed.ActivityRecord{}, ErrTitleRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return feed.ActivityRecord{}, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(DueDateLayout, req.DueDate)
		if err != nil {
			return feed.ActivityRecord{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, req.DueDate)
		}
		dueDate = parsed
	}

	description := strings.TrimSpace(req.Description)

	if !dueDate.IsZero() && s.cal != nil {
		// Fire and forget: the task outlives the caller's context, and its
		// errors terminate in the logger.
		s.dispatch(func() {
			s.scheduleDueDate(context.Background(), title, description, dueDate)
		})
	}

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	rec := s.feed.Add(feed.ActivityRecord{
		Type:        feed.TypeIssueCreated,
		Title:       fmt.Sprintf("New issue %q created", title),
		Description: composeDescription(priority, description, dueDate),
		Icon:        "create",
		Color:       "#FF6B6B",
	})
	s.logger.Info("issue created", "activity_id", rec.ID, "title", title, "priority", priority)
	return rec, nil
}

// UpdateActivity applies a partial title/description update to a feed entry.
// A supplied title must be non-empty after trimming. Unknown ids are logged
// and ignored, preserving the feed's no-op contract for stale references.
func (s *Service) UpdateActivity(_ context.Context, id string, fields feed.UpdateFields) error {
	if fields.Title != nil {
		trimmed := strings.TrimSpace(*fields.Title)
		if trimmed == "" {
			return ErrTitleRequired
		}
		fields.Title = &trimmed
	}
	if fields.Description != nil {
		trimmed := strings.TrimSpace(*fields.Description)
		fields.Description = &trimmed
	}

	if _, err := s.feed.Update(id, fields); err != nil {
		if errors.Is(err, feed.ErrActivityNotFound) {
			s.logger.Warn("update of unknown activity ignored", "activity_id", id)
			return nil
		}
		return fmt.Errorf("updating activity: %w", err)
	}
	return nil
}

// DeleteActivity removes a feed entry. Unknown ids are logged and ignored.
func (s *Service) DeleteActivity(_ context.Context, id string) error {
	if err := s.feed.Delete(id); err != nil {
		if errors.Is(err, feed.ErrActivityNotFound) {
			s.logger.Warn("delete of unknown activity ignored", "activity_id", id)
			return nil
		}
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// scheduleDueDate creates a one-hour calendar event starting at the due
// date. Every failure path is swallowed here; nothing may escape to the
// caller or affect the committed record.
func (s *Service) scheduleDueDate(ctx context.Context, title, notes string, dueDate time.Time) {
	status, err := s.cal.RequestPermission(ctx)
	if err != nil {
		s.logger.Warn("calendar permission request failed", "error", err)
		return
	}
	if status != calendar.PermissionGranted {
		s.logger.Info("calendar permission not granted, skipping event", "status", status)
		return
	}

	cals, err := s.cal.ListCalendars(ctx)
	if err != nil {
		s.logger.Warn("listing calendars failed", "error", err)
		return
	}

	var target *calendar.Calendar
	for i := range cals {
		if cals[i].Writable {
			target = &cals[i]
			break
		}
	}
	if target == nil {
		s.logger.Info("no writable calendar available, skipping event")
		return
	}

	ev := calendar.Event{
		Title: title,
		Notes: notes,
		Start: dueDate,
		End:   dueDate.Add(time.Hour),
	}
	if err := s.cal.CreateEvent(ctx, target.ID, ev); err != nil {
		s.logger.Warn("calendar event creation failed", "calendar_id", target.ID, "error", err)
		return
	}
	s.logger.Debug("due date scheduled", "calendar_id", target.ID, "start", ev.Start)
}

func composeDescription(priority Priority, description string, dueDate time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Issue created with %s priority", priority)
	if description != "" {
		b.WriteString(": ")
		b.WriteString(description)
	}
	if !dueDate.IsZero() {
		b.WriteString(", due ")
		b.WriteString(dueDate.Format(dueDateDisplayLayout))
	}
	return b.String()
}
