package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/planup/planup/internal/domain/feed"
	"github.com/planup/planup/internal/domain/issue"
	"github.com/planup/planup/internal/transport"
)

// IssueService defines the orchestrator operations the surface needs.
type IssueService interface {
	CreateIssue(ctx context.Context, req issue.CreateRequest) (feed.ActivityRecord, error)
	UpdateActivity(ctx context.Context, id string, fields feed.UpdateFields) error
	DeleteActivity(ctx context.Context, id string) error
}

// FeedReader defines read access to the activity feed.
type FeedReader interface {
	List() []feed.ActivityRecord
}

// Handler dispatches RPC methods onto the feed core.
type Handler struct {
	issues IssueService
	feed   FeedReader
	now    func() time.Time
}

// NewHandler creates a new RPC handler.
func NewHandler(issues IssueService, feedReader FeedReader) *Handler {
	return &Handler{issues: issues, feed: feedReader, now: time.Now}
}

// Handle dispatches RPC requests to the orchestrator and feed store.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "issue.create":
		var req CreateIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, fmt.Errorf("%w: %v", transport.ErrBadParams, err)
		}
		rec, err := h.issues.CreateIssue(ctx, issue.CreateRequest{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return h.toResponse(rec), nil

	case "activity.list":
		records := h.feed.List()
		resp := make([]ActivityResponse, 0, len(records))
		for _, rec := range records {
			resp = append(resp, h.toResponse(rec))
		}
		return resp, nil

	case "activity.update":
		var req UpdateActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, fmt.Errorf("%w: %v", transport.ErrBadParams, err)
		}
		if req.ID == "" {
			return nil, fmt.Errorf("%w: id is required", transport.ErrBadParams)
		}
		err := h.issues.UpdateActivity(ctx, req.ID, feed.UpdateFields{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{OK: true}, nil

	case "activity.delete":
		var req DeleteActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, fmt.Errorf("%w: %v", transport.ErrBadParams, err)
		}
		if req.ID == "" {
			return nil, fmt.Errorf("%w: id is required", transport.ErrBadParams)
		}
		if err := h.issues.DeleteActivity(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{OK: true}, nil

	default:
		return nil, fmt.Errorf("%w: %s", transport.ErrMethodUnknown, method)
	}
}

func (h *Handler) toResponse(rec feed.ActivityRecord) ActivityResponse {
	return ActivityResponse{
		ID:          rec.ID,
		Type:        rec.Type,
		Title:       rec.Title,
		Description: rec.Description,
		Timestamp:   rec.Timestamp,
		TimeAgo:     feed.RelativeTime(rec.Timestamp, h.now()),
		Icon:        rec.Icon,
		Color:       rec.Color,
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

// mapError classifies domain errors for the wire: validation failures are
// invalid params, everything else passes through as-is.
func mapError(err error) error {
	switch {
	case errors.Is(err, issue.ErrTitleRequired),
		errors.Is(err, issue.ErrInvalidPriority),
		errors.Is(err, issue.ErrInvalidDueDate):
		return fmt.Errorf("%w: %s", transport.ErrBadParams, err)
	default:
		return err
	}
}
