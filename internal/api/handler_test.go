package api

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/planup/planup/internal/domain/feed"
	"github.com/planup/planup/internal/domain/issue"
	"github.com/planup/planup/internal/transport"
	"github.com/stretchr/testify/require"
)

type issueStub struct {
	createFn func(context.Context, issue.CreateRequest) (feed.ActivityRecord, error)
	updateFn func(context.Context, string, feed.UpdateFields) error
	deleteFn func(context.Context, string) error
}

func (s issueStub) CreateIssue(ctx context.Context, req issue.CreateRequest) (feed.ActivityRecord, error) {
	return s.createFn(ctx, req)
}
func (s issueStub) UpdateActivity(ctx context.Context, id string, fields feed.UpdateFields) error {
	return s.updateFn(ctx, id, fields)
}
func (s issueStub) DeleteActivity(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type feedStub struct {
	records []feed.ActivityRecord
}

func (s feedStub) List() []feed.ActivityRecord {
	return s.records
}

func TestHandler_CreateIssue(t *testing.T) {
	ctx := context.Background()
	var got issue.CreateRequest
	handler := NewHandler(issueStub{
		createFn: func(_ context.Context, req issue.CreateRequest) (feed.ActivityRecord, error) {
			got = req
			return feed.ActivityRecord{ID: "1", Type: feed.TypeIssueCreated, Title: "ok"}, nil
		},
	}, feedStub{})

	result, err := handler.Handle(ctx, "issue.create", json.RawMessage(
		`{"title":"Fix bug","priority":"high","due_date":"2024-01-01"}`))
	require.NoError(t, err)
	require.Equal(t, "Fix bug", got.Title)
	require.Equal(t, issue.PriorityHigh, got.Priority)
	require.Equal(t, "2024-01-01", got.DueDate)

	resp, ok := result.(ActivityResponse)
	require.True(t, ok)
	require.Equal(t, "1", resp.ID)
	require.Equal(t, feed.TypeIssueCreated, resp.Type)
}

func TestHandler_CreateIssue_ValidationMapsToBadParams(t *testing.T) {
	ctx := context.Background()
	handler := NewHandler(issueStub{
		createFn: func(context.Context, issue.CreateRequest) (feed.ActivityRecord, error) {
			return feed.ActivityRecord{}, issue.ErrTitleRequired
		},
	}, feedStub{})

	_, err := handler.Handle(ctx, "issue.create", json.RawMessage(`{"title":""}`))
	require.ErrorIs(t, err, transport.ErrBadParams)
}

func TestHandler_ActivityList(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	handler := NewHandler(issueStub{}, feedStub{records: []feed.ActivityRecord{
		{ID: "2", Type: feed.TypeIssueCreated, Title: "newest", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "1", Type: feed.TypeIssueMoved, Title: "older", Timestamp: now.Add(-26 * time.Hour)},
	}})

	result, err := handler.Handle(ctx, "activity.list", nil)
	require.NoError(t, err)

	resp, ok := result.([]ActivityResponse)
	require.True(t, ok)
	require.Len(t, resp, 2)
	require.Equal(t, "newest", resp[0].Title)
	require.Equal(t, "2h ago", resp[0].TimeAgo)
	require.Equal(t, "1d ago", resp[1].TimeAgo)
}

func TestHandler_UpdateActivity(t *testing.T) {
	ctx := context.Background()
	var gotID string
	var gotFields feed.UpdateFields
	handler := NewHandler(issueStub{
		updateFn: func(_ context.Context, id string, fields feed.UpdateFields) error {
			gotID = id
			gotFields = fields
			return nil
		},
	}, feedStub{})

	result, err := handler.Handle(ctx, "activity.update", json.RawMessage(`{"id":"7","title":"renamed"}`))
	require.NoError(t, err)
	require.Equal(t, "7", gotID)
	require.NotNil(t, gotFields.Title)
	require.Equal(t, "renamed", *gotFields.Title)
	require.Nil(t, gotFields.Description)
	require.Equal(t, StatusResponse{OK: true}, result)
}

func TestHandler_UpdateActivity_RequiresID(t *testing.T) {
	ctx := context.Background()
	handler := NewHandler(issueStub{}, feedStub{})

	_, err := handler.Handle(ctx, "activity.update", json.RawMessage(`{"title":"x"}`))
	require.ErrorIs(t, err, transport.ErrBadParams)
}

func TestHandler_DeleteActivity(t *testing.T) {
	ctx := context.Background()
	var gotID string
	handler := NewHandler(issueStub{
		deleteFn: func(_ context.Context, id string) error {
			gotID = id
			return nil
		},
	}, feedStub{})

	result, err := handler.Handle(ctx, "activity.delete", json.RawMessage(`{"id":"3"}`))
	require.NoError(t, err)
	require.Equal(t, "3", gotID)
	require.Equal(t, StatusResponse{OK: true}, result)
}

func TestHandler_UnknownMethod(t *testing.T) {
	ctx := context.Background()
	handler := NewHandler(issueStub{}, feedStub{})

	_, err := handler.Handle(ctx, "issue.destroy", nil)
	require.ErrorIs(t, err, transport.ErrMethodUnknown)
}
