package api

import (
	"time"

	"github.com/planup/planup/internal/domain/feed"
	"github.com/planup/planup/internal/domain/issue"
)

type CreateIssueParams struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    issue.Priority `json:"priority,omitempty"`
	DueDate     string         `json:"due_date,omitempty"`
}

type UpdateActivityParams struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeleteActivityParams struct {
	ID string `json:"id"`
}

// ActivityResponse is a feed entry as rendered to the presentation layer.
type ActivityResponse struct {
	ID          string            `json:"id"`
	Type        feed.ActivityType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	TimeAgo     string            `json:"time_ago"`
	Icon        string            `json:"icon,omitempty"`
	Color       string            `json:"color,omitempty"`
}

type StatusResponse struct {
	OK bool `json:"ok"`
}
