package feed

import "time"

// ActivityType represents the kind of user action behind a feed entry
type ActivityType string

const (
	TypeIssueCreated  ActivityType = "issue_created"
	TypeIssueMoved    ActivityType = "issue_moved"
	TypeUserAssigned  ActivityType = "user_assigned"
	TypeSprintStarted ActivityType = "sprint_started"
	TypeCommentAdded  ActivityType = "comment_added"
)

// ActivityRecord represents one entry in the activity feed
type ActivityRecord struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
	Icon        string       `json:"icon,omitempty"`
	Color       string       `json:"color,omitempty"`
}

// UpdateFields is the partial field set accepted by Store.Update.
// Nil fields are left untouched.
type UpdateFields struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
