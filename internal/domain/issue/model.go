package issue

import "github.com/planup/planup/internal/domain/feed"

// Priority is the closed set of issue priorities
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DueDateLayout is the wire format for due dates (ISO date, no time part).
const DueDateLayout = "2006-01-02"

// dueDateDisplayLayout matches how the issue form shows a selected date.
const dueDateDisplayLayout = "Mon, Jan 2, 2006"

// CreateRequest defines issue creation inputs.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}

// UpdateRequest defines a partial activity update.
type UpdateRequest struct {
	ID     string            `json:"id"`
	Fields feed.UpdateFields `json:"fields"`
}
