package issue

import "errors"

var (
	// ErrTitleRequired indicates a missing or whitespace-only title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidPriority indicates a priority outside the known set.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidDueDate indicates a due date that is not an ISO date.
	ErrInvalidDueDate = errors.New("invalid due date")
)
