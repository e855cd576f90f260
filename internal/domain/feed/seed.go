package feed

import "time"

// Seed populates s with the demo records the app boots with. Records are
// inserted oldest-first so the feed lists them most-recent first.
func Seed(s *Store, now time.Time) {
	s.Add(ActivityRecord{
		Type:        TypeUserAssigned,
		Title:       `John Doe assigned to "Dashboard redesign"`,
		Description: "User assignment updated",
		Timestamp:   now.Add(-6 * time.Hour),
		Icon:        "person-add",
		Color:       "#2196F3",
	})
	s.Add(ActivityRecord{
		Type:        TypeIssueMoved,
		Title:       `Issue "Fix login bug" moved to Done`,
		Description: "Issue status updated to completed",
		Timestamp:   now.Add(-4 * time.Hour),
		Icon:        "checkmark-circle",
		Color:       "#4CAF50",
	})
	s.Add(ActivityRecord{
		Type:        TypeIssueCreated,
		Title:       `New issue "Mobile app testing" created`,
		Description: "Issue created with high priority",
		Timestamp:   now.Add(-2 * time.Hour),
		Icon:        "create",
		Color:       "#FF6B6B",
	})
}
