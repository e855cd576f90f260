package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(WithIDGenerator(&SequenceGenerator{}))
}

func TestStore_AddAssignsIDAndTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(
		WithIDGenerator(&SequenceGenerator{}),
		WithClock(func() time.Time { return now }),
	)

	rec := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "created"})
	require.Equal(t, "1", rec.ID)
	require.Equal(t, now, rec.Timestamp)
}

func TestStore_AddKeepsExplicitTimestamp(t *testing.T) {
	s := newTestStore()
	ts := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	rec := s.Add(ActivityRecord{Type: TypeIssueMoved, Title: "moved", Timestamp: ts})
	require.Equal(t, ts, rec.Timestamp)
}

func TestStore_CapacityInvariant(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 25; i++ {
		s.Add(ActivityRecord{Type: TypeIssueCreated, Title: fmt.Sprintf("issue %d", i)})
		require.LessOrEqual(t, s.Len(), DefaultCapacity)
	}
	require.Equal(t, DefaultCapacity, s.Len())
}

func TestStore_OrderingMostRecentFirst(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 5; i++ {
		rec := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: fmt.Sprintf("issue %d", i)})
		require.Equal(t, rec.ID, s.List()[0].ID)
	}
}

func TestStore_EvictionDropsOnlyOldest(t *testing.T) {
	s := newTestStore()

	for i := 0; i < DefaultCapacity; i++ {
		s.Add(ActivityRecord{Type: TypeIssueCreated, Title: fmt.Sprintf("issue %d", i)})
	}
	before := s.List()
	require.Len(t, before, DefaultCapacity)

	s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "overflow"})
	after := s.List()
	require.Len(t, after, DefaultCapacity)

	// The newest entry is first, the previously oldest entry is gone, all
	// others survive shifted by one.
	require.Equal(t, "overflow", after[0].Title)
	for i := 0; i < DefaultCapacity-1; i++ {
		require.Equal(t, before[i].ID, after[i+1].ID)
	}
	for _, rec := range after {
		require.NotEqual(t, before[DefaultCapacity-1].ID, rec.ID)
	}
}

func TestStore_IDUniqueness(t *testing.T) {
	s := NewStore()

	seen := map[string]bool{}
	for i := 0; i < DefaultCapacity; i++ {
		rec := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "x"})
		require.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
	for _, rec := range s.List() {
		require.True(t, seen[rec.ID])
	}
}

func TestStore_UpdatePartiality(t *testing.T) {
	s := newTestStore()
	ts := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	orig := s.Add(ActivityRecord{
		Type:        TypeUserAssigned,
		Title:       "original title",
		Description: "original description",
		Timestamp:   ts,
	})

	title := "new title"
	updated, err := s.Update(orig.ID, UpdateFields{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new title", updated.Title)
	require.Equal(t, "original description", updated.Description)
	require.Equal(t, orig.ID, updated.ID)
	require.Equal(t, orig.Type, updated.Type)
	require.Equal(t, ts, updated.Timestamp)
}

func TestStore_UpdateDoesNotReorder(t *testing.T) {
	s := newTestStore()
	first := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "first"})
	second := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "second"})

	desc := "edited"
	_, err := s.Update(first.ID, UpdateFields{Description: &desc})
	require.NoError(t, err)

	records := s.List()
	require.Equal(t, second.ID, records[0].ID)
	require.Equal(t, first.ID, records[1].ID)
	require.Equal(t, "edited", records[1].Description)
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s := newTestStore()
	s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "x"})

	title := "new"
	_, err := s.Update("missing", UpdateFields{Title: &title})
	require.ErrorIs(t, err, ErrActivityNotFound)
	require.Equal(t, "x", s.List()[0].Title)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore()
	keep := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "keep"})
	drop := s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "drop"})

	require.NoError(t, s.Delete(drop.ID))
	records := s.List()
	require.Len(t, records, 1)
	require.Equal(t, keep.ID, records[0].ID)

	require.ErrorIs(t, s.Delete(drop.ID), ErrActivityNotFound)
}

func TestStore_DeleteThenUpdateIsNotFound(t *testing.T) {
	s := newTestStore()
	s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "one"})
	rec := s.Add(ActivityRecord{Type: TypeIssueMoved, Title: "two"})

	require.NoError(t, s.Delete(rec.ID))
	before := s.List()

	title := "new"
	_, err := s.Update(rec.ID, UpdateFields{Title: &title})
	require.ErrorIs(t, err, ErrActivityNotFound)
	require.Equal(t, before, s.List())
}

func TestStore_ListReturnsSnapshot(t *testing.T) {
	s := newTestStore()
	s.Add(ActivityRecord{Type: TypeIssueCreated, Title: "intact"})

	records := s.List()
	records[0].Title = "mutated"

	require.Equal(t, "intact", s.List()[0].Title)
}

func TestStore_CustomCapacity(t *testing.T) {
	s := NewStore(WithCapacity(3), WithIDGenerator(&SequenceGenerator{}))

	for i := 0; i < 5; i++ {
		s.Add(ActivityRecord{Type: TypeIssueCreated, Title: fmt.Sprintf("issue %d", i)})
	}
	records := s.List()
	require.Len(t, records, 3)
	require.Equal(t, "issue 4", records[0].Title)
	require.Equal(t, "issue 2", records[2].Title)
}

func TestSeed(t *testing.T) {
	s := newTestStore()
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	Seed(s, now)

	records := s.List()
	require.Len(t, records, 3)
	require.Equal(t, TypeIssueCreated, records[0].Type)
	require.Equal(t, TypeIssueMoved, records[1].Type)
	require.Equal(t, TypeUserAssigned, records[2].Type)
	require.Equal(t, now.Add(-2*time.Hour), records[0].Timestamp)
	require.Equal(t, now.Add(-6*time.Hour), records[2].Timestamp)
}
