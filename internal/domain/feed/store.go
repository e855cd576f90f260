package feed

import (
	"sync"
	"time"
)

// DefaultCapacity is the number of records the feed retains.
const DefaultCapacity = 10

// Store owns the bounded, ordered activity collection. Records are kept in
// insertion order, most-recent first; inserting beyond capacity evicts the
// oldest record. The store is the sole owner of its records; readers receive
// snapshot copies.
type Store struct {
	mu       sync.Mutex
	capacity int
	ids      IDGenerator
	now      func() time.Time
	records  []ActivityRecord
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCapacity overrides the retained record count.
func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithIDGenerator overrides the record ID generator.
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty feed store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		ids:      UUIDGenerator{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add finalizes rec and prepends it to the feed. The ID is always assigned
// by the store; the timestamp is assigned unless rec carries one (explicit
// timestamps exist for seeding and test determinism). If the feed is full
// the oldest record is dropped. Add never fails; eviction is policy, not an
// error.
func (s *Store) Add(rec ActivityRecord) ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.ids.NextID()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}

	s.records = append([]ActivityRecord{rec}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}
	return rec
}

// Update merges the supplied fields into the record with the given id,
// leaving order and all other fields untouched. Unknown ids yield
// ErrActivityNotFound; callers that want the legacy silent no-op behavior
// drop the error at their own boundary.
func (s *Store) Update(id string, fields UpdateFields) (ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if fields.Title != nil {
			s.records[i].Title = *fields.Title
		}
		if fields.Description != nil {
			s.records[i].Description = *fields.Description
		}
		return s.records[i], nil
	}
	return ActivityRecord{}, ErrActivityNotFound
}

// Delete removes the record with the given id. Unknown ids yield
// ErrActivityNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrActivityNotFound
}

// List returns a snapshot of the feed, most-recent first. Mutating the
// returned slice does not affect the store.
func (s *Store) List() []ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ActivityRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the current number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
