package feed

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces unique record identifiers. Generated ids must never
// collide within a store's lifetime, even under rapid successive calls.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator generates random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator generates sequential numeric identifiers ("1", "2", ...).
// Intended for deterministic tests and seeding.
type SequenceGenerator struct {
	next atomic.Int64
}

func (g *SequenceGenerator) NextID() string {
	return strconv.FormatInt(g.next.Add(1), 10)
}
