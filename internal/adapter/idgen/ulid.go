package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator issues transaction and subscription ids stamped with the
// wallet clock. Ids never sort below an earlier one, even if the clock steps back.
type ULIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
	lastMS  uint64
}

// NewULIDGenerator stamps ids with now. A nil now uses the wall clock.
func NewULIDGenerator(now func() time.Time) *ULIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &ULIDGenerator{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate returns the next id as a 26 character string.
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(g.now())
	if ms < g.lastMS {
		ms = g.lastMS
	}

	id, err := ulid.New(ms, g.entropy)
	if err != nil {
		// entropy exhausted within one millisecond
		ms++
		id = ulid.MustNew(ms, g.entropy)
	}
	g.lastMS = ms
	return id.String()
}
