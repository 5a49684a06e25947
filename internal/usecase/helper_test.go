package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// memoryStateStore keeps JSON-encoded values the way the real store does.
type memoryStateStore struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
	clears int
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{values: make(map[string][]byte)}
}

func (s *memoryStateStore) Load(_ context.Context, key string, dst any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (s *memoryStateStore) SaveAll(_ context.Context, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		s.values[k] = raw
	}
	s.writes++
	return nil
}

func (s *memoryStateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string][]byte)
	s.clears++
	return nil
}

func (s *memoryStateStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type sequenceIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%03d", g.next)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopRecorder struct{}

func (nopRecorder) ObserveMutation(string, error)    {}
func (nopRecorder) ObserveValidationFailure(string)  {}
func (nopRecorder) ObserveRemaining(decimal.Decimal) {}
func (nopRecorder) ObserveCapture(string)            {}

var testNow = time.Date(2026, time.June, 20, 18, 45, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testLogger() zerolog.Logger { return zerolog.Nop() }
