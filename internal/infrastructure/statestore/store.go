package statestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/pocketbuddy/internal/domain"
	"github.com/iho/pocketbuddy/internal/usecase"
)

// Recorder receives storage measurements.
type Recorder interface {
	ObserveCorruptValue(key string)
	ObserveStoreWrite(duration time.Duration, err error)
}

// CorruptValueError describes a stored value that could not be decoded.
type CorruptValueError struct {
	Key string
	Err error
}

func (e *CorruptValueError) Error() string {
	return fmt.Sprintf("stored value %q is corrupt: %v", e.Key, e.Err)
}

func (e *CorruptValueError) Unwrap() []error {
	return []error{domain.ErrStorageCorrupt, e.Err}
}

// Store implements usecase.StateStore with JSON values over a KeyValueStore.
type Store struct {
	kv       usecase.KeyValueStore
	recorder Recorder
	logger   zerolog.Logger
}

// New creates a new Store.
func New(kv usecase.KeyValueStore, recorder Recorder, logger zerolog.Logger) *Store {
	return &Store{
		kv:       kv,
		recorder: recorder,
		logger:   logger.With().Str("component", "statestore").Logger(),
	}
}

var jsonNull = []byte("null")

// Load decodes the value under key into dst, which must be a non-nil pointer.
// Missing, unreadable and corrupt values leave dst untouched and return false.
func (s *Store) Load(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, usecase.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read stored value, using default")
		return false
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return false
	}

	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		s.logger.Error().Str("key", key).Msgf("cannot decode into %T", dst)
		return false
	}

	decoded := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, decoded.Interface()); err != nil {
		corrupt := &CorruptValueError{Key: key, Err: err}
		s.logger.Warn().Err(corrupt).Str("key", key).Msg("stored value is corrupt, using default")
		s.recorder.ObserveCorruptValue(key)
		return false
	}

	target.Elem().Set(decoded.Elem())
	return true
}

// Save stores a single value.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	return s.SaveAll(ctx, map[string]any{key: value})
}

// SaveAll encodes every value and writes them in one batch.
func (s *Store) SaveAll(ctx context.Context, values map[string]any) error {
	encoded := make(map[string][]byte, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		encoded[k] = raw
	}

	start := time.Now()
	err := s.kv.SetMany(ctx, encoded)
	s.recorder.ObserveStoreWrite(time.Since(start), err)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	s.logger.Debug().Int("keys", len(encoded)).Msg("state written")
	return nil
}

// Clear erases every stored value.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
