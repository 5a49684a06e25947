package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrKeyNotFound is returned by a KeyValueStore when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the raw durable storage behind the wallet.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// SetMany writes every value in one batch.
	SetMany(ctx context.Context, values map[string][]byte) error
	Clear(ctx context.Context) error
}

// StateStore persists structured wallet values.
type StateStore interface {
	// Load decodes the value under key into dst and reports whether it did.
	// Missing or corrupt values leave dst untouched.
	Load(ctx context.Context, key string, dst any) bool
	SaveAll(ctx context.Context, values map[string]any) error
	Clear(ctx context.Context) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time in the user's location.
type Clock interface {
	Now() time.Time
}

// Recorder receives operational measurements.
type Recorder interface {
	ObserveMutation(operation string, err error)
	ObserveValidationFailure(field string)
	ObserveRemaining(remaining decimal.Decimal)
	ObserveCapture(outcome string)
}

// Transcriber turns one utterance into text. It must return when ctx is done.
type Transcriber interface {
	Transcribe(ctx context.Context) (string, error)
}
