package statestore_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/pocketbuddy/internal/adapter/repository/memory"
	"github.com/iho/pocketbuddy/internal/domain"
	"github.com/iho/pocketbuddy/internal/infrastructure/statestore"
	"github.com/iho/pocketbuddy/internal/usecase/mocks"
)

type countingRecorder struct {
	corrupt []string
	writes  int
}

func (r *countingRecorder) ObserveCorruptValue(key string)         { r.corrupt = append(r.corrupt, key) }
func (r *countingRecorder) ObserveStoreWrite(time.Duration, error) { r.writes++ }

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	rec := &countingRecorder{}
	store := statestore.New(memory.NewKVStore(), rec, zerolog.Nop())

	goal, err := domain.DefaultGoal().WithContribution(decimal.NewFromInt(250), time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, store.SaveAll(ctx, map[string]any{
		domain.KeyBudget: decimal.NewFromInt(4000),
		domain.KeyGoal:   goal,
	}))
	assert.Equal(t, 1, rec.writes)

	var budget decimal.Decimal
	require.True(t, store.Load(ctx, domain.KeyBudget, &budget))
	assert.True(t, budget.Equal(decimal.NewFromInt(4000)))

	var loaded domain.Goal
	require.True(t, store.Load(ctx, domain.KeyGoal, &loaded))
	assert.True(t, loaded.SavedAmount.Equal(decimal.NewFromInt(250)))
	assert.Len(t, loaded.History, 1)
	assert.False(t, loaded.HasTargetDate())
}

func TestStoreLoadMissingKeepsDefault(t *testing.T) {
	store := statestore.New(memory.NewKVStore(), &countingRecorder{}, zerolog.Nop())

	dark := true
	assert.False(t, store.Load(context.Background(), domain.KeyTheme, &dark))
	assert.True(t, dark)
}

func TestStoreLoadCorruptFallsBackAndLogs(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.SetMany(ctx, map[string][]byte{
		domain.KeyTransactions: []byte(`[{"id":"x","amount":`),
		domain.KeyBudget:       []byte(`null`),
	}))

	var logs bytes.Buffer
	rec := &countingRecorder{}
	store := statestore.New(kv, rec, zerolog.New(&logs))

	txns := []domain.Transaction{}
	assert.False(t, store.Load(ctx, domain.KeyTransactions, &txns))
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
	assert.Equal(t, []string{domain.KeyTransactions}, rec.corrupt)
	assert.Contains(t, logs.String(), "stored value is corrupt")

	budget := decimal.NewFromInt(7)
	assert.False(t, store.Load(ctx, domain.KeyBudget, &budget))
	assert.True(t, budget.Equal(decimal.NewFromInt(7)))
}

func TestStoreLoadBackendErrorKeepsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), domain.KeyBudget).Return(nil, errors.New("io error"))

	store := statestore.New(kv, &countingRecorder{}, zerolog.Nop())

	budget := decimal.NewFromInt(3)
	assert.False(t, store.Load(context.Background(), domain.KeyBudget, &budget))
	assert.True(t, budget.Equal(decimal.NewFromInt(3)))
}

func TestStoreSaveAllPropagatesBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendErr := errors.New("disk full")
	kv := mocks.NewMockKeyValueStore(ctrl)
	kv.EXPECT().SetMany(gomock.Any(), gomock.Len(1)).Return(backendErr)

	rec := &countingRecorder{}
	store := statestore.New(kv, rec, zerolog.Nop())

	err := store.Save(context.Background(), domain.KeyTheme, false)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, 1, rec.writes)
}

func TestCorruptValueErrorMatchesSentinel(t *testing.T) {
	err := &statestore.CorruptValueError{Key: "goal", Err: errors.New("unexpected EOF")}
	assert.ErrorIs(t, err, domain.ErrStorageCorrupt)
}
