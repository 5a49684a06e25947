package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrasqlite "github.com/iho/pocketbuddy/internal/infrastructure/sqlite"
	"github.com/iho/pocketbuddy/internal/usecase"
)

func newTestStore(t *testing.T) (*KVStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wallet.db")
	require.NoError(t, infrasqlite.RunMigrations(path, zerolog.Nop()))

	db, err := infrasqlite.Open(context.Background(), path, 2*time.Second)
	require.NoError(t, err)

	store := NewKVStore(db, NewRetrier(3, zerolog.Nop()))
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestKVStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "budget")
	assert.ErrorIs(t, err, usecase.ErrKeyNotFound)
}

func TestKVStoreSetManyAndOverwrite(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"budget":      []byte(`"4000"`),
		"savingsGoal": []byte(`"500"`),
	}))
	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"budget": []byte(`"4500"`),
	}))

	budget, err := store.Get(ctx, "budget")
	require.NoError(t, err)
	assert.Equal(t, `"4500"`, string(budget))

	savings, err := store.Get(ctx, "savingsGoal")
	require.NoError(t, err)
	assert.Equal(t, `"500"`, string(savings))
}

func TestKVStorePersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string][]byte{"theme": []byte("false")}))
	require.NoError(t, store.Close())

	db, err := infrasqlite.Open(ctx, path, time.Second)
	require.NoError(t, err)
	reopened := NewKVStore(db, NewRetrier(3, zerolog.Nop()))
	defer reopened.Close()

	got, err := reopened.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "false", string(got))
}

func TestKVStoreClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	require.NoError(t, store.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		_, err := store.Get(ctx, k)
		assert.ErrorIs(t, err, usecase.ErrKeyNotFound)
	}
}

func TestKVStoreConcurrentWriters(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.SetMany(ctx, map[string][]byte{"transactions": []byte("[]")}))
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
