package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/iho/pocketbuddy/internal/usecase"
)

const (
	selectValueSQL = `SELECT value FROM wallet_state WHERE key = ?`
	upsertValueSQL = `INSERT INTO wallet_state (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteAllSQL = `DELETE FROM wallet_state`
)

// KVStore implements usecase.KeyValueStore on the wallet_state table.
type KVStore struct {
	db        *sql.DB
	txManager *TxManager
	retrier   *Retrier
}

// NewKVStore creates a new KVStore. The schema must already be migrated.
func NewKVStore(db *sql.DB, retrier *Retrier) *KVStore {
	return &KVStore{
		db:        db,
		txManager: NewTxManager(db),
		retrier:   retrier,
	}
}

// Get returns the raw value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// SetMany upserts every value in a single transaction.
func (s *KVStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return s.retrier.Retry(ctx, func() error {
		return s.txManager.WithTx(ctx, func(tx *sql.Tx) error {
			now := time.Now().UTC().Format(time.RFC3339Nano)
			for _, k := range keys {
				if _, err := tx.ExecContext(ctx, upsertValueSQL, k, string(values[k]), now); err != nil {
					return fmt.Errorf("set %s: %w", k, err)
				}
			}
			return nil
		})
	})
}

// Clear deletes every stored value.
func (s *KVStore) Clear(ctx context.Context) error {
	return s.retrier.Retry(ctx, func() error {
		if _, err := s.db.ExecContext(ctx, deleteAllSQL); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *KVStore) Close() error {
	return s.db.Close()
}
