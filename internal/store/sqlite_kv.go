package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/logger"
)

type sqliteKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore binds [KeyValueStore] to the local cache database.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{db: db, logger: logger}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getCacheValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Get").Str("key", key).Msg("failed to read cache value")
		return "", false, fmt.Errorf("failed to read cache value (key=%s): %w", key, err)
	}

	return value, true, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertCacheValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Set").Str("key", key).Msg("failed to execute upsert for cache value")
		return fmt.Errorf("failed to save cache value (key=%s): %w", key, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteCacheValue, key); err != nil {
		s.logger.Err(err).Str("func", "sqliteKeyValueStore.Delete").Str("key", key).Msg("failed to delete cache value")
		return fmt.Errorf("failed to delete cache value (key=%s): %w", key, err)
	}

	return nil
}
