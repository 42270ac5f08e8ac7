package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
)

// ClientStorages groups all client-side cache components into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KV is the raw key-value store; the session service uses it directly
	// for identity-change cache eviction.
	KV KeyValueStore

	// Tokens persists the current session.
	Tokens *TokenStore

	// Namespace derives per-user cache keys.
	Namespace *NamespaceResolver

	// Meals, Favorites and Water are the per-user domain caches.
	Meals     *MealRepository
	Favorites *FavoriteRepository
	Water     *WaterRepository

	// Preferences is the device-level settings cache.
	Preferences *PreferencesRepository
}

// NewClientStorages initialises the client cache layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [ClientStorages] value wiring every repository to the
//     same key-value store and namespace resolver.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewSQLiteKeyValueStore(db, logger)
	return NewClientStoragesWithKV(kv, logger), nil
}

// NewClientStoragesWithKV wires the cache components over an existing
// key-value store. Tests use it with [NewMemoryKeyValueStore].
func NewClientStoragesWithKV(kv KeyValueStore, logger *logger.Logger) *ClientStorages {
	tokens := NewTokenStore(kv, logger)
	ns := NewNamespaceResolver(tokens)

	return &ClientStorages{
		KV:          kv,
		Tokens:      tokens,
		Namespace:   ns,
		Meals:       NewMealRepository(kv, ns, logger),
		Favorites:   NewFavoriteRepository(kv, ns, logger),
		Water:       NewWaterRepository(kv, ns, logger),
		Preferences: NewPreferencesRepository(kv, logger),
	}
}
