// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client-side cache layer: a small key-value
// abstraction over a local SQLite database, the token store holding the
// current session, the per-user namespace resolver, and the domain
// repositories (meals, favorites, water, preferences) that keep their data
// as JSON blobs under namespaced keys.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the durable key-value storage every cache component is
// built on. Production binds it to the SQLite cache database; tests
// substitute [NewMemoryKeyValueStore]. There is no in-memory caching layer
// on top: every Get reflects the latest Set, including writes made by other
// code in the same process.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written or has been deleted.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
