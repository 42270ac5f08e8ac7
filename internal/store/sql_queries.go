package store

const (
	getCacheValue = `SELECT value FROM cache WHERE key = ?;`

	upsertCacheValue = `
INSERT INTO cache (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET
    value      = excluded.value,
    updated_at = excluded.updated_at;`

	deleteCacheValue = `DELETE FROM cache WHERE key = ?;`
)
