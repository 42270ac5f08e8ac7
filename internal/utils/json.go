package utils

import "encoding/json"

// TryParse decodes raw JSON into T, treating every failure as "value absent".
// It is the single tolerant-parse helper used by all cache readers: local
// cache blobs are best-effort conveniences, so a corrupt blob must read as
// missing rather than break the caller.
func TryParse[T any](raw string) (T, bool) {
	var value T
	if raw == "" {
		return value, false
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, false
	}
	return value, true
}
