package utils

import "time"

// DateKey renders t as the YYYY-MM-DD key used by the daily meal and water
// logs. All domain caches index days in the device's local time zone.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
