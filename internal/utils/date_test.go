package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	d := time.Date(2026, time.March, 7, 23, 59, 59, 0, time.Local)
	if got := DateKey(d); got != "2026-03-07" {
		t.Errorf("expected '2026-03-07', got %q", got)
	}
}
