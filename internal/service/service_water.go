package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

// Water implements [WaterService] over the namespaced water cache.
type Water struct {
	repo   *store.WaterRepository
	logger *logger.Logger

	// now is injectable so tests can pin "today".
	now func() time.Time
}

func NewWater(repo *store.WaterRepository, logger *logger.Logger) *Water {
	return &Water{repo: repo, logger: logger, now: time.Now}
}

func (w *Water) Today(ctx context.Context) int {
	return w.repo.History(ctx)[w.todayKey()].Glasses
}

// AddGlass logs one more glass. The count is capped at twice the daily goal
// so a stuck key cannot record an absurd intake.
func (w *Water) AddGlass(ctx context.Context) (int, error) {
	return w.setToday(ctx, w.Today(ctx)+1)
}

// RemoveGlass removes one glass, never going below zero.
func (w *Water) RemoveGlass(ctx context.Context) (int, error) {
	return w.setToday(ctx, w.Today(ctx)-1)
}

func (w *Water) ResetToday(ctx context.Context) error {
	_, err := w.setToday(ctx, 0)
	return err
}

func (w *Water) Goal() int {
	return models.WaterDailyGoal
}

// Percentage reports today's progress towards the goal, capped at 100 even
// though logging itself allows up to twice the goal.
func (w *Water) Percentage(ctx context.Context) float64 {
	pct := float64(w.Today(ctx)) / float64(w.Goal()) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func (w *Water) setToday(ctx context.Context, glasses int) (int, error) {
	if max := 2 * w.Goal(); glasses > max {
		glasses = max
	}
	if glasses < 0 {
		glasses = 0
	}

	key := w.todayKey()
	history := w.repo.History(ctx)
	history[key] = models.WaterRecord{Date: key, Glasses: glasses}

	if err := w.repo.SaveHistory(ctx, history); err != nil {
		return 0, fmt.Errorf("save water history: %w", err)
	}
	return glasses, nil
}

func (w *Water) todayKey() string {
	return utils.DateKey(w.now())
}
