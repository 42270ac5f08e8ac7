package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

// MealRepository caches the daily meal log as one JSON blob per user under
// the namespaced meals key. A corrupt blob reads as an empty history.
type MealRepository struct {
	kv     KeyValueStore
	ns     *NamespaceResolver
	logger *logger.Logger
}

func NewMealRepository(kv KeyValueStore, ns *NamespaceResolver, logger *logger.Logger) *MealRepository {
	return &MealRepository{kv: kv, ns: ns, logger: logger}
}

// History returns the full meal history keyed by YYYY-MM-DD date.
func (r *MealRepository) History(ctx context.Context) map[string]models.DayMeals {
	raw, found, err := r.kv.Get(ctx, r.ns.Key(ctx, DomainMeals))
	if err != nil || !found {
		return map[string]models.DayMeals{}
	}

	history, ok := utils.TryParse[map[string]models.DayMeals](raw)
	if !ok {
		r.logger.Warn().Str("func", "MealRepository.History").Msg("meal history blob is unparsable, starting empty")
		return map[string]models.DayMeals{}
	}
	return history
}

// SaveHistory overwrites the full meal history for the current user.
func (r *MealRepository) SaveHistory(ctx context.Context, history map[string]models.DayMeals) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode meal history: %w", err)
	}
	return r.kv.Set(ctx, r.ns.Key(ctx, DomainMeals), string(payload))
}

// ForDate returns the meal log of one day, empty when nothing was logged.
func (r *MealRepository) ForDate(ctx context.Context, date time.Time) models.DayMeals {
	return r.History(ctx)[utils.DateKey(date)]
}

// SaveForDate replaces the meal log of one day.
func (r *MealRepository) SaveForDate(ctx context.Context, date time.Time, day models.DayMeals) error {
	history := r.History(ctx)
	history[utils.DateKey(date)] = day
	return r.SaveHistory(ctx, history)
}
