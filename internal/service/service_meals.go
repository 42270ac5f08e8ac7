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

// Meals implements [MealService] over the namespaced meal cache.
type Meals struct {
	repo   *store.MealRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewMeals(repo *store.MealRepository, ids *utils.UUIDGenerator, logger *logger.Logger) *Meals {
	return &Meals{repo: repo, ids: ids, logger: logger}
}

func (m *Meals) ForDate(ctx context.Context, date time.Time) models.DayMeals {
	return m.repo.ForDate(ctx, date)
}

func (m *Meals) Add(ctx context.Context, date time.Time, slot models.MealSlot, meal models.Meal) (models.DayMeals, error) {
	if meal.Name == "" {
		return models.DayMeals{}, fmt.Errorf("%w: meal name is required", ErrInvalidDataProvided)
	}

	meal.ID = m.ids.Generate()

	day := m.repo.ForDate(ctx, date)
	switch slot {
	case models.SlotBreakfast:
		day.Breakfast = append(day.Breakfast, meal)
	case models.SlotLunch:
		day.Lunch = append(day.Lunch, meal)
	case models.SlotDinner:
		day.Dinner = append(day.Dinner, meal)
	default:
		return models.DayMeals{}, fmt.Errorf("%w: unknown meal slot %q", ErrInvalidDataProvided, slot)
	}

	if err := m.repo.SaveForDate(ctx, date, day); err != nil {
		return models.DayMeals{}, fmt.Errorf("save meal log: %w", err)
	}
	return day, nil
}

func (m *Meals) Remove(ctx context.Context, date time.Time, mealID string) (models.DayMeals, error) {
	day := m.repo.ForDate(ctx, date)
	day.Breakfast = withoutMeal(day.Breakfast, mealID)
	day.Lunch = withoutMeal(day.Lunch, mealID)
	day.Dinner = withoutMeal(day.Dinner, mealID)

	if err := m.repo.SaveForDate(ctx, date, day); err != nil {
		return models.DayMeals{}, fmt.Errorf("save meal log: %w", err)
	}
	return day, nil
}

func (m *Meals) TotalsForDate(ctx context.Context, date time.Time) models.NutritionTotals {
	return m.repo.ForDate(ctx, date).Totals()
}

func withoutMeal(meals []models.Meal, id string) []models.Meal {
	kept := meals[:0]
	for _, meal := range meals {
		if meal.ID != id {
			kept = append(kept, meal)
		}
	}
	return kept
}
