package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

func newTestMeals(t *testing.T) *Meals {
	t.Helper()
	storages := store.NewClientStoragesWithKV(store.NewMemoryKeyValueStore(), logger.Nop())
	return NewMeals(storages.Meals, utils.NewUUIDGenerator(), logger.Nop())
}

var testDate = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)

func TestMeals_Add(t *testing.T) {
	svc := newTestMeals(t)
	ctx := context.Background()

	day, err := svc.Add(ctx, testDate, models.SlotBreakfast, models.Meal{Name: "Овсянка", Calories: 250})
	require.NoError(t, err)
	require.Len(t, day.Breakfast, 1)
	assert.NotEmpty(t, day.Breakfast[0].ID, "Add must assign a fresh id")

	day, err = svc.Add(ctx, testDate, models.SlotLunch, models.Meal{Name: "Суп", Calories: 300})
	require.NoError(t, err)
	assert.Len(t, day.Breakfast, 1)
	assert.Len(t, day.Lunch, 1)

	// Повторное чтение видит сохранённый день
	assert.Len(t, svc.ForDate(ctx, testDate).All(), 2)
}

func TestMeals_Add_EmptyName(t *testing.T) {
	svc := newTestMeals(t)

	_, err := svc.Add(context.Background(), testDate, models.SlotBreakfast, models.Meal{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMeals_Add_UnknownSlot(t *testing.T) {
	svc := newTestMeals(t)

	_, err := svc.Add(context.Background(), testDate, models.MealSlot("brunch"), models.Meal{Name: "Тост"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMeals_Remove(t *testing.T) {
	svc := newTestMeals(t)
	ctx := context.Background()

	day, err := svc.Add(ctx, testDate, models.SlotDinner, models.Meal{Name: "Курица", Calories: 400})
	require.NoError(t, err)
	_, err = svc.Add(ctx, testDate, models.SlotDinner, models.Meal{Name: "Рис", Calories: 200})
	require.NoError(t, err)

	got, err := svc.Remove(ctx, testDate, day.Dinner[0].ID)
	require.NoError(t, err)
	require.Len(t, got.Dinner, 1)
	assert.Equal(t, "Рис", got.Dinner[0].Name)
}

func TestMeals_Remove_UnknownIDIsNoop(t *testing.T) {
	svc := newTestMeals(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, testDate, models.SlotLunch, models.Meal{Name: "Суп"})
	require.NoError(t, err)

	got, err := svc.Remove(ctx, testDate, "no-such-id")
	require.NoError(t, err)
	assert.Len(t, got.Lunch, 1)
}

func TestMeals_TotalsForDate(t *testing.T) {
	svc := newTestMeals(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, testDate, models.SlotBreakfast, models.Meal{Name: "Овсянка", Calories: 250, Protein: 10, Carbs: 40, Fat: 5})
	require.NoError(t, err)
	_, err = svc.Add(ctx, testDate, models.SlotDinner, models.Meal{Name: "Курица", Calories: 400, Protein: 35, Carbs: 0, Fat: 12})
	require.NoError(t, err)

	totals := svc.TotalsForDate(ctx, testDate)
	assert.Equal(t, models.NutritionTotals{Calories: 650, Protein: 45, Carbs: 40, Fat: 17}, totals)

	// День без записей даёт нулевые итоги
	assert.Zero(t, svc.TotalsForDate(ctx, testDate.AddDate(0, 0, 1)))
}
