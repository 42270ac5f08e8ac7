package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/models"
)

// newTestStorages поднимает полный слой кэша поверх памяти с сохранённой личностью
func newTestStorages(t *testing.T, userID string) *ClientStorages {
	t.Helper()
	storages := NewClientStoragesWithKV(NewMemoryKeyValueStore(), logger.Nop())
	if userID != "" {
		require.NoError(t, storages.Tokens.Save(context.Background(), models.Tokens{AccessToken: "a"}, &models.User{ID: userID}))
	}
	return storages
}

// ── MealRepository ───────────────────────────────────────────────────────────

func TestMealRepository_SaveAndReadForDate(t *testing.T) {
	storages := newTestStorages(t, "u-1")
	ctx := context.Background()
	date := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)

	day := models.DayMeals{
		Breakfast: []models.Meal{{ID: "m-1", Name: "Овсянка", Calories: 250}},
		Dinner:    []models.Meal{{ID: "m-2", Name: "Курица", Calories: 400, Protein: 35}},
	}
	require.NoError(t, storages.Meals.SaveForDate(ctx, date, day))

	got := storages.Meals.ForDate(ctx, date)
	assert.Equal(t, day, got)

	// Другой день остаётся пустым
	other := storages.Meals.ForDate(ctx, date.AddDate(0, 0, 1))
	assert.Empty(t, other.All())
}

func TestMealRepository_CorruptBlobReadsEmpty(t *testing.T) {
	storages := newTestStorages(t, "u-1")
	ctx := context.Background()

	key := storages.Namespace.Key(ctx, DomainMeals)
	require.NoError(t, storages.KV.Set(ctx, key, "corrupt"))

	history := storages.Meals.History(ctx)
	assert.Empty(t, history)
}

func TestMealRepository_KeysIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	storages := NewClientStoragesWithKV(kv, logger.Nop())
	date := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)

	require.NoError(t, storages.Tokens.Save(ctx, models.Tokens{AccessToken: "a"}, &models.User{ID: "u-1"}))
	require.NoError(t, storages.Meals.SaveForDate(ctx, date, models.DayMeals{
		Lunch: []models.Meal{{ID: "m-1", Name: "Суп"}},
	}))

	// Смена личности в token store переключает namespace без миграции данных
	require.NoError(t, storages.Tokens.Save(ctx, models.Tokens{AccessToken: "b"}, &models.User{ID: "u-2"}))
	assert.Empty(t, storages.Meals.ForDate(ctx, date).All())

	require.NoError(t, storages.Tokens.Save(ctx, models.Tokens{AccessToken: "a"}, &models.User{ID: "u-1"}))
	assert.Len(t, storages.Meals.ForDate(ctx, date).Lunch, 1)
}

// ── FavoriteRepository ───────────────────────────────────────────────────────

func TestFavoriteRepository_SaveAndList(t *testing.T) {
	storages := newTestStorages(t, "u-1")
	ctx := context.Background()

	favorites := []models.FavoriteFood{
		{ID: "f-1", Name: "Яблоко", ServingSize: 100, ServingUnit: "г", Calories: 52},
	}
	require.NoError(t, storages.Favorites.Save(ctx, favorites))

	got := storages.Favorites.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Яблоко", got[0].Name)
}

func TestFavoriteRepository_MissingAndCorruptBlob(t *testing.T) {
	storages := newTestStorages(t, "u-1")
	ctx := context.Background()

	assert.Nil(t, storages.Favorites.List(ctx))

	require.NoError(t, storages.KV.Set(ctx, storages.Namespace.Key(ctx, DomainFavorites), "[broken"))
	assert.Nil(t, storages.Favorites.List(ctx))
}

// ── WaterRepository ──────────────────────────────────────────────────────────

func TestWaterRepository_SaveAndReadHistory(t *testing.T) {
	storages := newTestStorages(t, "u-1")
	ctx := context.Background()

	history := map[string]models.WaterRecord{
		"2026-08-30": {Date: "2026-08-30", Glasses: 5},
	}
	require.NoError(t, storages.Water.SaveHistory(ctx, history))

	got := storages.Water.History(ctx)
	assert.Equal(t, 5, got["2026-08-30"].Glasses)
}

// ── PreferencesRepository ────────────────────────────────────────────────────

func TestPreferencesRepository_DefaultsWhenMissing(t *testing.T) {
	storages := newTestStorages(t, "")

	prefs := storages.Preferences.Get(context.Background())
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestPreferencesRepository_SaveAndGet(t *testing.T) {
	storages := newTestStorages(t, "")
	ctx := context.Background()

	want := models.Preferences{Language: "en", Theme: "light"}
	require.NoError(t, storages.Preferences.Save(ctx, want))
	assert.Equal(t, want, storages.Preferences.Get(ctx))
}

func TestPreferencesRepository_KeyNotNamespaced(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	storages := NewClientStoragesWithKV(kv, logger.Nop())

	want := models.Preferences{Language: "en", Theme: "light"}
	require.NoError(t, storages.Preferences.Save(ctx, want))

	// Настройки переживают смену пользователя: ключ общий для устройства
	require.NoError(t, storages.Tokens.Save(ctx, models.Tokens{AccessToken: "a"}, &models.User{ID: "u-2"}))
	assert.Equal(t, want, storages.Preferences.Get(ctx))
}
