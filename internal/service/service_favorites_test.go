package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

func newTestFavorites(t *testing.T) *Favorites {
	t.Helper()
	storages := store.NewClientStoragesWithKV(store.NewMemoryKeyValueStore(), logger.Nop())
	return NewFavorites(storages.Favorites, utils.NewUUIDGenerator(), logger.Nop())
}

func TestFavorites_AddAndList(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	food := models.FavoriteFood{Name: "Яблоко", ServingSize: 100, ServingUnit: "г", Calories: 52}
	require.NoError(t, svc.Add(ctx, food))

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.False(t, list[0].AddedAt.IsZero())
}

func TestFavorites_Add_DuplicateIsSilentlyIgnored(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	food := models.FavoriteFood{Name: "Яблоко", ServingSize: 100, ServingUnit: "г"}
	require.NoError(t, svc.Add(ctx, food))
	require.NoError(t, svc.Add(ctx, food))

	assert.Len(t, svc.List(ctx), 1, "re-saving the same food must not grow the list")
}

func TestFavorites_Add_DifferentPortionIsDifferentFood(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.FavoriteFood{Name: "Яблоко", ServingSize: 100, ServingUnit: "г"}))
	require.NoError(t, svc.Add(ctx, models.FavoriteFood{Name: "Яблоко", ServingSize: 150, ServingUnit: "г"}))

	assert.Len(t, svc.List(ctx), 2)
}

func TestFavorites_Add_EmptyName(t *testing.T) {
	svc := newTestFavorites(t)
	assert.ErrorIs(t, svc.Add(context.Background(), models.FavoriteFood{}), ErrInvalidDataProvided)
}

func TestFavorites_Remove(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.FavoriteFood{Name: "Яблоко", ServingSize: 100, ServingUnit: "г"}))
	require.NoError(t, svc.Add(ctx, models.FavoriteFood{Name: "Банан", ServingSize: 120, ServingUnit: "г"}))

	list := svc.List(ctx)
	require.Len(t, list, 2)

	require.NoError(t, svc.Remove(ctx, list[0].ID))

	got := svc.List(ctx)
	require.Len(t, got, 1)
	assert.NotEqual(t, list[0].ID, got[0].ID)
}

func TestFavorites_IsFavorite(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	food := models.FavoriteFood{Name: "Яблоко", ServingSize: 100, ServingUnit: "г"}
	assert.False(t, svc.IsFavorite(ctx, food))

	require.NoError(t, svc.Add(ctx, food))
	assert.True(t, svc.IsFavorite(ctx, food))
	assert.False(t, svc.IsFavorite(ctx, models.FavoriteFood{Name: "Яблоко", ServingSize: 200, ServingUnit: "г"}))
}
