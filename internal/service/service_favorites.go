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

// Favorites implements [FavoriteService] over the namespaced favorites
// cache.
type Favorites struct {
	repo   *store.FavoriteRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewFavorites(repo *store.FavoriteRepository, ids *utils.UUIDGenerator, logger *logger.Logger) *Favorites {
	return &Favorites{repo: repo, ids: ids, logger: logger}
}

func (f *Favorites) List(ctx context.Context) []models.FavoriteFood {
	return f.repo.List(ctx)
}

// Add saves the food unless the same food and portion is already on the
// list. Duplicate adds are silently ignored: re-saving a food from the
// dashboard must not grow the list.
func (f *Favorites) Add(ctx context.Context, food models.FavoriteFood) error {
	if food.Name == "" {
		return fmt.Errorf("%w: food name is required", ErrInvalidDataProvided)
	}

	favorites := f.repo.List(ctx)
	for _, existing := range favorites {
		if existing.SameFood(food) {
			return nil
		}
	}

	food.ID = f.ids.Generate()
	food.AddedAt = time.Now()

	if err := f.repo.Save(ctx, append(favorites, food)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (f *Favorites) Remove(ctx context.Context, id string) error {
	favorites := f.repo.List(ctx)
	kept := favorites[:0]
	for _, food := range favorites {
		if food.ID != id {
			kept = append(kept, food)
		}
	}

	if err := f.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (f *Favorites) IsFavorite(ctx context.Context, food models.FavoriteFood) bool {
	for _, existing := range f.repo.List(ctx) {
		if existing.SameFood(food) {
			return true
		}
	}
	return false
}
