package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

// FavoriteRepository caches the favorites list as one JSON blob per user
// under the namespaced favorites key.
type FavoriteRepository struct {
	kv     KeyValueStore
	ns     *NamespaceResolver
	logger *logger.Logger
}

func NewFavoriteRepository(kv KeyValueStore, ns *NamespaceResolver, logger *logger.Logger) *FavoriteRepository {
	return &FavoriteRepository{kv: kv, ns: ns, logger: logger}
}

// List returns all saved favorites, empty on a missing or corrupt blob.
func (r *FavoriteRepository) List(ctx context.Context) []models.FavoriteFood {
	raw, found, err := r.kv.Get(ctx, r.ns.Key(ctx, DomainFavorites))
	if err != nil || !found {
		return nil
	}

	favorites, ok := utils.TryParse[[]models.FavoriteFood](raw)
	if !ok {
		r.logger.Warn().Str("func", "FavoriteRepository.List").Msg("favorites blob is unparsable, starting empty")
		return nil
	}
	return favorites
}

// Save overwrites the favorites list for the current user.
func (r *FavoriteRepository) Save(ctx context.Context, favorites []models.FavoriteFood) error {
	payload, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	return r.kv.Set(ctx, r.ns.Key(ctx, DomainFavorites), string(payload))
}
