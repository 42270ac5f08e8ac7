package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

// WaterRepository caches daily water intake as one JSON blob per user under
// the namespaced water key.
type WaterRepository struct {
	kv     KeyValueStore
	ns     *NamespaceResolver
	logger *logger.Logger
}

func NewWaterRepository(kv KeyValueStore, ns *NamespaceResolver, logger *logger.Logger) *WaterRepository {
	return &WaterRepository{kv: kv, ns: ns, logger: logger}
}

// History returns the full water history keyed by YYYY-MM-DD date.
func (r *WaterRepository) History(ctx context.Context) map[string]models.WaterRecord {
	raw, found, err := r.kv.Get(ctx, r.ns.Key(ctx, DomainWater))
	if err != nil || !found {
		return map[string]models.WaterRecord{}
	}

	history, ok := utils.TryParse[map[string]models.WaterRecord](raw)
	if !ok {
		r.logger.Warn().Str("func", "WaterRepository.History").Msg("water history blob is unparsable, starting empty")
		return map[string]models.WaterRecord{}
	}
	return history
}

// SaveHistory overwrites the full water history for the current user.
func (r *WaterRepository) SaveHistory(ctx context.Context, history map[string]models.WaterRecord) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode water history: %w", err)
	}
	return r.kv.Set(ctx, r.ns.Key(ctx, DomainWater), string(payload))
}
