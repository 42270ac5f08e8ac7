package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

const keyPreferences = AppPrefix + "-preferences"

// PreferencesRepository caches the device-level UI settings. The key is not
// namespaced: language and theme belong to the device, not the account.
type PreferencesRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewPreferencesRepository(kv KeyValueStore, logger *logger.Logger) *PreferencesRepository {
	return &PreferencesRepository{kv: kv, logger: logger}
}

// Get returns the stored preferences, falling back to defaults when nothing
// is stored or the blob is corrupt.
func (r *PreferencesRepository) Get(ctx context.Context) models.Preferences {
	raw, found, err := r.kv.Get(ctx, keyPreferences)
	if err != nil || !found {
		return models.DefaultPreferences()
	}

	prefs, ok := utils.TryParse[models.Preferences](raw)
	if !ok {
		r.logger.Warn().Str("func", "PreferencesRepository.Get").Msg("preferences blob is unparsable, using defaults")
		return models.DefaultPreferences()
	}
	return prefs
}

// Save overwrites the stored preferences.
func (r *PreferencesRepository) Save(ctx context.Context, prefs models.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return r.kv.Set(ctx, keyPreferences, string(payload))
}
