package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Build_EarlierSourceWins(t *testing.T) {
	// mergo не перезаписывает уже заполненные поля: источник, добавленный
	// раньше, имеет приоритет для непустых значений
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{AuthAddress: "env-auth"}},
		&StructuredConfig{Adapter: Adapter{AuthAddress: "flag-auth", CalorieAddress: "flag-calorie"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "env-auth", cfg.Adapter.AuthAddress)
	assert.Equal(t, "flag-calorie", cfg.Adapter.CalorieAddress, "zero fields are filled from later sources")
}

func TestConfigBuilder_Build_MergesAllGroups(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "cache.db"}}},
		&StructuredConfig{Workers: Workers{RefreshInterval: 5 * time.Minute}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestConfigBuilder_Build_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_WithJSON_ResolvesPathFromEarlierSources(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ "adapter": { "auth_address": "http://json-auth" } }`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "http://json-auth", cfg.Adapter.AuthAddress)
}

func TestConfigBuilder_WithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestConfigBuilder_WithJSON_MissingFileFailsBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "no-such-file.json"})

	cfg, err := b.withJSON().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── Валидация клиентского конфига ────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{AuthAddress: "http://a", CalorieAddress: "http://c"},
			Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs, "the cache must survive restarts")

	cfg = valid()
	cfg.Adapter.AuthAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.CalorieAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
