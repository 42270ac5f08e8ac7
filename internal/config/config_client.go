package config

import (
	"fmt"
	"time"
)

// Fallbacks applied when neither env, flags, nor the JSON file set a value.
const (
	defaultRequestTimeout  = 10 * time.Second
	defaultRefreshInterval = 10 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// GoogleClientID enables the federated login affordance when non-empty.
	GoogleClientID string
	// Version is the application version string shown in the build info view.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// AuthAddress is the auth backend base URL.
	AuthAddress string
	// CalorieAddress is the calorie backend base URL.
	CalorieAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the silent token refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains backend addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains local cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies timeout/interval defaults, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			GoogleClientID: cfg.App.GoogleClientID,
			Version:        cfg.App.Version,
		},
		Adapter: ClientAdapter{
			AuthAddress:    cfg.Adapter.AuthAddress,
			CalorieAddress: cfg.Adapter.CalorieAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = defaultRefreshInterval
	}

	return clientCfg, clientCfg.validate()
}
