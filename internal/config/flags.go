package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-auth-address auth backend base URL
//	-calorie-address calorie backend base URL
//	-d local cache database path
//	-c/-config json file path with configs
//	-google-client-id federated login client identifier
//	-request-timeout outbound request timeout (e.g., "10s")
//	-refresh-interval silent token refresh interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var authAddress string
	var calorieAddress string
	var databaseDSN string
	var jsonConfigPath string
	var googleClientID string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&authAddress, "auth-address", "", "Auth backend base URL")
	flag.StringVar(&calorieAddress, "calorie-address", "", "Calorie backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&googleClientID, "google-client-id", "", "Federated login client identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Token refresh interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			GoogleClientID: googleClientID,
		},
		Adapter: Adapter{
			AuthAddress:    authAddress,
			CalorieAddress: calorieAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}
