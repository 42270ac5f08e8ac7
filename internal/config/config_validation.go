// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final client configuration satisfies the
// invariants the runtime depends on. The federated login client identifier
// is deliberately not required: its absence only disables the Google login
// affordance.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.AuthAddress == "" || cfg.Adapter.CalorieAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
