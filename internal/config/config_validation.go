// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinel errors wrapped with a description of the offending field.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		if db.Host == "" || db.DatabaseName == "" {
			return fmt.Errorf("%w: either DSN or host and database name must be set", ErrInvalidStorageConfigs)
		}
		if db.Port < 1 || db.Port > 65535 {
			return fmt.Errorf("%w: port %d is out of range", ErrInvalidStorageConfigs, db.Port)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.OTLPEndpoint == "" {
		return fmt.Errorf("%w: tracing is enabled without an OTLP endpoint", ErrInvalidTelemetryConfigs)
	}

	return nil
}
