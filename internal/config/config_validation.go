// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("%w: unsupported dialect %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Dialect)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session TTL", ErrInvalidAppConfigs)
	}

	if (cfg.App.AdminUsername == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
