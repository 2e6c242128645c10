// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sync-conflicts/internal/state"
	"github.com/MKhiriev/go-sync-conflicts/internal/strategy"
)

// validate checks that the merged [StructuredConfig] names known conflict
// providers and strategies and carries no negative limits.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Conflict.validate(); err != nil {
		return err
	}

	if cfg.Workers.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency %d", ErrInvalidWorkerConfigs, cfg.Workers.Concurrency)
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Storage.SnapshotRetention < 0 {
		return fmt.Errorf("%w: negative snapshot retention", ErrInvalidStorageConfigs)
	}

	return nil
}

func (c Conflict) validate() error {
	provider, err := state.New(c.Provider, c.StateField)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConflictConfigs, err)
	}

	stateFields := provider.StateFields()
	if _, err = strategy.New(c.Strategy, stateFields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConflictConfigs, err)
	}
	for returnType, name := range c.TypeStrategies {
		if returnType == "" {
			return fmt.Errorf("%w: empty return type in type strategies", ErrInvalidConflictConfigs)
		}
		if _, err = strategy.New(name, stateFields); err != nil {
			return fmt.Errorf("%w: type %q: %w", ErrInvalidConflictConfigs, returnType, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Conflict.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if !validAdapterAddress(cfg.Adapter.HTTPAddress) {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.Concurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validAdapterAddress accepts a base URL or a bare host:port, which the
// adapter treats as plain http.
func validAdapterAddress(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Conflict.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
