// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"time"
)

// Defaults applied by the config views when a source leaves a value unset.
const (
	DefaultConcurrency       = 4
	DefaultAdapterTimeout    = 10 * time.Second
	DefaultServerTimeout     = 30 * time.Second
	DefaultServerHTTPAddress = "localhost:8080"
	DefaultSnapshotRetention = 7 * 24 * time.Hour
)

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Conflict Conflict
	Adapter  Adapter
	Storage  Storage
	Workers  Workers
	Metrics  Metrics

	// Args are the positional command line arguments.
	Args []string
}

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Conflict Conflict
	Server   Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientConfig()
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ServerConfig()
}

// ClientConfig maps the fields relevant to the client runtime, fills in
// defaults and validates the result.
func (cfg *StructuredConfig) ClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Conflict: cfg.Conflict.clone(),
		Adapter:  cfg.Adapter,
		Storage:  cfg.Storage,
		Workers:  cfg.Workers,
		Metrics:  cfg.Metrics,
		Args:     cfg.Args,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if clientCfg.Storage.SnapshotRetention == 0 {
		clientCfg.Storage.SnapshotRetention = DefaultSnapshotRetention
	}
	if clientCfg.Workers.Concurrency == 0 {
		clientCfg.Workers.Concurrency = DefaultConcurrency
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// ServerConfig maps the fields relevant to the reference server, fills in
// defaults and validates the result.
func (cfg *StructuredConfig) ServerConfig() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Conflict: cfg.Conflict.clone(),
		Server:   cfg.Server,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultServerHTTPAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultServerTimeout
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}

func (c Conflict) clone() Conflict {
	c.TypeStrategies = maps.Clone(c.TypeStrategies)
	return c
}
