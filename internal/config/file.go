// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Conflict struct {
		Provider       string            `json:"provider" yaml:"provider"`
		Strategy       string            `json:"strategy" yaml:"strategy"`
		StateField     string            `json:"state_field" yaml:"state_field"`
		TypeStrategies map[string]string `json:"type_strategies" yaml:"type_strategies"`
	} `json:"conflict" yaml:"conflict"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		SnapshotRetention Duration `json:"snapshot_retention" yaml:"snapshot_retention"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Workers struct {
		Concurrency int `json:"concurrency" yaml:"concurrency"`
	} `json:"workers" yaml:"workers"`

	Metrics struct {
		TextfilePath string `json:"textfile_path" yaml:"textfile_path"`
	} `json:"metrics" yaml:"metrics"`
}

// parseFile reads a JSON or YAML configuration file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Conflict: Conflict{
			Provider:       fc.Conflict.Provider,
			Strategy:       fc.Conflict.Strategy,
			StateField:     fc.Conflict.StateField,
			TypeStrategies: fc.Conflict.TypeStrategies,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB:                DB{DSN: fc.Storage.DB.DSN},
			SnapshotRetention: time.Duration(fc.Storage.SnapshotRetention),
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Workers: Workers{Concurrency: fc.Workers.Concurrency},
		Metrics: Metrics{TextfilePath: fc.Metrics.TextfilePath},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Plain numbers are taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))

	return nil
}
