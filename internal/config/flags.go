// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a               server listen address in format [host]:[port]
//	-server-url      mutation server base URL used by the client
//	-d               base snapshot database DSN
//	-c / -config     configuration file path (.json, .yaml, .yml)
//	-provider        object state provider
//	-strategy        default conflict strategy
//	-state-field     compared state field override
//	-request-timeout server request timeout (e.g. "30s")
//	-client-timeout  client request timeout (e.g. "10s")
//	-workers         batch resolution concurrency
//	-snapshot-retention base snapshot retention (e.g. "168h")
//	-metrics-file    client metrics textfile path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var serverURL, databaseDSN, configPath, metricsFile string
	var provider, strategy, stateField string
	var requestTimeout, clientTimeout, retention time.Duration
	var workers int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Mutation server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Base snapshot database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&provider, "provider", "", "Object state provider")
	fs.StringVar(&strategy, "strategy", "", "Default conflict strategy")
	fs.StringVar(&stateField, "state-field", "", "Compared state field")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.IntVar(&workers, "workers", 0, "Batch resolution concurrency")
	fs.DurationVar(&retention, "snapshot-retention", 0, "Base snapshot retention (e.g., 168h)")
	fs.StringVar(&metricsFile, "metrics-file", "", "Client metrics textfile path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Conflict: Conflict{
			Provider:   provider,
			Strategy:   strategy,
			StateField: stateField,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		Storage: Storage{
			DB:                DB{DSN: databaseDSN},
			SnapshotRetention: retention,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:        Workers{Concurrency: workers},
		Metrics:        Metrics{TextfilePath: metricsFile},
		ConfigFilePath: configPath,
		Args:           fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
