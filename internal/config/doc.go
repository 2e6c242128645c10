// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client and the reference server.
//
// Configuration is assembled from multiple sources. For every field the
// first source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// return validated views with defaults applied.
package config
