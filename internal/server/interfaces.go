// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT
	// is received.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
