// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the reference mutation
// server.
//
// Mutations arrive as POST /api/mutations/{type}. A stale write is answered
// with 409 Conflict and an error body carrying the stored record, which is
// what the client conflict engine consumes. Request tracing, access logging
// and panic recovery are handled here before the service layer is called.
package http
