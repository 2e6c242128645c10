// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mutation server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of a request.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError replaces the cause of any 5xx response; the
	// cause itself is only logged.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the path exists but not for the
	// request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgRequestFailed is logged when a request ends with a 5xx status.
	MsgRequestFailed = "request failed"
)
