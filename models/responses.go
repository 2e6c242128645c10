// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body the server sends when it rejects a mutation.
// It follows the GraphQL error layout so that conflict data travels in the
// same place regardless of the transport in use:
//
//	{"errors":[{"message":"...","extensions":{"exception":{"conflictInfo":{...}}}}]}
type ErrorResponse struct {
	// Errors is the list of errors reported for the request.
	Errors []ResponseError `json:"errors"`
}

// ResponseError is a single error entry of an [ErrorResponse].
type ResponseError struct {
	// Message is a human-readable description of the error.
	Message string `json:"message"`

	// Extensions carries machine-readable details. Nil for plain errors.
	Extensions *ErrorExtensions `json:"extensions,omitempty"`
}

// ErrorExtensions groups the vendor-specific parts of a [ResponseError].
type ErrorExtensions struct {
	// Code is a short machine-readable error code, e.g. "CONFLICT".
	Code string `json:"code,omitempty"`

	// Exception holds the exception data raised by the server.
	Exception *ErrorException `json:"exception,omitempty"`
}

// ErrorException is the exception payload of an error extension.
type ErrorException struct {
	// ConflictInfo is set when the error is a data conflict.
	ConflictInfo *ConflictInfo `json:"conflictInfo,omitempty"`
}

// ConflictInfo returns the first conflict description found among the
// response errors, or nil if none of them is a conflict.
func (r ErrorResponse) ConflictInfo() *ConflictInfo {
	for _, e := range r.Errors {
		if e.Extensions == nil || e.Extensions.Exception == nil {
			continue
		}
		if info := e.Extensions.Exception.ConflictInfo; info != nil {
			return info
		}
	}

	return nil
}

// NewConflictResponse builds the error body the server returns for a
// rejected mutation.
func NewConflictResponse(message string, info ConflictInfo) ErrorResponse {
	return ErrorResponse{Errors: []ResponseError{{
		Message: message,
		Extensions: &ErrorExtensions{
			Code:      "CONFLICT",
			Exception: &ErrorException{ConflictInfo: &info},
		},
	}}}
}
