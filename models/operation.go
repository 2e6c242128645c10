// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation is a mutation the client wants the server to apply.
type Operation struct {
	// ID uniquely identifies this submission. It keys the stored base
	// snapshot so the snapshot can be found again after a restart.
	ID string `json:"id"`

	// Name is the operation name, used in logs and listener events.
	Name string `json:"operationName"`

	// ReturnType is the entity type the mutation targets, e.g. "Task".
	ReturnType string `json:"returnType"`

	// Variables is the record to submit.
	Variables Record `json:"variables"`

	// Base is the record as it was before the local mutation. Optional.
	Base Record `json:"base,omitempty"`
}

// MutationRequest is the body sent to the server for a single mutation.
type MutationRequest struct {
	OperationName string `json:"operationName"`
	ReturnType    string `json:"returnType"`
	Variables     Record `json:"variables"`
}

// MutationResponse is the body the server returns for an applied mutation.
type MutationResponse struct {
	// Data is the stored record including refreshed state fields.
	Data Record `json:"data"`
}
