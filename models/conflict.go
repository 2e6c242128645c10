// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConflictInfo is the conflict description returned by the server when a
// mutation was rejected because the record had diverged.
//
// It is produced by the transport layer (see [ErrorResponse.ConflictInfo])
// and consumed by the conflict service. The engine only ever reads clones of
// the contained records.
type ConflictInfo struct {
	// ServerState is the authoritative copy currently stored on the server.
	ServerState Record `json:"serverState"`

	// ClientState is the copy the client submitted.
	ClientState Record `json:"clientState"`

	// ReturnType is the name of the entity type the mutation returns
	// (e.g. "User", "Task").
	ReturnType string `json:"returnType"`
}

// ConflictData is the input handed to a resolution strategy.
type ConflictData struct {
	// Base is the client record as it was before the local mutation.
	// Nil when the caller kept no snapshot.
	Base Record

	// Client is the record the client tried to submit.
	Client Record

	// Server is the authoritative server record.
	Server Record

	// ReturnType is the entity type name taken from ConflictInfo.
	ReturnType string

	// OperationName identifies the mutation for diagnostics.
	OperationName string
}

// Resolution is the outcome of resolving one conflict.
//
// When Conflicted is true no safe resolution exists and Record holds the
// original client record unchanged; callers must not resubmit it.
type Resolution struct {
	Record     Record `json:"record"`
	Conflicted bool   `json:"conflicted"`
}

// ConflictEvent is delivered to conflict listeners after a handler finished
// resolving a detected conflict. All records are copies.
type ConflictEvent struct {
	OperationName string
	ReturnType    string

	Base     Record
	Client   Record
	Server   Record
	Resolved Record

	// Conflicted mirrors the handler outcome flag.
	Conflicted bool
}
