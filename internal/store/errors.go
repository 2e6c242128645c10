// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBaseNotFound is returned when no base snapshot is stored for an
	// operation.
	ErrBaseNotFound = errors.New("base snapshot was not found")

	// ErrRecordNotFound is returned when the server has no record of the
	// requested type and id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrEncodingRecord is returned when a record cannot be serialized for
	// storage.
	ErrEncodingRecord = errors.New("error encoding record")

	// ErrDecodingRecord is returned when a stored record cannot be decoded.
	ErrDecodingRecord = errors.New("error decoding record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan base snapshot row")
)
