// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

var (
	ErrNoConflictProvider = errors.New("no object state provider configured")
	ErrInvalidConflict    = errors.New("invalid conflict info")
	ErrInvalidOperation   = errors.New("invalid operation")

	// ErrConflictUnresolved is returned by the client link when the strategy
	// left a conflict to the application. It is joined with the transport
	// error that reported the conflict.
	ErrConflictUnresolved = errors.New("conflict could not be resolved automatically")

	// ErrStaleRecord is wrapped by [StaleRecordError].
	ErrStaleRecord = errors.New("record was modified on the server")
)

// StaleRecordError is returned by the server mutation service when the
// submitted record is behind the stored one.
type StaleRecordError struct {
	Info models.ConflictInfo
}

func (e *StaleRecordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStaleRecord, e.Info.ReturnType)
}

func (e *StaleRecordError) Unwrap() error {
	return ErrStaleRecord
}
