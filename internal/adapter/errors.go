// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedResponse  = errors.New("unexpected server response")
)

// ConflictError is returned when the server rejected a mutation and sent
// its current copy of the record along.
type ConflictError struct {
	Message string
	Info    models.ConflictInfo
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return ErrConflict.Error()
	}

	return ErrConflict.Error() + ": " + e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AsConflict extracts the conflict payload from err, if any.
func AsConflict(err error) (models.ConflictInfo, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Info, true
	}

	return models.ConflictInfo{}, false
}
