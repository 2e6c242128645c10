// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "errors"

var (
	// ErrMissingStateField is returned when a record lacks a field the
	// object state needs for comparison. This is a configuration or data
	// integrity fault; it is never treated as "no conflict".
	ErrMissingStateField = errors.New("record is missing state field")

	// ErrInvalidStateValue is returned when a state field holds a value of
	// an unsupported type or format.
	ErrInvalidStateValue = errors.New("invalid state field value")

	// ErrUnknownProvider is returned by [New] for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown object state provider")
)
