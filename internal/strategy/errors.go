// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved signals that a strategy deliberately declined to resolve
	// the conflict. It is an expected business outcome, not a fault.
	ErrUnresolved = errors.New("conflict could not be resolved")

	// ErrEmptyResolution is returned when a strategy produced neither a
	// record nor an error.
	ErrEmptyResolution = errors.New("strategy returned an empty resolution")

	// ErrNoFallback is returned when a type dispatcher is built without a
	// fallback strategy.
	ErrNoFallback = errors.New("type dispatcher requires a fallback strategy")

	// ErrUnknownStrategy is returned by [New] for an unsupported name.
	ErrUnknownStrategy = errors.New("unknown conflict strategy")
)

// Unresolved returns an error wrapping [ErrUnresolved] with reason attached.
// Merge functions return it to hand the conflict back to the application.
func Unresolved(reason string) error {
	if reason == "" {
		return ErrUnresolved
	}

	return fmt.Errorf("%w: %s", ErrUnresolved, reason)
}

// IsUnresolved reports whether err signals an unresolved conflict.
func IsUnresolved(err error) bool {
	return errors.Is(err, ErrUnresolved)
}
