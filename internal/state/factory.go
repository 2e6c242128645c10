// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"
	"strings"
)

// Provider names accepted by [New].
const (
	ProviderVersion     = "version"
	ProviderTimestamp   = "timestamp"
	ProviderHash        = "hash"
	ProviderVectorClock = "vector_clock"
)

// New constructs the object state registered under name. field overrides
// the compared field; empty keeps the provider default.
func New(name, field string) (ObjectState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderVersion:
		return NewVersionedState(field), nil
	case ProviderTimestamp:
		return NewTimestampState(field), nil
	case ProviderHash:
		return NewHashState(field), nil
	case ProviderVectorClock, "vectorclock", "clock":
		return NewVectorClockState(field), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}
