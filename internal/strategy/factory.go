// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"fmt"
	"strings"
)

// Strategy names accepted by [New].
const (
	NameClientWins = "client_wins"
	NameServerWins = "server_wins"
	NameFieldMerge = "field_merge"
	NameManual     = "manual"
)

// New returns the built-in strategy registered under name. stateFields is
// used by the field merge to skip the object state fields. Custom merges
// have no name; build them with [NewMerge].
func New(name string, stateFields []string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameClientWins, "client":
		return NewClientWins(), nil
	case NameServerWins, "server":
		return NewServerWins(), nil
	case NameFieldMerge, "merge":
		return NewFieldMerge(stateFields...), nil
	case NameManual:
		return NewManual(""), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
