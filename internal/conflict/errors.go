// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import "errors"

var (
	ErrInvalidHandlerOptions = errors.New("invalid conflict handler options")
)
