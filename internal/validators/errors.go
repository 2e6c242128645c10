// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyReturnType  = errors.New("return type is required")
	ErrEmptyVariables   = errors.New("variables are required")
	ErrEmptyClientState = errors.New("client state is required")
	ErrEmptyServerState = errors.New("server state is required")
	ErrInvalidFieldName = errors.New("record field names must not be empty")
)
