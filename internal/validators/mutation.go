// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldReturnType targets the entity type of an operation or request.
	FieldReturnType = "return_type"

	// FieldVariables targets the submitted record.
	FieldVariables = "variables"

	// FieldClientState targets the client copy of a conflict.
	FieldClientState = "client_state"

	// FieldServerState targets the server copy of a conflict.
	FieldServerState = "server_state"
)

// MutationValidator validates [models.Operation], [models.MutationRequest]
// and [models.ConflictInfo], by value or by pointer.
type MutationValidator struct{}

// NewMutationValidator returns a [MutationValidator] as a [Validator].
func NewMutationValidator() Validator {
	return &MutationValidator{}
}

// Validate dispatches on the type of obj. Without fields every rule of the
// type is checked.
func (v *MutationValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Operation:
		return v.validateMutation(value.ReturnType, value.Variables, fields...)
	case *models.Operation:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMutation(value.ReturnType, value.Variables, fields...)

	case models.MutationRequest:
		return v.validateMutation(value.ReturnType, value.Variables, fields...)
	case *models.MutationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMutation(value.ReturnType, value.Variables, fields...)

	case models.ConflictInfo:
		return v.validateConflictInfo(value, fields...)
	case *models.ConflictInfo:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConflictInfo(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MutationValidator) validateMutation(returnType string, variables models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReturnType, FieldVariables}
	}

	for _, f := range fields {
		switch f {
		case FieldReturnType:
			if strings.TrimSpace(returnType) == "" {
				return ErrEmptyReturnType
			}
		case FieldVariables:
			if variables == nil {
				return ErrEmptyVariables
			}
			if err := validateFieldNames(variables); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ConflictInfo.ReturnType is optional: a client may fill it from the
// operation that produced the conflict.
func (v *MutationValidator) validateConflictInfo(info models.ConflictInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientState, FieldServerState}
	}

	for _, f := range fields {
		switch f {
		case FieldReturnType:
			if strings.TrimSpace(info.ReturnType) == "" {
				return ErrEmptyReturnType
			}
		case FieldClientState:
			if info.ClientState == nil {
				return ErrEmptyClientState
			}
			if err := validateFieldNames(info.ClientState); err != nil {
				return err
			}
		case FieldServerState:
			if info.ServerState == nil {
				return ErrEmptyServerState
			}
			if err := validateFieldNames(info.ServerState); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFieldNames(r models.Record) error {
	if _, ok := r[""]; ok {
		return ErrInvalidFieldName
	}

	return nil
}
