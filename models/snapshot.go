// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BaseSnapshot is the client's copy of a record taken before a local
// mutation. It is kept until the mutation is accepted so a later conflict
// can be merged three-way.
type BaseSnapshot struct {
	OperationID string    `json:"operationId"`
	ReturnType  string    `json:"returnType"`
	Record      Record    `json:"record"`
	CreatedAt   time.Time `json:"createdAt"`
}
