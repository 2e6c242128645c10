// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// operationNamespace scopes ids produced by [UUIDGenerator.Derive].
var operationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:go-sync-conflicts:operation"))

// UUIDGenerator produces time-ordered identifiers for operations and
// request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Derive returns a name-based UUIDv5 for parts. Equal parts give equal ids.
func (g *UUIDGenerator) Derive(parts ...string) string {
	return uuid.NewSHA1(operationNamespace, []byte(strings.Join(parts, "\x00"))).String()
}
