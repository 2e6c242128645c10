// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client runtime.
//
// The client runs its maintenance workers, then executes one command:
//
//	submit <operations.json>   submit mutations and resolve conflicts
//	resolve <conflicts.json>   resolve conflicts offline, without a server
//
// Results are written to the output as indented JSON.
package client
