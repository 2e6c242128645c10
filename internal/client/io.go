// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readInput decodes path as either a single JSON object or an array of
// objects.
func readInput[T any](path string, stdin io.Reader) ([]T, error) {
	var (
		raw []byte
		err error
	)
	if path == StdinPath {
		if stdin == nil {
			return nil, fmt.Errorf("%w: no input stream", ErrInvalidInput)
		}
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidInput, path)
	}

	if raw[0] == '[' {
		var items []T
		if err = json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return items, nil
	}

	var item T
	if err = json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return []T{item}, nil
}

func writeOutput(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
