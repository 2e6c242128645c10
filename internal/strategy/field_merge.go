// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

var _ Strategy = (*FieldMerge)(nil)

// FieldMerge performs a three-way merge field by field, using the base
// record the client started from:
//
//   - changed only by the client: client value
//   - changed only on the server: server value
//   - changed identically on both sides: that value
//   - changed differently on both sides: unresolved
//
// Ignored fields (normally the object state fields) are never compared and
// keep the client value; the handler overwrites them with the server state.
// Without a base record the merge only succeeds when client and server
// already agree on every compared field.
type FieldMerge struct {
	ignored []string
}

// NewFieldMerge returns a three-way field merge skipping the given fields.
func NewFieldMerge(ignored ...string) *FieldMerge {
	return &FieldMerge{ignored: slices.Clone(ignored)}
}

// Resolve implements [Strategy].
func (f *FieldMerge) Resolve(conflict models.ConflictData) (models.Record, error) {
	client := conflict.Client
	server := conflict.Server
	base := conflict.Base

	if base == nil {
		for _, key := range f.keys(client, server) {
			if !sameField(client, server, key) {
				return nil, Unresolved("no base record and field " + key + " differs")
			}
		}
		return client.Clone(), nil
	}

	merged := client.Clone()
	if merged == nil {
		merged = models.Record{}
	}

	var clashes []string
	for _, key := range f.keys(base, client, server) {
		clientChanged := !sameField(base, client, key)
		serverChanged := !sameField(base, server, key)

		switch {
		case !serverChanged:
			// client value already in merged
		case !clientChanged:
			if v, ok := server[key]; ok {
				merged[key] = models.CloneValue(v)
			} else {
				delete(merged, key)
			}
		case sameField(client, server, key):
			// converged
		default:
			clashes = append(clashes, key)
		}
	}

	if len(clashes) > 0 {
		return nil, Unresolved("fields changed on both sides: " + strings.Join(clashes, ", "))
	}

	return merged, nil
}

// keys returns the sorted union of field names of records minus ignored ones.
func (f *FieldMerge) keys(records ...models.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			if slices.Contains(f.ignored, k) {
				continue
			}
			seen[k] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// sameField compares field key of a and b; a missing field only equals a
// missing field.
func sameField(a, b models.Record, key string) bool {
	av, aok := a[key]
	bv, bok := b[key]
	if aok != bok {
		return false
	}

	return reflect.DeepEqual(normalize(av), normalize(bv))
}

// normalize makes values decoded from JSON comparable with values built in
// Go code: every number becomes a float64, nested maps and slices are
// normalized recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case models.Record:
		return normalize(map[string]any(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, x := range val {
			out[k] = normalize(x)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = normalize(val[i])
		}
		return out
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return v
	}
}
