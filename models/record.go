// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single entity instance as seen by either the client or the
// server. The engine assumes no schema: keys are field names, values are
// whatever the transport decoded (JSON numbers arrive as float64).
//
// Object state implementations may require specific fields to be present,
// e.g. a version counter or a content hash.
type Record map[string]any

// Clone returns a deep copy of r. Nested maps and slices are copied as well,
// so the copy can be modified without touching the original. A nil Record
// clones to nil.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	out := make(Record, len(r))
	for k, v := range r {
		out[k] = CloneValue(v)
	}

	return out
}

// Get returns the value stored under field and reports whether the field is
// present. A field explicitly set to nil counts as absent.
func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Has reports whether every listed field is present and non-nil.
func (r Record) Has(fields ...string) bool {
	for _, f := range fields {
		if _, ok := r.Get(f); !ok {
			return false
		}
	}

	return true
}

// Without returns a shallow copy of r with the listed fields removed.
func (r Record) Without(fields ...string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}

	return out
}

// CloneValue deep-copies a record field value. Maps and slices produced by
// JSON decoding are copied; scalars are returned as is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]any:
		return map[string]any(Record(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = CloneValue(val[i])
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case map[string]uint64:
		out := make(map[string]uint64, len(val))
		for k, n := range val {
			out[k] = n
		}
		return out
	default:
		return v
	}
}
