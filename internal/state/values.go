// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/MKhiriev/go-sync-conflicts/models"
)

const (
	sideClient = "client"
	sideServer = "server"
)

// requireField returns the value of field in r or an error wrapping
// ErrMissingStateField that names the side the record came from.
func requireField(r models.Record, field, side string) (any, error) {
	v, ok := r.Get(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s record has no %q", ErrMissingStateField, side, field)
	}

	return v, nil
}

// valuesEqual compares two state values. Numbers are compared by value
// regardless of their Go type, so a version decoded from JSON (float64)
// equals the same version held as an int.
func valuesEqual(a, b any) bool {
	if ai, ok := asInt(a); ok {
		if bi, ok := asInt(b); ok {
			return ai == bi
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
	}

	return reflect.DeepEqual(a, b)
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), true
		}
	case float32:
		f := float64(n)
		if f == math.Trunc(f) && math.Abs(f) < 1<<24 {
			return int64(f), true
		}
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}

	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}

	return 0, false
}

// asTime converts a timestamp state value into a time.Time. Accepted forms
// are time.Time, *time.Time, RFC 3339 strings and numeric Unix milliseconds.
func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidStateValue)
		}
		return *t, nil
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts, nil
		}
		if ms, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.UnixMilli(ms), nil
		}
		return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidStateValue, t)
	}
	if ms, ok := asInt(v); ok {
		return time.UnixMilli(ms), nil
	}

	return time.Time{}, fmt.Errorf("%w: unsupported timestamp type %T", ErrInvalidStateValue, v)
}

// asClock converts a vector clock state value into a node→counter map.
// JSON-decoded clocks arrive as map[string]any with float64 counters.
func asClock(v any) (map[string]uint64, error) {
	switch c := v.(type) {
	case map[string]uint64:
		return c, nil
	case models.Record:
		return asClock(map[string]any(c))
	case map[string]any:
		out := make(map[string]uint64, len(c))
		for node, raw := range c {
			n, ok := asInt(raw)
			if !ok || n < 0 {
				return nil, fmt.Errorf("%w: clock entry %q is not a non-negative integer", ErrInvalidStateValue, node)
			}
			out[node] = uint64(n)
		}
		return out, nil
	case map[string]int:
		out := make(map[string]uint64, len(c))
		for node, n := range c {
			if n < 0 {
				return nil, fmt.Errorf("%w: clock entry %q is negative", ErrInvalidStateValue, node)
			}
			out[node] = uint64(n)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: unsupported clock type %T", ErrInvalidStateValue, v)
}
