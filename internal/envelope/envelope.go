// Copyright 2026 Silver Diamond
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package envelope decodes Silver Diamond API response bodies.
//
// The service answers every request with a flat JSON object. Field types
// are not fully stable across endpoints: numbers sometimes arrive as
// strings and boolean flags sometimes arrive as 0/1 or null. Envelope
// keeps that looseness in one place so the client packages above it can
// stay strictly typed.
package envelope

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Envelope is a decoded response body, field name to raw JSON value.
type Envelope map[string]json.RawMessage

// Decode parses a response body into an Envelope.
//
// Bodies that are valid JSON but not objects (arrays, bare scalars)
// decode to an empty envelope: they carry no service error and no
// result fields, and the caller's required-field checks report them.
// Only input that is not JSON at all is an error.
func Decode(data []byte) (Envelope, error) {
	data = bytes.TrimSpace(data)
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil {
		return env, nil
	}
	var other any
	if err := json.Unmarshal(data, &other); err != nil {
		return nil, err
	}
	return Envelope{}, nil
}

// Has reports whether the field is present, whatever its value.
func (e Envelope) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// ErrorText returns the service-reported error text, if any.
// The service signals failure by including a "message" or "error"
// field; presence alone marks the response as failed. "message" wins
// when both are set.
func (e Envelope) ErrorText() (string, bool) {
	for _, name := range []string{"message", "error"} {
		raw, ok := e[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
		return strings.TrimSpace(string(raw)), true
	}
	return "", false
}

// String returns the named field decoded as a JSON string.
func (e Envelope) String(name string) (string, bool) {
	raw, ok := e[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Float returns the named field as a float64. The service stringifies
// numbers on some endpoints, so a JSON string holding a number is
// accepted too.
func (e Envelope) Float(name string) (float64, bool) {
	raw, ok := e[name]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOr is Float with a fallback for absent or unparsable values.
func (e Envelope) FloatOr(name string, fallback float64) float64 {
	f, ok := e.Float(name)
	if !ok {
		return fallback
	}
	return f
}

// Truthy interprets the named field the way loosely-typed services
// mean their flags: absent, null, false, 0 and "" are false, anything
// else is true.
func (e Envelope) Truthy(name string) bool {
	raw, ok := e[name]
	if !ok {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Strings returns the named field decoded as a list of strings.
// A null field is not a list.
func (e Envelope) Strings(name string) ([]string, bool) {
	raw, ok := e[name]
	if !ok {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return nil, false
	}
	return list, true
}
