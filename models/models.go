// Package models normalizes the heterogeneous JSON returned by the
// upstream APIs into flat, stable record types. The same logical field
// often lives under different paths depending on sport; each parser
// documents the ordered path list it probes, first match wins.
//
// Optional fields are pointers: nil means the upstream payload did not
// carry the field, which is distinct from a zero value. A structurally
// valid but empty payload parses to an empty slice, never an error.
package models

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformedResponse indicates the payload was not the expected
// structured document at all, e.g. an HTML error page or truncated body.
var ErrMalformedResponse = errors.New("malformed response")

// parseRoot validates the raw payload and returns its parsed root.
func parseRoot(raw []byte) (gjson.Result, error) {
	if len(raw) == 0 {
		return gjson.Result{}, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: payload is not valid JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() && !root.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: payload is not a JSON document", ErrMalformedResponse)
	}
	return root, nil
}

// probe returns the first existing result among the given paths.
func probe(r gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if v := r.Get(path); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// items returns the first non-empty array among the given paths, or an
// empty slice when none is present.
func items(r gjson.Result, paths ...string) []gjson.Result {
	for _, path := range paths {
		if v := r.Get(path); v.Exists() && v.IsArray() {
			return v.Array()
		}
	}
	return nil
}

func strPtr(r gjson.Result) *string {
	if !r.Exists() {
		return nil
	}
	s := r.String()
	return &s
}

func intPtr(r gjson.Result) *int {
	if !r.Exists() {
		return nil
	}
	n := int(r.Int())
	return &n
}

func floatPtr(r gjson.Result) *float64 {
	if !r.Exists() {
		return nil
	}
	f := r.Float()
	return &f
}

func boolPtr(r gjson.Result) *bool {
	if !r.Exists() {
		return nil
	}
	b := r.Bool()
	return &b
}

// missingID builds the error for a record whose identifying key is
// absent. Identifying keys are the one field a parser will not tolerate
// losing.
func missingID(kind string) error {
	return fmt.Errorf("%w: %s record has no id", ErrMalformedResponse, kind)
}
