// Package jsonz decodes JSON documents into typed values or into the dynamic
// containers accepted by [collections.EachAny] and friends.
package jsonz

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData is returned when a document has more than one top-level value.
var ErrTrailingData = errors.New("jsonz: unexpected data after top-level value")

// Unmarshal decodes a single JSON document into a new T.
func Unmarshal[T any](bs []byte) (*T, error) {
	var t T
	if err := decode(bs, &t, false); err != nil {
		return nil, err
	}
	return &t, nil
}

// Decode decodes a single JSON document into its dynamic form:
// arrays become []any, objects map[string]any and numbers json.Number.
func Decode(bs []byte) (any, error) {
	var v any
	if err := decode(bs, &v, true); err != nil {
		return nil, err
	}
	return v, nil
}

func decode(bs []byte, v any, useNumber bool) error {
	dec := json.NewDecoder(bytes.NewReader(bs))
	if useNumber {
		dec.UseNumber()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}
