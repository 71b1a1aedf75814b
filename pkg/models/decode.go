package models

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// object is a strict JSON object decoder. Every field the caller reads is
// consumed from the map, so done() can reject anything the schema didn't ask
// for. Missing required fields and leftover unknown fields both fail.
type object struct {
	fields map[string]jsoniter.RawMessage
}

func decodeObject(data []byte) (*object, error) {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}
	return &object{fields: fields}, nil
}

func (o *object) take(key string) (jsoniter.RawMessage, error) {
	raw, ok := o.fields[key]
	if !ok {
		return nil, fmt.Errorf("missing required field %q", key)
	}
	delete(o.fields, key)
	return raw, nil
}

func (o *object) string(key string) (string, error) {
	raw, err := o.take(key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %q: expected a string: %w", key, err)
	}
	return s, nil
}

func (o *object) int64(key string) (int64, error) {
	raw, err := o.take(key)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("field %q: expected an integer: %w", key, err)
	}
	return n, nil
}

// nullable returns the raw value for key, or nil if the key is absent or its
// value is JSON null.
func (o *object) nullable(key string) jsoniter.RawMessage {
	raw, ok := o.fields[key]
	delete(o.fields, key)
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return raw
}

func (o *object) array(key string) ([]jsoniter.RawMessage, error) {
	raw, err := o.take(key)
	if err != nil {
		return nil, err
	}
	var items []jsoniter.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("field %q: expected an array: %w", key, err)
	}
	return items, nil
}

// done fails if any fields were decoded but never consumed by the schema.
func (o *object) done() error {
	for key := range o.fields {
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}
