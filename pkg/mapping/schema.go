// Package mapping declares, per DTO type, an explicit table between external (wire) field
// names and local struct fields, and (de)serializes DTOs by walking that table.
//
// A table is built once at package level:
//
//	var assignmentSchema = mapping.NewSchema(
//		mapping.Float("price", func(a *Assignment) **float64 { return &a.Price }),
//		mapping.Int("type", func(a *Assignment) **int { return &a.Type }),
//	)
//
// Unknown external fields are ignored, missing or null fields leave the local field nil and
// Marshal emits only set fields, so Marshal(Unmarshal(json)) reproduces json for every field
// in the table.
package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field binds one external name to one local field of T.
type Field[T any] struct {
	name   string
	encode func(*T) (any, bool, error)
	decode func(*T, json.RawMessage) error
}

// Name returns the external field name.
func (f Field[T]) Name() string { return f.name }

// Schema is the ordered field table of T.
type Schema[T any] []Field[T]

// NewSchema creates a table from fields, in wire order.
func NewSchema[T any](fields ...Field[T]) Schema[T] {
	return Schema[T](fields)
}

// With returns a new table with fields appended.
func (s Schema[T]) With(fields ...Field[T]) Schema[T] {
	out := make(Schema[T], 0, len(s)+len(fields))
	out = append(out, s...)
	return append(out, fields...)
}

// Names returns the external names in table order.
func (s Schema[T]) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.name
	}
	return names
}

// Marshal serializes the set fields of v as a JSON object.
func (s Schema[T]) Marshal(v *T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for _, f := range s {
		value, ok, err := f.encode(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.name, err)
		}
		if !ok {
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", f.name, err)
		}
		key, err := json.Marshal(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field name %q: %w", f.name, err)
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(raw)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Unmarshal fills v from a JSON object.
func (s Schema[T]) Unmarshal(data []byte, v *T) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("failed to decode object: %w", err)
	}

	for _, f := range s {
		raw, ok := obj[f.name]
		if !ok || isNull(raw) {
			continue
		}
		if err := f.decode(v, raw); err != nil {
			return fmt.Errorf("failed to decode field %q: %w", f.name, err)
		}
	}
	return nil
}

// Embed lifts the table of a shared sub-structure E into the table of T, so several DTOs
// can reuse one set of fields through composition.
func Embed[T, E any](inner Schema[E], ref func(*T) *E) Schema[T] {
	out := make(Schema[T], len(inner))
	for i, f := range inner {
		f := f
		out[i] = Field[T]{
			name: f.name,
			encode: func(v *T) (any, bool, error) {
				return f.encode(ref(v))
			},
			decode: func(v *T, raw json.RawMessage) error {
				return f.decode(ref(v), raw)
			},
		}
	}
	return out
}

// Ptr returns a pointer to v, for building DTOs in code.
func Ptr[V any](v V) *V {
	return &v
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
