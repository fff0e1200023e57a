package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String maps an optional string field. Numbers and booleans are coerced to their text.
func String[T any](name string, ref func(*T) **string) Field[T] {
	return scalar(name, ref, decodeString)
}

// Int maps an optional integer field. Numeric strings and integral floats are coerced.
func Int[T any](name string, ref func(*T) **int) Field[T] {
	return scalar(name, ref, decodeInt)
}

// Float maps an optional float field. Numeric strings are coerced.
func Float[T any](name string, ref func(*T) **float64) Field[T] {
	return scalar(name, ref, decodeFloat)
}

// Bool maps an optional boolean field. 0/1 and "true"/"false" are coerced.
func Bool[T any](name string, ref func(*T) **bool) Field[T] {
	return scalar(name, ref, decodeBool)
}

// Object maps a nested DTO through its own table.
func Object[T, E any](name string, inner Schema[E], ref func(*T) **E) Field[T] {
	return Field[T]{
		name: name,
		encode: func(v *T) (any, bool, error) {
			p := *ref(v)
			if p == nil {
				return nil, false, nil
			}
			raw, err := inner.Marshal(p)
			if err != nil {
				return nil, false, err
			}
			return json.RawMessage(raw), true, nil
		},
		decode: func(v *T, raw json.RawMessage) error {
			var item E
			if err := inner.Unmarshal(raw, &item); err != nil {
				return err
			}
			*ref(v) = &item
			return nil
		},
	}
}

// Slice maps an array of nested DTOs, decoded element-wise in order.
func Slice[T, E any](name string, inner Schema[E], ref func(*T) *[]E) Field[T] {
	return Field[T]{
		name: name,
		encode: func(v *T) (any, bool, error) {
			items := *ref(v)
			if items == nil {
				return nil, false, nil
			}
			out := make([]json.RawMessage, len(items))
			for i := range items {
				raw, err := inner.Marshal(&items[i])
				if err != nil {
					return nil, false, fmt.Errorf("element %d: %w", i, err)
				}
				out[i] = raw
			}
			return out, true, nil
		},
		decode: func(v *T, raw json.RawMessage) error {
			var elems []json.RawMessage
			if err := json.Unmarshal(raw, &elems); err != nil {
				return fmt.Errorf("expected array: %w", err)
			}
			items := make([]E, len(elems))
			for i, elem := range elems {
				if err := inner.Unmarshal(elem, &items[i]); err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
			}
			*ref(v) = items
			return nil
		},
	}
}

func scalar[T, V any](name string, ref func(*T) **V, decode func(json.RawMessage) (V, bool, error)) Field[T] {
	return Field[T]{
		name: name,
		encode: func(v *T) (any, bool, error) {
			p := *ref(v)
			if p == nil {
				return nil, false, nil
			}
			return *p, true, nil
		},
		decode: func(v *T, raw json.RawMessage) error {
			value, ok, err := decode(raw)
			if err != nil {
				return err
			}
			if ok {
				*ref(v) = &value
			}
			return nil
		},
	}
}

// number accepts a JSON number or a string holding one. An empty string counts as unset.
func number(raw json.RawMessage) (json.Number, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if string(trimmed) == `""` {
		return "", false, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", false, fmt.Errorf("cannot coerce %s to a number", trimmed)
	}
	return n, true, nil
}

func decodeInt(raw json.RawMessage) (int, bool, error) {
	n, ok, err := number(raw)
	if err != nil || !ok {
		return 0, ok, err
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true, nil
	}
	f, err := n.Float64()
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false, fmt.Errorf("cannot coerce %s to an integer", n)
	}
	return int(f), true, nil
}

func decodeFloat(raw json.RawMessage) (float64, bool, error) {
	n, ok, err := number(raw)
	if err != nil || !ok {
		return 0, ok, err
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false, fmt.Errorf("cannot coerce %s to a float", n)
	}
	return f, true, nil
}

func decodeString(raw json.RawMessage) (string, bool, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true, nil
	}

	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "true" || trimmed == "false":
		return trimmed, true, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String(), true, nil
		}
	}
	return "", false, fmt.Errorf("cannot coerce %s to a string", trimmed)
}

func decodeBool(raw json.RawMessage) (bool, bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseBool(s)
		if err != nil {
			return false, false, fmt.Errorf("cannot coerce %q to a boolean", s)
		}
		return parsed, true, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		f, err := n.Float64()
		if err == nil {
			return f != 0, true, nil
		}
	}
	return false, false, fmt.Errorf("cannot coerce %s to a boolean", raw)
}
