package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ParseJSON decodes a single JSON document into the value tree. Objects
// become *Object with keys in document order; numbers become float64.
// Trailing data after the document is an error.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("value: unexpected data after JSON document")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyToken, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("value: unexpected object key %v", keyToken)
			}
			item, err := decodeJSON(dec)
			if err != nil {
				return nil, fmt.Errorf("in key '%s': %w", key, err)
			}
			obj.Set(key, item)
		}
		// closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			item, err := decodeJSON(dec)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", len(arr), err)
			}
			arr = append(arr, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("value: unexpected delimiter %q", delim)
	}
}

// FromNative converts plain Go maps into the value tree. Map keys are sorted
// because Go maps carry no order of their own. Other values are returned
// unchanged apart from recursive conversion of slices.
func FromNative(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromNative(t[k]))
		}
		return obj
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = FromNative(item)
		}
		return out
	case *Object:
		if t == nil {
			return t
		}
		obj := NewObject()
		t.Range(func(k string, item any) bool {
			obj.Set(k, FromNative(item))
			return true
		})
		return obj
	default:
		return v
	}
}
