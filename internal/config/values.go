package config

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/value"
)

// Values is a read-only view over a configuration object. The zero value is
// an empty configuration.
type Values struct {
	obj *value.Object
}

// New wraps obj. A nil obj is an empty configuration.
func New(obj *value.Object) Values {
	return Values{obj: obj}
}

// Of builds a configuration from alternating key/value arguments.
func Of(pairs ...any) Values {
	return Values{obj: value.ObjectOf(pairs...)}
}

// Object returns the underlying object (possibly nil). Callers must not
// modify it.
func (v Values) Object() *value.Object {
	return v.obj
}

// Get returns the raw value under key. Keys holding nil or Undefined are
// reported as absent.
func (v Values) Get(key string) (any, bool) {
	raw, ok := v.obj.Get(key)
	if !ok || value.IsNullish(raw) {
		return nil, false
	}
	return raw, true
}

// Has reports whether key holds a non-null value.
func (v Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Float returns the number under key, or def when absent.
func (v Values) Float(key string, def float64) (float64, error) {
	raw, ok := v.Get(key)
	if !ok {
		return def, nil
	}
	f, ok := value.AsFloat(raw)
	if !ok {
		return 0, typeError(key, "a number", raw)
	}
	return f, nil
}

// RequireFloat returns the number under key and fails when it is absent.
func (v Values) RequireFloat(key string) (float64, error) {
	if !v.Has(key) {
		return 0, missingError(key)
	}
	return v.Float(key, 0)
}

// Int returns the integer under key, or def when absent. Numbers with a
// fractional part are rejected.
func (v Values) Int(key string, def int) (int, error) {
	raw, ok := v.Get(key)
	if !ok {
		return def, nil
	}
	i, ok := value.AsInt(raw)
	if !ok {
		return 0, typeError(key, "an integer", raw)
	}
	return i, nil
}

// RequireInt returns the integer under key and fails when it is absent.
func (v Values) RequireInt(key string) (int, error) {
	if !v.Has(key) {
		return 0, missingError(key)
	}
	return v.Int(key, 0)
}

// String returns the string under key, or def when absent.
func (v Values) String(key string, def string) (string, error) {
	raw, ok := v.Get(key)
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", typeError(key, "a string", raw)
	}
	return s, nil
}

// RequireString returns the non-empty string under key.
func (v Values) RequireString(key string) (string, error) {
	s, err := v.String(key, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", missingError(key)
	}
	return s, nil
}

// Bool returns the boolean under key, or def when absent.
func (v Values) Bool(key string, def bool) (bool, error) {
	raw, ok := v.Get(key)
	if !ok {
		return def, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, typeError(key, "a boolean", raw)
	}
	return b, nil
}

// Slice returns the array under key. The second result is false when the key
// is absent.
func (v Values) Slice(key string) ([]any, bool, error) {
	raw, ok := v.Get(key)
	if !ok {
		return nil, false, nil
	}
	switch t := raw.(type) {
	case []any:
		return t, true, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true, nil
	default:
		return nil, false, typeError(key, "an array", raw)
	}
}

// ObjectAt returns the nested object under key. The second result is false
// when the key is absent.
func (v Values) ObjectAt(key string) (*value.Object, bool, error) {
	raw, ok := v.Get(key)
	if !ok {
		return nil, false, nil
	}
	switch t := raw.(type) {
	case *value.Object:
		return t, true, nil
	case map[string]any:
		return value.FromNative(t).(*value.Object), true, nil
	default:
		return nil, false, typeError(key, "an object", raw)
	}
}

func missingError(key string) error {
	return fmt.Errorf("property '%s' is required", key)
}

func typeError(key, want string, got any) error {
	return fmt.Errorf("property '%s' must be %s (got %s)", key, want, value.TypeName(got))
}
