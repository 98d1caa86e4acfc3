package value

import (
	"fmt"
	"time"
)

// DeepCopy returns a copy of v that shares no mutable state with it.
// Scalars and time.Time are returned as-is; objects, maps and slices are
// copied recursively.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return t
		}
		return t.Clone()
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DeepCopy(item)
		}
		return out
	case []string:
		if t == nil {
			return t
		}
		out := make([]string, len(t))
		copy(out, t)
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = DeepCopy(item)
		}
		return out
	default:
		return v
	}
}

// TypeName returns a short, human-readable name of the dynamic type of v,
// used in error messages.
func TypeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case *Object, map[string]any:
		return "object"
	case []any, []string:
		return "array"
	case time.Time:
		return "date"
	default:
		if _, ok := AsFloat(t); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
