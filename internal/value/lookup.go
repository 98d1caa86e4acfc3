package value

import "strconv"

// Referencer is implemented by values that can be navigated by key without
// being an Object themselves (generation contexts, result containers).
type Referencer interface {
	Reference(key string) (any, bool)
}

// Lookup walks path starting at root. Objects, maps and Referencers are
// indexed by key; arrays by a decimal index. The second result is false as
// soon as a segment cannot be resolved.
//
// The returned value is not copied.
func Lookup(root any, path []string) (any, bool) {
	current := root
	for _, segment := range path {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(current any, segment string) (any, bool) {
	switch t := current.(type) {
	case *Object:
		return t.Get(segment)
	case map[string]any:
		v, ok := t[segment]
		return v, ok
	case []any:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	case Referencer:
		if t == nil {
			return nil, false
		}
		return t.Reference(segment)
	default:
		return nil, false
	}
}
