package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/falbricator/internal/value"
)

// Reference returns a generator resolving a separator-delimited path
// against the context. A missing leaf yields value.Undefined. A missing
// intermediate value yields value.Undefined too unless onEmptyThrow is set.
func Reference(path, separator string, onEmptyThrow bool) (Func, error) {
	if path == "" {
		return nil, errors.New("unable to reference - 'path' is a required field")
	}
	if separator == "" {
		separator = "."
	}
	segments := strings.Split(path, separator)
	return func(ctx *Context) (any, error) {
		if v, ok := ctx.Lookup(segments); ok {
			return v, nil
		}
		if onEmptyThrow && len(segments) > 1 {
			if _, ok := ctx.Lookup(segments[:len(segments)-1]); !ok {
				return nil, fmt.Errorf("can't reference '%s' - object not defined", path)
			}
		}
		return value.Undefined, nil
	}, nil
}

// Constant returns a generator producing a fresh deep copy of v on every
// call.
func Constant(v any) Func {
	v = value.DeepCopy(v)
	return func(*Context) (any, error) {
		return value.DeepCopy(v), nil
	}
}
