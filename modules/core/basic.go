package core

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Undefined leaves the field out of the record.
func Undefined(generator.Config) (generator.Func, error) {
	return func(*generator.Context) (any, error) { return value.Undefined, nil }, nil
}

// Null always produces null.
func Null(generator.Config) (generator.Func, error) {
	return func(*generator.Context) (any, error) { return nil, nil }, nil
}

// Constant produces a deep copy of `value` on every call. An explicit null is
// kept; a missing value leaves the field out.
func Constant(cfg generator.Config) (generator.Func, error) {
	v, ok := cfg.Object().Get("value")
	if !ok {
		v = value.Undefined
	}
	return generator.Constant(v), nil
}

// Reference reads `path` from the generation context. `separator` defaults
// to "." and `onEmptyThrow` (default false) turns a missing intermediate
// object into an error.
func Reference(cfg generator.Config) (generator.Func, error) {
	path, err := cfg.String("path", "")
	if err != nil {
		return nil, err
	}
	separator, err := cfg.String("separator", ".")
	if err != nil {
		return nil, err
	}
	strict, err := cfg.Bool("onEmptyThrow", false)
	if err != nil {
		return nil, err
	}
	return generator.Reference(path, separator, strict)
}

// Boolean is true with the configured `probability` (default 0.5).
func Boolean(cfg generator.Config) (generator.Func, error) {
	p, err := cfg.Float("probability", 0.5)
	if err != nil {
		return nil, fmt.Errorf("probability must be a number for random boolean value generator: %w", err)
	}
	switch {
	case p > 1:
		return nil, fmt.Errorf("specified probability for random boolean value generator can't be greater than 1 (%v)", p)
	case p < 0:
		return nil, fmt.Errorf("specified probability for random boolean value generator can't be less than 0 (%v)", p)
	}
	return func(ctx *generator.Context) (any, error) {
		switch p {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		r, err := ctx.Random()
		if err != nil {
			return nil, err
		}
		return r < p, nil
	}, nil
}

func fixedBool(b bool) generator.Factory {
	return func(generator.Config) (generator.Func, error) {
		return func(*generator.Context) (any, error) { return b, nil }, nil
	}
}
