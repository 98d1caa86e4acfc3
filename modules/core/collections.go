package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Pick returns a copy of one of `options`.
func Pick(cfg generator.Config) (generator.Func, error) {
	options, ok, err := cfg.Slice("options")
	if err != nil || !ok {
		return nil, errors.New("can't pick any item - the options is not of type array")
	}
	if len(options) == 0 {
		return nil, errors.New("can't pick any item - the given options is an empty array")
	}
	options = value.DeepCopy(options).([]any)
	return func(ctx *generator.Context) (any, error) {
		item, err := generator.PickItem(ctx, options)
		if err != nil {
			return nil, err
		}
		return value.DeepCopy(item), nil
	}, nil
}

// Sample returns between `min` (default 0) and `max` (default all) distinct
// items of `array`, keeping their original order.
func Sample(cfg generator.Config) (generator.Func, error) {
	items, ok, err := cfg.Slice("array")
	if err != nil || !ok {
		return nil, errors.New("can't make a sample - the array is not of type array")
	}
	if len(items) == 0 {
		return nil, errors.New("can't make a sample - the given array is empty")
	}
	lo, err := cfg.Int("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := cfg.Int("max", len(items))
	if err != nil {
		return nil, err
	}
	switch {
	case lo < 0 || hi < 0:
		return nil, errors.New("can't make a sample - both 'min' and 'max' mustn't be negatives")
	case lo > hi:
		return nil, errors.New("can't make a sample - maximum sample length is less than the minimum")
	case lo > len(items):
		return nil, fmt.Errorf("can't make a sample - minimum sample length exceeds the array length (%d > %d)", lo, len(items))
	}
	hi = min(hi, len(items))
	items = value.DeepCopy(items).([]any)

	return func(ctx *generator.Context) (any, error) {
		n, err := generator.RandomInt(ctx, lo, hi)
		if err != nil {
			return nil, err
		}
		// Partial Fisher-Yates over the indexes.
		idx := make([]int, len(items))
		for i := range idx {
			idx[i] = i
		}
		for i := range n {
			j, err := generator.RandomInt(ctx, i, len(idx)-1)
			if err != nil {
				return nil, err
			}
			idx[i], idx[j] = idx[j], idx[i]
		}
		chosen := idx[:n]
		slices.Sort(chosen)
		out := make([]any, n)
		for i, k := range chosen {
			out[i] = value.DeepCopy(items[k])
		}
		return out, nil
	}, nil
}

// Array repeats the field `definition` between `minItems` (default 0) and
// `maxItems` times.
func Array(cfg generator.Config) (generator.Func, error) {
	def, ok := cfg.Get("definition")
	if !ok {
		return nil, errors.New("can't generate a nested array - 'definition' is a required property")
	}
	if !cfg.Has("maxItems") {
		return nil, errors.New("can't generate a nested array - 'maxItems' is a required property")
	}
	lo, err := cfg.Int("minItems", 0)
	if err != nil {
		return nil, err
	}
	hi, err := cfg.Int("maxItems", 0)
	if err != nil {
		return nil, err
	}
	switch {
	case lo < 0 || hi < 0:
		return nil, errors.New("can't generate a nested array - both 'minItems' and 'maxItems' must be positive numbers")
	case lo > hi:
		return nil, fmt.Errorf("can't generate a nested array - 'minItems' must be less or equal to 'maxItems' (%d > %d)", lo, hi)
	}
	if cfg.Ecosystem == nil {
		return nil, errors.New("can't generate a nested array - ecosystem is not defined")
	}
	item, err := cfg.Ecosystem.CompileField(def)
	if err != nil {
		return nil, fmt.Errorf("can't generate a nested array - %w", err)
	}

	return func(ctx *generator.Context) (any, error) {
		n, err := generator.RandomInt(ctx, lo, hi)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, n)
		for range n {
			v, err := item(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}, nil
}
