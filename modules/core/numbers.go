package core

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/generator"
)

// Integer draws an integer from [`min`, `max`]; `min` defaults to 0.
func Integer(cfg generator.Config) (generator.Func, error) {
	if !cfg.Has("max") {
		return nil, fmt.Errorf("property 'max' is required for integer value generator")
	}
	lo, err := cfg.Int("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := cfg.Int("max", 0)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("maximum must be greater or equal to minimum for integer value generator to work (%d < %d)", hi, lo)
	}
	return rangeFunc(lo, hi), nil
}

func integerRange(lo, hi int) generator.Factory {
	return func(generator.Config) (generator.Func, error) {
		return rangeFunc(lo, hi), nil
	}
}

func rangeFunc(lo, hi int) generator.Func {
	return func(ctx *generator.Context) (any, error) {
		return generator.RandomInt(ctx, lo, hi)
	}
}

// Float draws a number from [`min`, `max`] rounded to `decimalDigits`
// places (default 2).
func Float(cfg generator.Config) (generator.Func, error) {
	if !cfg.Has("max") {
		return nil, fmt.Errorf("property 'max' is required for float value generator")
	}
	lo, err := cfg.Float("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := cfg.Float("max", 0)
	if err != nil {
		return nil, err
	}
	decimals, err := cfg.Int("decimalDigits", 2)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("maximum must be greater or equal to minimum for float value generator to work (%v < %v)", hi, lo)
	}
	if decimals < 0 || decimals >= 100 {
		return nil, fmt.Errorf("number of decimal digits must be within range [0, 99] (%d)", decimals)
	}
	return func(ctx *generator.Context) (any, error) {
		return generator.RandomFloat(ctx, lo, hi, decimals)
	}, nil
}
