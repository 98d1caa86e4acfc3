package core

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// StringSwitch evaluates `value`, renders it as text and runs the matching
// handler of `handlers`, falling back to `default` or leaving the field out.
func StringSwitch(cfg generator.Config) (generator.Func, error) {
	if cfg.Ecosystem == nil {
		return nil, errors.New("can't handle the string switch expression - 'ecosystem' property is required")
	}
	defs, ok, err := cfg.ObjectAt("handlers")
	if err != nil {
		return nil, err
	}
	if !ok || defs.Len() == 0 {
		return nil, errors.New("can't handle the string switch expression - no handlers specified")
	}
	rawValue, ok := cfg.Get("value")
	if !ok {
		return nil, errors.New("can't handle the string switch expression - 'value' property is required")
	}

	subject, err := cfg.Ecosystem.CompileField(rawValue)
	if err != nil {
		return nil, fmt.Errorf("string switch value: %w", err)
	}
	handlers := make(map[string]generator.Func, defs.Len())
	for _, key := range defs.Keys() {
		def, _ := defs.Get(key)
		if handlers[key], err = cfg.Ecosystem.CompileField(def); err != nil {
			return nil, fmt.Errorf("string switch handler '%s': %w", key, err)
		}
	}
	var fallback generator.Func
	if rawDefault, ok := cfg.Get("default"); ok {
		if fallback, err = cfg.Ecosystem.CompileField(rawDefault); err != nil {
			return nil, fmt.Errorf("string switch default: %w", err)
		}
	}

	return func(ctx *generator.Context) (any, error) {
		v, err := subject(ctx)
		if err != nil {
			return nil, err
		}
		if h, ok := handlers[formatValue(v)]; ok {
			return h(ctx)
		}
		if fallback != nil {
			return fallback(ctx)
		}
		return value.Undefined, nil
	}, nil
}

// Xor picks one of the `options` field definitions and evaluates it.
func Xor(cfg generator.Config) (generator.Func, error) {
	options, ok, err := cfg.Slice("options")
	if err != nil {
		return nil, err
	}
	if !ok || len(options) == 0 {
		return nil, errors.New("can't generate xor field - no options given")
	}
	if cfg.Ecosystem == nil {
		return nil, errors.New("can't generate xor field - ecosystem is not defined")
	}
	gens := make([]generator.Func, len(options))
	for i, opt := range options {
		if gens[i], err = cfg.Ecosystem.CompileField(opt); err != nil {
			return nil, fmt.Errorf("xor option %d: %w", i, err)
		}
	}
	return func(ctx *generator.Context) (any, error) {
		g, err := generator.PickItem(ctx, gens)
		if err != nil {
			return nil, err
		}
		return g(ctx)
	}, nil
}
