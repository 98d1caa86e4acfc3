package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Object compiles the nested `schema` and returns the part of its result
// container selected by `path` (default `original`). The nested record
// shares the parent's random source and index.
func Object(cfg generator.Config) (generator.Func, error) {
	raw, ok := cfg.Get("schema")
	if !ok {
		return nil, errors.New("can't create a nested object - given schema is not defined")
	}
	if cfg.Ecosystem == nil {
		return nil, errors.New("can't create a nested object - given ecosystem is not defined")
	}
	path, err := cfg.String("path", "original")
	if err != nil {
		return nil, err
	}
	nested, err := cfg.Ecosystem.CompileNested(raw)
	if err != nil {
		return nil, fmt.Errorf("can't create a nested object - %w", err)
	}
	segments := strings.Split(path, ".")

	return func(ctx *generator.Context) (any, error) {
		container, err := nested.GenerateNested(ctx)
		if err != nil {
			return nil, err
		}
		v, ok := value.Lookup(container, segments)
		if !ok {
			return value.Undefined, nil
		}
		return v, nil
	}, nil
}
