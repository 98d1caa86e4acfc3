package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/specialistvlad/falbricator/internal/falbricator"
	"github.com/specialistvlad/falbricator/internal/loader"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Run loads and compiles the schema, generates Count records and writes the
// selected part of each one in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	in, err := loader.Load(ctx, a.config.SchemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	if a.config.Seed != nil {
		in.Randomizer = &schema.RandomizerSpec{
			Name:   "seeded",
			Config: value.ObjectOf("seed", float64(*a.config.Seed)),
		}
		a.logger.Debug("Randomizer overridden by seed.", "seed", *a.config.Seed)
	}

	var client *value.Object
	if a.config.ContextPath != "" {
		if client, err = loader.LoadContext(ctx, a.config.ContextPath); err != nil {
			return fmt.Errorf("failed to load client context: %w", err)
		}
	}

	f, err := a.ecosystem.Compile(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	items, err := f.GenerateMany(a.config.Count, client)
	if err != nil {
		return fmt.Errorf("failed to generate records: %w", err)
	}
	a.logger.Info("Records generated.", "count", len(items))

	selected, err := a.selectOutput(items)
	if err != nil {
		return err
	}
	if err := a.write(selected); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) selectOutput(items []*falbricator.Container) ([]any, error) {
	path := strings.Split(a.config.Output, ".")
	out := make([]any, 0, len(items))
	for _, c := range items {
		v, ok := value.Lookup(c, path)
		if !ok || value.IsUndefined(v) {
			return nil, fmt.Errorf("record %d: output '%s' not found", c.Context.Index, a.config.Output)
		}
		out = append(out, v)
	}
	return out, nil
}

func (a *App) write(items []any) error {
	switch a.config.Format {
	case FormatNDJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetEscapeHTML(false)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	case FormatDump:
		for _, item := range items {
			dumper.Fdump(a.outW, item)
		}
		return nil
	default:
		enc := json.NewEncoder(a.outW)
		enc.SetEscapeHTML(false)
		if a.config.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", a.config.Indent))
		}
		return enc.Encode(items)
	}
}
