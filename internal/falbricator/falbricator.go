package falbricator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Falbricator generates records from one compiled schema.
type Falbricator struct {
	schema *schema.Schema
	logger *slog.Logger
}

// New wraps a compiled schema. A nil logger falls back to slog.Default().
func New(s *schema.Schema, logger *slog.Logger) *Falbricator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Falbricator{schema: s, logger: logger}
}

// Schema returns the compiled schema.
func (f *Falbricator) Schema() *schema.Schema {
	return f.schema
}

// Generate produces a single record with index 0. clientContext may be nil
// and is copied before use.
func (f *Falbricator) Generate(clientContext *value.Object) (*Container, error) {
	return f.generate(0, clientContext)
}

// GenerateMany produces n records with indexes 0..n-1. Each record gets a
// fresh random source. The first failure aborts the whole call.
func (f *Falbricator) GenerateMany(n int, clientContext *value.Object) ([]*Container, error) {
	if n < 0 {
		return nil, fmt.Errorf("number of records can't be negative (%d)", n)
	}
	out := make([]*Container, 0, n)
	for i := range n {
		c, err := f.generate(i, clientContext)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// GenerateNested produces a record of this schema inside a parent record,
// reusing the parent's random source and index.
func (f *Falbricator) GenerateNested(parent *generator.Context) (value.Referencer, error) {
	c, err := f.run(parent.Source(), parent.Index(), parent.ClientContext())
	if err != nil {
		var ge *GenerationError
		if errors.As(err, &ge) {
			return nil, fmt.Errorf("%s: %w", ge.Path, ge.Err)
		}
		return nil, err
	}
	return c, nil
}

func (f *Falbricator) generate(index int, clientContext *value.Object) (*Container, error) {
	f.logger.Debug("Generating record.", "index", index, "randomizer", f.schema.RandomizerName)

	src, err := f.schema.Randomizer(f.schema.RandomizerConfig)
	if err != nil {
		return nil, &GenerationError{Index: index, Path: "randomizer", Err: err}
	}

	var client *value.Object
	if clientContext != nil {
		client = clientContext.Clone()
	}
	return f.run(src, index, client)
}

// run evaluates the schema against src. client is owned by the call.
func (f *Falbricator) run(src randomizer.Source, index int, client *value.Object) (*Container, error) {
	profiles := value.NewObject()
	for _, p := range f.schema.Profiles {
		ctx := generator.NewContext(src, generator.Frame{
			Index:         index,
			Field:         p.Name,
			ClientContext: client,
			Falsum:        profiles,
		})
		v, err := p.Generate(ctx)
		if err != nil {
			return nil, &GenerationError{Index: index, Path: "profiles." + p.Name, Err: err}
		}
		profiles.Set(p.Name, v)
	}

	falsum := value.NewObject()
	for _, field := range f.schema.Fields {
		ctx := generator.NewContext(src, generator.Frame{
			Index:         index,
			Field:         field.Name,
			ClientContext: client,
			Falsum:        falsum,
			Profiles:      profiles,
		})
		v, err := field.Generate(ctx)
		if err != nil {
			return nil, &GenerationError{Index: index, Path: "fields." + field.Name, Err: err}
		}
		falsum.Set(field.Name, v)
	}

	postprocessed := value.NewObject()
	for _, b := range f.schema.Postprocess {
		out, err := b.Pipeline(falsum.Clone())
		if err != nil {
			path := "postprocess." + b.Name
			var se *pipe.StepError
			if errors.As(err, &se) {
				path = fmt.Sprintf("%s[%d]", path, se.Index)
				err = se.Err
			}
			return nil, &GenerationError{Index: index, Path: path, Err: err}
		}
		postprocessed.Set(b.Name, out)
	}

	return &Container{
		Context: ContainerContext{
			Index:         index,
			ClientContext: client,
			Profiles:      profiles,
		},
		Schema:        f.schema.Input,
		Original:      falsum,
		Postprocessed: postprocessed,
	}, nil
}
