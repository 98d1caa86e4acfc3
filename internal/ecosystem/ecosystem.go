package ecosystem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/falbricator/internal/ctxlog"
	"github.com/specialistvlad/falbricator/internal/falbricator"
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/plugin"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/registry"
	"github.com/specialistvlad/falbricator/internal/schema"
)

// Ecosystem holds the registered capabilities.
type Ecosystem struct {
	logger            *slog.Logger
	randomizers       *registry.Registry[randomizer.Factory]
	valueGenerators   *registry.Registry[generator.Factory]
	charsets          *registry.Registry[[]string]
	preconfigurations *registry.Registry[any]
	pipes             *registry.Registry[pipe.Factory]
}

// New returns an ecosystem with empty registries and registers the given
// plugins in order.
func New(plugins ...plugin.Plugin) (*Ecosystem, error) {
	e := &Ecosystem{
		logger:            slog.Default(),
		randomizers:       registry.MustNew[randomizer.Factory](Randomizers.String()),
		valueGenerators:   registry.MustNew[generator.Factory](ValueGenerators.String()),
		charsets:          registry.MustNew[[]string](Charsets.String()),
		preconfigurations: registry.MustNew[any](Preconfigurations.String()),
		pipes:             registry.MustNew[pipe.Factory](Pipes.String()),
	}
	for _, p := range plugins {
		if err := e.Register(p); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Register merges every capability list of p into the matching registry.
// Name collisions surface as *registry.Error.
func (e *Ecosystem) Register(p plugin.Plugin) error {
	e.logger.Debug("Registering plugin.", "plugin", p.Name,
		"randomizers", len(p.Randomizers),
		"valueGenerators", len(p.ValueGenerators),
		"charsets", len(p.Charsets),
		"preconfigurations", len(p.Preconfigurations),
		"pipes", len(p.Pipes),
	)
	if err := registerAll(e.logger, e.randomizers, p.Randomizers); err != nil {
		return err
	}
	if err := registerAll(e.logger, e.valueGenerators, p.ValueGenerators); err != nil {
		return err
	}
	if err := registerAll(e.logger, e.charsets, p.Charsets); err != nil {
		return err
	}
	if err := registerAll(e.logger, e.preconfigurations, p.Preconfigurations); err != nil {
		return err
	}
	return registerAll(e.logger, e.pipes, p.Pipes)
}

// registerAll registers entries in order and stops at the first error.
func registerAll[T any](logger *slog.Logger, r *registry.Registry[T], entries []registry.Entry[T]) error {
	for _, entry := range entries {
		if err := r.Register(entry.Name, entry.Item); err != nil {
			return err
		}
		logger.Debug("Registered item.", "registry", r.Kind(), "name", entry.Name)
	}
	return nil
}

// Get returns the item registered under name in the registry of kind.
func (e *Ecosystem) Get(kind Kind, name string) (any, error) {
	switch kind {
	case Randomizers:
		return e.randomizers.Get(name)
	case ValueGenerators:
		return e.valueGenerators.Get(name)
	case Charsets:
		return e.charsets.Get(name)
	case Preconfigurations:
		return e.preconfigurations.Get(name)
	case Pipes:
		return e.pipes.Get(name)
	}
	panic(fmt.Sprintf("ecosystem: unknown registry kind %d", int(kind)))
}

// Has reports whether name is registered in the registry of kind.
func (e *Ecosystem) Has(kind Kind, name string) bool {
	switch kind {
	case Randomizers:
		return e.randomizers.Has(name)
	case ValueGenerators:
		return e.valueGenerators.Has(name)
	case Charsets:
		return e.charsets.Has(name)
	case Preconfigurations:
		return e.preconfigurations.Has(name)
	case Pipes:
		return e.pipes.Has(name)
	}
	panic(fmt.Sprintf("ecosystem: unknown registry kind %d", int(kind)))
}

// Remove deletes name from the registry of kind. Removing an unknown name is
// a no-op.
func (e *Ecosystem) Remove(kind Kind, name string) {
	switch kind {
	case Randomizers:
		e.randomizers.Remove(name)
	case ValueGenerators:
		e.valueGenerators.Remove(name)
	case Charsets:
		e.charsets.Remove(name)
	case Preconfigurations:
		e.preconfigurations.Remove(name)
	case Pipes:
		e.pipes.Remove(name)
	default:
		panic(fmt.Sprintf("ecosystem: unknown registry kind %d", int(kind)))
	}
}

// Names lists the registered names of kind in registration order.
func (e *Ecosystem) Names(kind Kind) []string {
	switch kind {
	case Randomizers:
		return e.randomizers.Names()
	case ValueGenerators:
		return e.valueGenerators.Names()
	case Charsets:
		return e.charsets.Names()
	case Preconfigurations:
		return e.preconfigurations.Names()
	case Pipes:
		return e.pipes.Names()
	}
	panic(fmt.Sprintf("ecosystem: unknown registry kind %d", int(kind)))
}

// Compile compiles in against the ecosystem. The logger carried by ctx, if
// any, is used by the returned Falbricator.
func (e *Ecosystem) Compile(ctx context.Context, in *schema.Input) (*falbricator.Falbricator, error) {
	logger := ctxlog.FromContext(ctx)

	s, err := schema.Compile(in, e)
	if err != nil {
		return nil, err
	}
	logger.Debug("Schema compiled.",
		"randomizer", s.RandomizerName,
		"profiles", len(s.Profiles),
		"fields", len(s.Fields),
		"branches", len(s.Postprocess),
	)
	return falbricator.New(s, logger), nil
}
