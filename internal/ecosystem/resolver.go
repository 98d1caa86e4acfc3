package ecosystem

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/falbricator"
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/registry"
	"github.com/specialistvlad/falbricator/internal/schema"
)

var (
	_ schema.Resolver        = (*Ecosystem)(nil)
	_ generator.Capabilities = (*Ecosystem)(nil)
)

// Randomizer returns the randomizer factory called name.
func (e *Ecosystem) Randomizer(name string) (randomizer.Factory, error) {
	return e.randomizers.Get(name)
}

// DefaultRandomizer returns the first registered randomizer.
func (e *Ecosystem) DefaultRandomizer() (string, randomizer.Factory, error) {
	first, ok := e.randomizers.First()
	if !ok {
		return "", nil, fmt.Errorf("no default randomizer: %w", registry.ErrNotFound)
	}
	return first.Name, first.Item, nil
}

// ValueGenerator returns the value-generator factory called name.
func (e *Ecosystem) ValueGenerator(name string) (generator.Factory, error) {
	return e.valueGenerators.Get(name)
}

// Preconfiguration returns the preconfigured field definition called name.
func (e *Ecosystem) Preconfiguration(name string) (any, error) {
	return e.preconfigurations.Get(name)
}

// Pipe returns the pipe factory called name.
func (e *Ecosystem) Pipe(name string) (pipe.Factory, error) {
	return e.pipes.Get(name)
}

// Capabilities returns e.
func (e *Ecosystem) Capabilities() generator.Capabilities {
	return e
}

// CompileField compiles a nested field definition.
func (e *Ecosystem) CompileField(def any) (generator.Func, error) {
	return schema.CompileField(def, e)
}

// CompileNested compiles a nested schema given as *schema.Input or as a
// decoded document.
func (e *Ecosystem) CompileNested(input any) (generator.Nested, error) {
	in, ok := input.(*schema.Input)
	if !ok {
		var err error
		if in, err = schema.FromValue(input); err != nil {
			return nil, err
		}
	}
	s, err := schema.Compile(in, e)
	if err != nil {
		return nil, err
	}
	return falbricator.New(s, e.logger), nil
}

// Charset returns the charset called name.
func (e *Ecosystem) Charset(name string) ([]string, error) {
	return e.charsets.Get(name)
}

// HasCharset reports whether a charset called name is registered.
func (e *Ecosystem) HasCharset(name string) bool {
	return e.charsets.Has(name)
}
