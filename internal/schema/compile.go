package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Resolver looks capabilities up by name. The ecosystem implements it.
type Resolver interface {
	Randomizer(name string) (randomizer.Factory, error)
	// DefaultRandomizer returns the first registered randomizer.
	DefaultRandomizer() (string, randomizer.Factory, error)
	ValueGenerator(name string) (generator.Factory, error)
	Preconfiguration(name string) (any, error)
	Pipe(name string) (pipe.Factory, error)
	Capabilities() generator.Capabilities
}

// Field is a compiled profile or field.
type Field struct {
	Name     string
	Generate generator.Func
}

// Branch is a compiled postprocessing branch.
type Branch struct {
	Name     string
	Pipeline pipe.Func
}

// Schema is the compiled form of an Input. It holds no reference to the
// resolver, so later registry changes do not affect it.
type Schema struct {
	// Input is a copy of the compiled document.
	Input            *Input
	RandomizerName   string
	Randomizer       randomizer.Factory
	RandomizerConfig config.Values
	Profiles         []Field
	Fields           []Field
	Postprocess      []Branch
}

// CompileError reports a compile failure at a location within the schema,
// e.g. `fields.age` or `postprocess.branch[1]`.
type CompileError struct {
	Path string
	Err  error
}

func (e *CompileError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile resolves every definition of in against r.
func Compile(in *Input, r Resolver) (*Schema, error) {
	if in == nil {
		return nil, &CompileError{Err: errors.New("schema input is nil")}
	}
	if in.Fields == nil {
		return nil, &CompileError{Path: "fields", Err: errors.New("property 'fields' is required")}
	}

	s := &Schema{Input: in.Clone()}

	if err := compileRandomizer(s, r); err != nil {
		return nil, &CompileError{Path: "randomizer", Err: err}
	}

	var err error
	if s.Profiles, err = compileFields("profiles", s.Input.Profiles, r); err != nil {
		return nil, err
	}
	if s.Fields, err = compileFields("fields", s.Input.Fields, r); err != nil {
		return nil, err
	}

	for _, name := range s.Input.Postprocess.Keys() {
		raw, _ := s.Input.Postprocess.Get(name)
		steps, err := branchSteps(raw)
		if err != nil {
			return nil, &CompileError{Path: "postprocess." + name, Err: err}
		}
		pipeline := make([]pipe.Step, 0, len(steps))
		for i, step := range steps {
			compiled, err := compileStep(step, r)
			if err != nil {
				return nil, &CompileError{Path: fmt.Sprintf("postprocess.%s[%d]", name, i), Err: err}
			}
			pipeline = append(pipeline, compiled)
		}
		s.Postprocess = append(s.Postprocess, Branch{Name: name, Pipeline: pipe.Compose(pipeline...)})
	}
	return s, nil
}

// branchSteps accepts the []any produced by the decoders as well as a
// []string built in code.
func branchSteps(raw any) ([]string, error) {
	switch t := raw.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			text, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("step %d must be a string (got %s)", i, value.TypeName(item))
			}
			out[i] = text
		}
		return out, nil
	default:
		return nil, fmt.Errorf("branch must be an array of step names (got %s)", value.TypeName(raw))
	}
}

func compileRandomizer(s *Schema, r Resolver) error {
	var err error
	if s.Input.Randomizer != nil && s.Input.Randomizer.Name != "" {
		s.RandomizerName = s.Input.Randomizer.Name
		s.Randomizer, err = r.Randomizer(s.RandomizerName)
	} else {
		s.RandomizerName, s.Randomizer, err = r.DefaultRandomizer()
	}
	if err != nil {
		return err
	}
	if s.Input.Randomizer != nil {
		s.RandomizerConfig = config.New(s.Input.Randomizer.Config)
	}
	// A throwaway instance surfaces configuration errors at compile time.
	if _, err := s.Randomizer(s.RandomizerConfig); err != nil {
		return fmt.Errorf("randomizer '%s': %w", s.RandomizerName, err)
	}
	return nil
}

func compileFields(section string, defs *value.Object, r Resolver) ([]Field, error) {
	fields := make([]Field, 0, defs.Len())
	for _, name := range defs.Keys() {
		raw, _ := defs.Get(name)
		g, err := CompileField(raw, r)
		if err != nil {
			return nil, &CompileError{Path: section + "." + name, Err: err}
		}
		fields = append(fields, Field{Name: name, Generate: g})
	}
	return fields, nil
}

// CompileField resolves one raw field definition into a generator.
func CompileField(raw any, r Resolver) (generator.Func, error) {
	def, err := ParseDefinition(raw)
	if err != nil {
		return nil, err
	}
	return Resolve(def, r)
}

// Resolve turns a parsed definition into a generator.
func Resolve(def Definition, r Resolver) (generator.Func, error) {
	switch d := def.(type) {
	case ObjectForm:
		return build(d.Type, d.Config, r)
	case InlineConfig:
		return build(d.Type, d.Config, r)
	case BareName:
		return build(d.Name, nil, r)
	case PathRef:
		return build("reference", value.ObjectOf("path", d.Path), r)
	case ConstantRef:
		return build("constant", value.ObjectOf("value", d.Value), r)
	case PreconfigRef:
		item, err := r.Preconfiguration(d.Name)
		if err != nil {
			return nil, err
		}
		inner, err := ParseDefinition(item)
		if err != nil {
			return nil, fmt.Errorf("preconfiguration '%s': %w", d.Name, err)
		}
		obj, ok := inner.(ObjectForm)
		if !ok {
			return nil, fmt.Errorf("preconfiguration '%s' must be an object field definition", d.Name)
		}
		return build(obj.Type, obj.Config, r)
	default:
		return nil, fmt.Errorf("unsupported field definition %T", def)
	}
}

func build(typ string, cfg *value.Object, r Resolver) (generator.Func, error) {
	factory, err := r.ValueGenerator(typ)
	if err != nil {
		return nil, err
	}
	g, err := factory(generator.Config{Values: config.New(cfg), Ecosystem: r.Capabilities()})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", typ, err)
	}

	raw, ok := cfg.Get("nullability")
	if !ok || value.IsNullish(raw) {
		return g, nil
	}
	block, ok := raw.(*value.Object)
	if !ok {
		return nil, fmt.Errorf("%s: nullability must be an object (got %s)", typ, value.TypeName(raw))
	}
	p, replacement, err := generator.ParseNullability(block)
	if err != nil {
		return nil, err
	}
	return generator.Nullable(g, p, replacement), nil
}

func compileStep(step string, r Resolver) (pipe.Step, error) {
	name, query, hasQuery := strings.Cut(step, "?")
	if name == "" {
		return pipe.Step{}, fmt.Errorf("pipe step '%s' is missing a name", step)
	}
	var cfg *value.Object
	if hasQuery {
		var err error
		if cfg, err = ParseQuery(query); err != nil {
			return pipe.Step{}, fmt.Errorf("malformed inline configuration of '%s': %w", name, err)
		}
	}
	factory, err := r.Pipe(name)
	if err != nil {
		return pipe.Step{}, err
	}
	p, err := factory(config.New(cfg))
	if err != nil {
		return pipe.Step{}, fmt.Errorf("%s: %w", name, err)
	}
	return pipe.Step{Name: name, Pipe: p}, nil
}
