package schema

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/falbricator/internal/value"
	"gopkg.in/yaml.v3"
)

// RandomizerSpec selects the random source of a schema. An empty Name picks
// the first registered randomizer.
type RandomizerSpec struct {
	Name   string        `json:"name,omitempty"`
	Config *value.Object `json:"config,omitempty"`
}

// Input is the client-authored schema document. Profiles, Fields and
// Postprocess keep the declaration order of the source document.
type Input struct {
	Randomizer *RandomizerSpec
	// Profiles maps profile names to field definitions.
	Profiles *value.Object
	// Fields maps field names to field definitions.
	Fields *value.Object
	// Postprocess maps branch names to []any of step strings.
	Postprocess *value.Object
}

// Parse decodes a JSON schema document.
func Parse(data []byte) (*Input, error) {
	v, err := value.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return FromValue(v)
}

// FromValue builds an Input from a decoded value tree. Unknown top-level
// properties are ignored. A missing `fields` section is reported by Compile,
// not here.
func FromValue(v any) (*Input, error) {
	if m, ok := v.(map[string]any); ok {
		v = value.FromNative(m)
	}
	doc, ok := v.(*value.Object)
	if !ok || doc == nil {
		return nil, fmt.Errorf("schema must be an object (got %s)", value.TypeName(v))
	}

	in := &Input{}
	var err error

	if raw, ok := doc.Get("randomizer"); ok && !value.IsNullish(raw) {
		if in.Randomizer, err = parseRandomizerSpec(raw); err != nil {
			return nil, err
		}
	}
	if in.Profiles, err = optionalObject(doc, "profiles"); err != nil {
		return nil, err
	}
	if in.Fields, err = optionalObject(doc, "fields"); err != nil {
		return nil, err
	}
	if in.Postprocess, err = optionalObject(doc, "postprocess"); err != nil {
		return nil, err
	}

	var stepErr error
	in.Postprocess.Range(func(branch string, steps any) bool {
		list, ok := steps.([]any)
		if !ok {
			stepErr = fmt.Errorf("postprocess branch '%s' must be an array of step names (got %s)", branch, value.TypeName(steps))
			return false
		}
		for i, s := range list {
			if _, ok := s.(string); !ok {
				stepErr = fmt.Errorf("postprocess branch '%s' step %d must be a string (got %s)", branch, i, value.TypeName(s))
				return false
			}
		}
		return true
	})
	if stepErr != nil {
		return nil, stepErr
	}
	return in, nil
}

func parseRandomizerSpec(raw any) (*RandomizerSpec, error) {
	obj, ok := raw.(*value.Object)
	if !ok {
		return nil, fmt.Errorf("schema property 'randomizer' must be an object (got %s)", value.TypeName(raw))
	}
	spec := &RandomizerSpec{}
	if name, ok := obj.Get("name"); ok && !value.IsNullish(name) {
		s, ok := name.(string)
		if !ok {
			return nil, fmt.Errorf("randomizer 'name' must be a string (got %s)", value.TypeName(name))
		}
		spec.Name = s
	}
	cfg, err := optionalObject(obj, "config")
	if err != nil {
		return nil, fmt.Errorf("randomizer: %w", err)
	}
	spec.Config = cfg
	return spec, nil
}

func optionalObject(doc *value.Object, key string) (*value.Object, error) {
	raw, ok := doc.Get(key)
	if !ok || value.IsNullish(raw) {
		return nil, nil
	}
	switch t := raw.(type) {
	case *value.Object:
		return t, nil
	case map[string]any:
		return value.FromNative(t).(*value.Object), nil
	default:
		return nil, fmt.Errorf("schema property '%s' must be an object (got %s)", key, value.TypeName(raw))
	}
}

// Clone returns a deep copy of in.
func (in *Input) Clone() *Input {
	if in == nil {
		return nil
	}
	out := &Input{}
	if in.Randomizer != nil {
		out.Randomizer = &RandomizerSpec{Name: in.Randomizer.Name}
		if in.Randomizer.Config != nil {
			out.Randomizer.Config = in.Randomizer.Config.Clone()
		}
	}
	out.Profiles = cloneOrNil(in.Profiles)
	out.Fields = cloneOrNil(in.Fields)
	out.Postprocess = cloneOrNil(in.Postprocess)
	return out
}

func cloneOrNil(obj *value.Object) *value.Object {
	if obj == nil {
		return nil
	}
	return obj.Clone()
}

// ToValue renders the document as a value tree with sections in canonical
// order, omitting absent ones. The tree shares no state with in.
func (in *Input) ToValue() *value.Object {
	doc := value.NewObject()
	if in == nil {
		return doc
	}
	c := in.Clone()
	if c.Randomizer != nil {
		spec := value.NewObject()
		if c.Randomizer.Name != "" {
			spec.Set("name", c.Randomizer.Name)
		}
		if c.Randomizer.Config != nil {
			spec.Set("config", c.Randomizer.Config)
		}
		doc.Set("randomizer", spec)
	}
	if c.Profiles != nil {
		doc.Set("profiles", c.Profiles)
	}
	if c.Fields != nil {
		doc.Set("fields", c.Fields)
	}
	if c.Postprocess != nil {
		doc.Set("postprocess", c.Postprocess)
	}
	return doc
}

// MarshalJSON implements json.Marshaler.
func (in *Input) MarshalJSON() ([]byte, error) {
	if in == nil {
		return []byte("null"), nil
	}
	return in.ToValue().MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (in *Input) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*in = *parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	v, err := value.DecodeYAML(node)
	if err != nil {
		return fmt.Errorf("failed to decode schema: %w", err)
	}
	parsed, err := FromValue(v)
	if err != nil {
		return err
	}
	*in = *parsed
	return nil
}

var (
	_ json.Marshaler   = (*Input)(nil)
	_ json.Unmarshaler = (*Input)(nil)
	_ yaml.Unmarshaler = (*Input)(nil)
)
