package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/falbricator/internal/value"
)

const (
	preconfigPrefix = "!conf-"
	referencePrefix = "!ref-"
	constantPrefix  = "!const-"
)

// Definition is a parsed field definition. It is one of ObjectForm,
// PreconfigRef, PathRef, ConstantRef, InlineConfig or BareName.
type Definition interface {
	definition()
}

// ObjectForm is `{type, config?, comment?, examples?}`. Comment and Examples
// are documentation only.
type ObjectForm struct {
	Type     string
	Config   *value.Object
	Comment  string
	Examples any
}

// PreconfigRef is `!conf-<name>`.
type PreconfigRef struct {
	Name string
}

// PathRef is `!ref-<path>`.
type PathRef struct {
	Path string
}

// ConstantRef is `!const-<literal>`. Value is the parsed literal.
type ConstantRef struct {
	Value any
}

// InlineConfig is `<type>?<query>`.
type InlineConfig struct {
	Type   string
	Config *value.Object
}

// BareName is `<type>` with no configuration.
type BareName struct {
	Name string
}

func (ObjectForm) definition()   {}
func (PreconfigRef) definition() {}
func (PathRef) definition()      {}
func (ConstantRef) definition()  {}
func (InlineConfig) definition() {}
func (BareName) definition()     {}

// ParseDefinition classifies a raw field definition. String prefixes are
// checked in priority order: !conf-, !ref-, !const-, then `?` for inline
// configuration.
func ParseDefinition(raw any) (Definition, error) {
	switch t := raw.(type) {
	case Definition:
		return t, nil
	case string:
		return parseString(t)
	case map[string]any:
		return parseObject(value.FromNative(t).(*value.Object))
	case *value.Object:
		if t == nil {
			break
		}
		return parseObject(t)
	}
	return nil, fmt.Errorf("unexpected field definition format - %s", describe(raw))
}

func parseString(s string) (Definition, error) {
	switch {
	case strings.HasPrefix(s, preconfigPrefix):
		name := strings.TrimPrefix(s, preconfigPrefix)
		if name == "" {
			return nil, errors.New("preconfiguration reference is missing a name")
		}
		return PreconfigRef{Name: name}, nil
	case strings.HasPrefix(s, referencePrefix):
		path := strings.TrimPrefix(s, referencePrefix)
		if path == "" {
			return nil, errors.New("reference is missing a path")
		}
		return PathRef{Path: path}, nil
	case strings.HasPrefix(s, constantPrefix):
		return ConstantRef{Value: parseLiteral(strings.TrimPrefix(s, constantPrefix))}, nil
	}

	if name, query, ok := strings.Cut(s, "?"); ok {
		if name == "" {
			return nil, fmt.Errorf("inline configuration '%s' is missing a type", s)
		}
		cfg, err := ParseQuery(query)
		if err != nil {
			return nil, fmt.Errorf("malformed inline configuration of '%s': %w", name, err)
		}
		return InlineConfig{Type: name, Config: cfg}, nil
	}

	if s == "" {
		return nil, errors.New("field definition must not be an empty string")
	}
	return BareName{Name: s}, nil
}

func parseObject(obj *value.Object) (Definition, error) {
	rawType, ok := obj.Get("type")
	if !ok || value.IsNullish(rawType) {
		return nil, errors.New("object field definition requires property 'type'")
	}
	typ, ok := rawType.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("object field definition property 'type' must be a non-empty string (got %s)", describe(rawType))
	}

	def := ObjectForm{Type: typ}
	if rawCfg, ok := obj.Get("config"); ok && !value.IsNullish(rawCfg) {
		switch c := rawCfg.(type) {
		case *value.Object:
			def.Config = c
		case map[string]any:
			def.Config = value.FromNative(c).(*value.Object)
		default:
			return nil, fmt.Errorf("config of '%s' must be an object (got %s)", typ, value.TypeName(rawCfg))
		}
	}
	if c, ok := obj.Get("comment"); ok {
		def.Comment, _ = c.(string)
	}
	if ex, ok := obj.Get("examples"); ok {
		def.Examples = ex
	}
	return def, nil
}

// parseLiteral returns the JSON value of s, or s itself when it is not valid
// JSON.
func parseLiteral(s string) any {
	if v, err := value.ParseJSON([]byte(s)); err == nil {
		return v
	}
	return s
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("'%s'", s)
	}
	return value.TypeName(v)
}
