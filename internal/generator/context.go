package generator

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Frame is the per-call state the engine hands to NewContext. The objects
// are owned by the engine; the Context never exposes them without copying.
type Frame struct {
	Index         int
	Field         string
	ClientContext *value.Object
	Falsum        *value.Object
	Profiles      *value.Object
}

// Context is the generation context of a single profile or field
// evaluation.
//
// Every accessor that exposes record data returns a deep copy, so a
// generator can neither observe later mutations of the record nor alter it.
type Context struct {
	source   randomizer.Source
	index    int
	field    string
	client   *value.Object
	falsum   *value.Object
	profiles *value.Object
}

// NewContext binds a frame to the record's random source.
func NewContext(src randomizer.Source, f Frame) *Context {
	return &Context{
		source:   src,
		index:    f.Index,
		field:    f.Field,
		client:   f.ClientContext,
		falsum:   f.Falsum,
		profiles: f.Profiles,
	}
}

// Index is the position of the record within GenerateMany.
func (c *Context) Index() int { return c.index }

// CurrentField is the name of the profile or field being generated.
func (c *Context) CurrentField() string { return c.field }

// ClientContext returns a copy of the caller-supplied context.
func (c *Context) ClientContext() *value.Object { return c.client.Clone() }

// CurrentFalsum returns a copy of the record built so far.
func (c *Context) CurrentFalsum() *value.Object { return c.falsum.Clone() }

// Profiles returns a copy of the resolved profiles.
func (c *Context) Profiles() *value.Object { return c.profiles.Clone() }

// Source is the record's random source. Nested schemas reuse it.
func (c *Context) Source() randomizer.Source { return c.source }

// Random draws the next number in [0, 1) from the record's source.
func (c *Context) Random() (float64, error) {
	if c.source == nil {
		return 0, fmt.Errorf("no random source bound to field '%s'", c.field)
	}
	return c.source.Float64(randomizer.Context{
		Index:         c.index,
		CurrentField:  c.field,
		ClientContext: c.client,
	})
}

// Lookup resolves path against the context. The first segment is one of
// index, currentField, clientContext, currentFalsum or profiles. The result
// is a deep copy.
func (c *Context) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	root, ok := c.root(path[0])
	if !ok {
		return nil, false
	}
	found, ok := value.Lookup(root, path[1:])
	if !ok {
		return nil, false
	}
	return value.DeepCopy(found), true
}

func (c *Context) root(key string) (any, bool) {
	switch key {
	case "index":
		return float64(c.index), true
	case "currentField":
		return c.field, true
	case "clientContext":
		return nilIfEmpty(c.client)
	case "currentFalsum":
		return nilIfEmpty(c.falsum)
	case "profiles":
		return nilIfEmpty(c.profiles)
	default:
		return nil, false
	}
}

func nilIfEmpty(obj *value.Object) (any, bool) {
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// Child returns a context for a nested schema evaluation that keeps the
// source and index of c.
func (c *Context) Child(f Frame) *Context {
	f.Index = c.index
	return NewContext(c.source, f)
}
