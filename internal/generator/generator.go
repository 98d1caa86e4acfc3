// Package generator holds the value-generator contract used by the schema
// compiler and every capability plugin.
//
// A generator is a closure compiled once per field definition and invoked
// once per generated record with a fresh *Context. Generators must draw all
// randomness from the context's source so that a record is reproducible.
package generator

import (
	"github.com/specialistvlad/falbricator/internal/config"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Func produces one field value for the record described by ctx.
type Func func(ctx *Context) (any, error)

// Factory compiles a generator from its configuration. It runs at compile
// time only.
type Factory func(cfg Config) (Func, error)

// Config is the configuration handed to a Factory. Ecosystem is the
// capability back-reference and is never nil when called by the compiler.
type Config struct {
	config.Values
	Ecosystem Capabilities
}

// Capabilities is the part of the ecosystem a generator factory may use at
// compile time.
type Capabilities interface {
	// CompileField compiles a nested field definition.
	CompileField(def any) (Func, error)
	// CompileNested compiles a nested schema document.
	CompileNested(input any) (Nested, error)
	// Charset returns the registered charset called name.
	Charset(name string) ([]string, error)
	HasCharset(name string) bool
}

// Nested is a compiled nested schema. It produces a container that shares
// the parent's random source and index.
type Nested interface {
	GenerateNested(parent *Context) (value.Referencer, error)
}
