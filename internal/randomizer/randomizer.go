// Package randomizer defines the random-source contract shared by every
// generator evaluated during one record, together with the built-in sources.
//
// A Source yields numbers in [0, 1). Exactly one Source is instantiated per
// generated record and it is advanced by every generator of that record, so
// the same factory, configuration and inputs always reproduce the same
// record.
package randomizer

import "github.com/specialistvlad/falbricator/internal/value"

// Context is the slice of generation state a source may depend on.
// ClientContext is shared with the generation context and must not be
// modified.
type Context struct {
	Index         int           `json:"index"`
	CurrentField  string        `json:"currentField"`
	ClientContext *value.Object `json:"clientContext"`
}

// Source produces the next random number for the given context.
type Source interface {
	Float64(rc Context) (float64, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(rc Context) (float64, error)

// Float64 implements Source.
func (f SourceFunc) Float64(rc Context) (float64, error) {
	return f(rc)
}
