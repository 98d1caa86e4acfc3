// Package plugin describes a bundle of capabilities merged into an
// ecosystem in one call.
package plugin

import (
	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/pipe"
	"github.com/specialistvlad/falbricator/internal/randomizer"
	"github.com/specialistvlad/falbricator/internal/registry"
)

// Plugin lists capabilities in registration order. Every list is optional.
type Plugin struct {
	Name              string
	Randomizers       []registry.Entry[randomizer.Factory]
	ValueGenerators   []registry.Entry[generator.Factory]
	Charsets          []registry.Entry[[]string]
	Preconfigurations []registry.Entry[any]
	Pipes             []registry.Entry[pipe.Factory]
}
