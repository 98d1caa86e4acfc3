package ecosystem

import (
	"log/slog"

	"github.com/specialistvlad/falbricator/internal/plugin"
)

// Builder assembles an Ecosystem from plugins.
type Builder struct {
	logger  *slog.Logger
	plugins []plugin.Plugin
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger sets the logger used for registration and nested schemas.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Register queues plugins for registration, in order.
func (b *Builder) Register(plugins ...plugin.Plugin) *Builder {
	b.plugins = append(b.plugins, plugins...)
	return b
}

// Build creates the Ecosystem, returning the first registration error.
func (b *Builder) Build() (*Ecosystem, error) {
	e, err := New()
	if err != nil {
		return nil, err
	}
	if b.logger != nil {
		e.logger = b.logger
	}
	for _, p := range b.plugins {
		if err := e.Register(p); err != nil {
			return nil, err
		}
	}
	return e, nil
}
