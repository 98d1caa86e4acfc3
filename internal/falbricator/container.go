package falbricator

import (
	"github.com/specialistvlad/falbricator/internal/schema"
	"github.com/specialistvlad/falbricator/internal/value"
)

// ContainerContext describes the inputs a record was generated from.
type ContainerContext struct {
	Index         int           `json:"index"`
	ClientContext *value.Object `json:"clientContext,omitempty"`
	Profiles      *value.Object `json:"profiles"`
}

// Container is the result envelope of one generated record. Schema is shared
// between all containers of a Falbricator and must not be modified.
type Container struct {
	Context       ContainerContext `json:"context"`
	Schema        *schema.Input    `json:"schema"`
	Original      *value.Object    `json:"original"`
	Postprocessed *value.Object    `json:"postprocessed"`
}

// Reference implements value.Referencer so a container can be navigated by
// path, e.g. `original.name` or `postprocessed.api`.
func (c *Container) Reference(key string) (any, bool) {
	switch key {
	case "context":
		ctx := value.ObjectOf("index", float64(c.Context.Index))
		if c.Context.ClientContext != nil {
			ctx.Set("clientContext", c.Context.ClientContext)
		}
		ctx.Set("profiles", c.Context.Profiles)
		return ctx, true
	case "schema":
		return c.Schema.ToValue(), true
	case "original":
		return c.Original, true
	case "postprocessed":
		return c.Postprocessed, true
	default:
		return nil, false
	}
}
