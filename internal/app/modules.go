package app

import (
	"github.com/specialistvlad/falbricator/internal/plugin"
	"github.com/specialistvlad/falbricator/modules/core"
	"github.com/specialistvlad/falbricator/modules/env"
)

// corePlugins are the plugins compiled into the falbricator binary.
var corePlugins = []plugin.Plugin{
	core.Plugin(),
	env.Plugin(),
}
