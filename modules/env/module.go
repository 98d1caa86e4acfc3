// Package env is a plugin exposing process environment variables to
// schemas. Variables are read once, when the schema is compiled.
package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/plugin"
	"github.com/specialistvlad/falbricator/internal/registry"
)

// Name identifies the env plugin in logs.
const Name = "env"

// Plugin returns the env capability bundle.
func Plugin() plugin.Plugin {
	return plugin.Plugin{
		Name: Name,
		ValueGenerators: []registry.Entry[generator.Factory]{
			{Name: "env", Item: Variable},
		},
	}
}

// Variable produces the value of the environment variable `name`. When it is
// unset, `default` is used if configured; otherwise compilation fails.
func Variable(cfg generator.Config) (generator.Func, error) {
	name, err := cfg.String("name", "")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("can't read an environment variable - 'name' is required")
	}

	v, ok := os.LookupEnv(name)
	if !ok {
		def, hasDefault := cfg.Get("default")
		if !hasDefault {
			return nil, fmt.Errorf("environment variable '%s' is not set", name)
		}
		return generator.Constant(def), nil
	}
	return generator.Constant(v), nil
}
