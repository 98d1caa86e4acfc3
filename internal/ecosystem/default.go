package ecosystem

import "github.com/specialistvlad/falbricator/modules/core"

// Default returns an ecosystem with the core plugin registered. Its default
// randomizer is `basic`.
func Default() *Ecosystem {
	e, err := New(core.Plugin())
	if err != nil {
		// The core plugin is static; a collision is a programming error.
		panic(err)
	}
	return e
}
