// Package registry provides the named, insertion-ordered store used for
// every capability kind of an ecosystem (randomizers, value generators,
// charsets, preconfigurations, pipes).
//
// A Registry is populated during setup and read during compilation. Names are
// unique and non-empty; registering a taken name is an error rather than an
// overwrite. Insertion order is kept because the first registered item is the
// default for some capability kinds (the default randomizer).
//
// Registries are not safe for concurrent mutation.
package registry
