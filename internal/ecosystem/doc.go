// Package ecosystem is the composition root of capabilities: one registry per
// capability kind, filled by plugins during setup and read by the schema
// compiler.
//
// An Ecosystem is built once (directly or through Builder), then used to
// compile schemas. Compiled schemas resolve every capability at compile time,
// so mutating the ecosystem afterwards does not affect them. Registries are
// not synchronized; mutate them only during setup.
package ecosystem
