// Package app contains the application logic behind the CLI: it loads a
// schema, compiles it against the ecosystem, generates records and writes
// them out. It is decoupled from flag parsing and process exit codes.
package app
