// Package config defines the format-agnostic configuration handed to every
// capability factory (randomizers, value generators, pipes).
//
// Configuration arrives as a decoded value tree, either from the object form
// of a field definition or from an inline `type?key=value` query. Values wraps
// that tree with typed accessors that produce consistent error messages, so
// factories validate their settings once, at compile time.
package config
