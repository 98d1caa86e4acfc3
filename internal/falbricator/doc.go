// Package falbricator executes a compiled schema.
//
// For every record exactly one random source is created from the schema's
// randomizer and shared, in order, by every profile, field and nested schema
// of that record. Profiles are computed first, then fields in declaration
// order, then each postprocessing branch over its own copy of the record.
// The engine is strictly sequential; separate Falbricator calls may run in
// parallel because they never share a random source.
package falbricator
