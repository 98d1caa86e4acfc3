// Package value defines the dynamic value tree shared by schemas, generation
// contexts and generated records.
//
// A value is one of: nil, value.Undefined, bool, a number (float64 when
// decoded, any Go integer or float when produced by a generator), string,
// time.Time, []any, or *Object. Object preserves insertion order, which is
// observable everywhere in the system: fields are generated in declaration
// order and records are serialized in that same order.
//
// Decoding helpers (ParseJSON, DecodeYAML) produce this tree while keeping
// the key order of the source document.
package value
