package value

import (
	"bytes"
	"fmt"
)

// Object is an insertion-ordered string-keyed map.
//
// A nil *Object behaves as an empty, read-only object.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// ObjectOf builds an object from alternating key/value arguments. It panics
// when a key is not a string or the argument count is odd.
func ObjectOf(pairs ...any) *Object {
	if len(pairs)%2 != 0 {
		panic("value: ObjectOf requires an even number of arguments")
	}
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("value: ObjectOf key at position %d is %T, not string", i, pairs[i]))
		}
		o.Set(key, pairs[i+1])
	}
	return o
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (o *Object) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key. Deleting an absent key is a no-op.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for every entry in order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of the object. Cloning nil yields an empty
// object so callers always receive something they may mutate.
func (o *Object) Clone() *Object {
	out := &Object{values: make(map[string]any, o.Len())}
	if o == nil {
		return out
	}
	out.keys = make([]string, len(o.keys))
	copy(out.keys, o.keys)
	for k, v := range o.values {
		out.values[k] = DeepCopy(v)
	}
	return out
}

// Reference implements Referencer.
func (o *Object) Reference(key string) (any, bool) {
	return o.Get(key)
}

// MarshalJSON writes the object with keys in insertion order. Entries holding
// Undefined are omitted.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, k := range o.keys {
		v := o.values[k]
		if IsUndefined(v) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		enc, err := Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("in key '%s': %w", k, err)
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order for nested objects
// too.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return fmt.Errorf("value: expected a JSON object, got %s", TypeName(v))
	}
	*o = *obj
	return nil
}

// String renders the object as compact JSON.
func (o *Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid object: %v>", err)
	}
	return string(b)
}
