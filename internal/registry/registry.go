package registry

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEmptyType is returned by New for an empty registry type tag.
	ErrEmptyType = errors.New("registry type must be a non-empty string")
	// ErrEmptyName is matched by errors for empty item names.
	ErrEmptyName = errors.New("empty name")
	// ErrEmptyItem is matched by errors for nil or empty items.
	ErrEmptyItem = errors.New("empty item")
	// ErrDuplicate is matched by errors for names that are already taken.
	ErrDuplicate = errors.New("duplicate name")
	// ErrNotFound is matched by errors for lookups of unknown names.
	ErrNotFound = errors.New("not found")
)

// Error describes a failed registry operation. Use errors.Is with the
// package sentinels to classify it.
type Error struct {
	Registry string
	Name     string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Err {
	case ErrNotFound:
		return fmt.Sprintf("No item '%s' found in registry %s", e.Name, e.Registry)
	case ErrDuplicate:
		return fmt.Sprintf("Can't register '%s' into %s registry - already exists", e.Name, e.Registry)
	case ErrEmptyName:
		return fmt.Sprintf("Item's name for %s must be a non-empty string ('%s')", e.Registry, e.Name)
	case ErrEmptyItem:
		return fmt.Sprintf("Given item for %s must not be empty value", e.Registry)
	default:
		return fmt.Sprintf("registry %s, item '%s': %v", e.Registry, e.Name, e.Err)
	}
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Entry is a single named item.
type Entry[T any] struct {
	Name string
	Item T
}

// Registry is an insertion-ordered, name-unique store of items of type T.
type Registry[T any] struct {
	kind  string
	names []string
	items map[string]T
}

// New creates an empty registry identified by kind (used in error messages).
func New[T any](kind string) (*Registry[T], error) {
	if kind == "" {
		return nil, ErrEmptyType
	}
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}, nil
}

// MustNew is like New but panics on an empty kind.
func MustNew[T any](kind string) *Registry[T] {
	r, err := New[T](kind)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the registry type tag.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register stores item under name.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return &Error{Registry: r.kind, Name: name, Err: ErrEmptyName}
	}
	if r.Has(name) {
		return &Error{Registry: r.kind, Name: name, Err: ErrDuplicate}
	}
	if isEmpty(item) {
		return &Error{Registry: r.kind, Name: name, Err: ErrEmptyItem}
	}
	r.names = append(r.names, name)
	r.items[name] = item
	return nil
}

// RegisterAll registers every entry in order and stops at the first error.
// Entries registered before the failing one stay registered.
func (r *Registry[T]) RegisterAll(entries []Entry[T]) error {
	for _, e := range entries {
		if err := r.Register(e.Name, e.Item); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the item registered under name.
func (r *Registry[T]) Get(name string) (T, error) {
	item, ok := r.items[name]
	if !ok {
		var zero T
		return zero, &Error{Registry: r.kind, Name: name, Err: ErrNotFound}
	}
	return item, nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// Remove deletes name. Removing an unknown name is a no-op.
func (r *Registry[T]) Remove(name string) {
	if !r.Has(name) {
		return
	}
	delete(r.items, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// First returns the earliest registered item that is still present.
func (r *Registry[T]) First() (Entry[T], bool) {
	if len(r.names) == 0 {
		return Entry[T]{}, false
	}
	name := r.names[0]
	return Entry[T]{Name: name, Item: r.items[name]}, true
}

// Names returns the registered names in insertion order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	return len(r.names)
}

// isEmpty treats nil and zero-length values as empty.
func isEmpty(item any) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Map, reflect.Slice:
		return v.IsNil() || v.Len() == 0
	case reflect.String:
		return v.Len() == 0
	}
	return false
}
