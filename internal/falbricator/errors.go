package falbricator

import "fmt"

// GenerationError reports a failure while generating the record at Index.
// Path names the failing step, e.g. `fields.age` or `postprocess.api[1]`.
type GenerationError struct {
	Index int
	Path  string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
