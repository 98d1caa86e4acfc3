// Package pipe defines postprocessing steps: pure transformations applied to
// a deep copy of a finished record.
package pipe

import (
	"fmt"

	"github.com/specialistvlad/falbricator/internal/config"
)

// Func transforms one value into another.
type Func func(in any) (any, error)

// Factory compiles a pipe from its configuration at compile time.
type Factory func(cfg config.Values) (Func, error)

// Step is a named pipe within a pipeline.
type Step struct {
	Name string
	Pipe Func
}

// StepError reports the pipeline step that failed.
type StepError struct {
	Index int
	Name  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Compose chains steps left to right. The first failing step aborts the
// pipeline with a *StepError.
func Compose(steps ...Step) Func {
	return func(in any) (any, error) {
		out := in
		for i, s := range steps {
			var err error
			out, err = s.Pipe(out)
			if err != nil {
				return nil, &StepError{Index: i, Name: s.Name, Err: err}
			}
		}
		return out, nil
	}
}
