package voronoi

import "github.com/pkg/errors"

// Precondition violations deep inside the pipeline panic instead of returning
// errors; there is nothing a caller could do halfway through a stage anyway.
// The public API recovers these panics and converts them to errors.

// PipelineError marks panics raised by fatalf, as opposed to runtime errors or
// other bugs.
type PipelineError struct {
	error
}

// Panic with a PipelineError.
func fatalf(format string, args ...interface{}) {
	panic(PipelineError{errors.Errorf(format, args...)})
}

// HandlePanicRecover converts a recovered PipelineError into an error. Any other
// panic value is re-raised, since it means a real bug.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if pipelineError, ok := r.(PipelineError); ok {
			return pipelineError.error
		}
		panic(r)
	}
	return nil
}
