package decomposer

import (
	"errors"
	"fmt"
)

var (
	ErrOpenDocument         = errors.New("failed to open document")
	ErrSlideIndexOutOfRange = errors.New("slide index out of range")
	ErrSlidesConsumed       = errors.New("slide sequence already consumed")
)

// CorrelationError is returned when the shapes of the rendering backend
// cannot be matched with the shapes of the parsed file.
type CorrelationError struct {
	Slide     int
	Rendering int
	Parsed    int
	Reason    string
}

func (e *CorrelationError) Error() string {
	return fmt.Sprintf("slide %d: cannot correlate %d rendered shapes with %d parsed shapes: %s",
		e.Slide, e.Rendering, e.Parsed, e.Reason)
}

// ShapeError describes a failure confined to one shape.
type ShapeError struct {
	Slide     int
	Shape     string
	Component string
	Err       error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("slide %d, %s [%s]: %v", e.Slide, e.Shape, e.Component, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func newShapeError(slide int, shape, component string, err error) *ShapeError {
	return &ShapeError{Slide: slide, Shape: shape, Component: component, Err: err}
}

// recovered turns a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

// ErrShapeRestore marks a failure to put shapes back after background
// isolation. The page is left in an unknown state, so it is always fatal.
var ErrShapeRestore = errors.New("failed to restore slide shapes")
