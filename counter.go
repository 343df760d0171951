package decomposer

import "fmt"

// ShapeCounter is the shape naming state. It is a value: passes receive a
// counter and return the advanced one, so two passes seeded with the same
// counter produce the same names for the same shape sequence.
type ShapeCounter struct {
	next int
}

// NewShapeCounter returns the counter of the first shape of a presentation.
func NewShapeCounter() ShapeCounter {
	return ShapeCounter{next: 1}
}

// CounterAt returns a counter whose next name is Shape_<n>.
func CounterAt(n int) ShapeCounter {
	return ShapeCounter{next: n}
}

// Next returns the name for the current shape and the advanced counter.
func (c ShapeCounter) Next() (string, ShapeCounter) {
	return ShapeName(c.next), ShapeCounter{next: c.next + 1}
}

// Value is the number the next name will carry.
func (c ShapeCounter) Value() int {
	return c.next
}

func MaxCounter(a, b ShapeCounter) ShapeCounter {
	if a.next >= b.next {
		return a
	}
	return b
}

func ShapeName(n int) string {
	return fmt.Sprintf("Shape_%d", n)
}
