package decomposer

import (
	"testing"

	"github.com/brandquad/decomposer/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCounter(t *testing.T) {
	c := NewShapeCounter()
	assert.Equal(t, 1, c.Value())

	name, next := c.Next()
	assert.Equal(t, "Shape_1", name)
	assert.Equal(t, 2, next.Value())
	// the original token is unchanged
	assert.Equal(t, 1, c.Value())

	name, _ = CounterAt(42).Next()
	assert.Equal(t, "Shape_42", name)
}

func TestMaxCounter(t *testing.T) {
	a, b := CounterAt(3), CounterAt(5)
	assert.Equal(t, b, MaxCounter(a, b))
	assert.Equal(t, b, MaxCounter(b, a))
	assert.Equal(t, a, MaxCounter(a, a))
}

func TestPassesAgree(t *testing.T) {
	doc, model := fixture([]backend.Shape{
		newShape(props{"Name": "a"}),
		newShape(props{"Name": "b"}),
	})
	p, err := newTestDecomposer(doc, model).Open("deck.pptx")
	require.NoError(t, err)
	defer p.Close()

	pairs, err := correlate(0, p.pages[0].Shapes(), model.slides[0])
	assert.NoError(t, err)

	start := CounterAt(10)
	structure, a := p.structurePass(0, pairs, start)
	images, b := p.imagePass(0, pairs, start)
	assert.Equal(t, a, b)
	assert.Equal(t, 12, MaxCounter(a, b).Value())
	require.Len(t, structure, 2)
	for _, s := range structure {
		assert.Contains(t, images, s.Name)
	}
}
