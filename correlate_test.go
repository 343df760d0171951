package decomposer

import (
	"testing"

	"github.com/brandquad/decomposer/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapeWithID(id string) *fakeShape {
	s := newShape(nil)
	s.id = id
	return s
}

func TestCorrelatePositional(t *testing.T) {
	shapes := []backend.Shape{newShape(nil), newShape(nil)}
	files := fileShapes(2)

	pairs, err := correlate(0, shapes, files)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Same(t, shapes[1], pairs[1].shape)
	assert.Equal(t, files[1], pairs[1].file)

	_, err = correlate(4, shapes, fileShapes(1))
	var ce *CorrelationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 4, ce.Slide)
	assert.Contains(t, ce.Error(), "shape counts differ")
}

func TestCorrelateByID(t *testing.T) {
	shapes := []backend.Shape{shapeWithID("7"), shapeWithID("3")}
	files := []backend.FileShape{{ID: "3", Name: "three"}, {ID: "7", Name: "seven"}, {ID: "9", Name: "hidden"}}

	pairs, err := correlate(0, shapes, files)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "seven", pairs[0].file.Name)
	assert.Equal(t, "three", pairs[1].file.Name)
}

func TestCorrelateByIDErrors(t *testing.T) {
	var ce *CorrelationError

	_, err := correlate(0, []backend.Shape{shapeWithID("1")}, []backend.FileShape{{ID: "2"}})
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Reason, "no parsed shape with id 1")

	_, err = correlate(0, []backend.Shape{shapeWithID("1")}, []backend.FileShape{{ID: "1"}, {ID: "1"}})
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Reason, "duplicate")
}

func TestCorrelateMixedIDsFallsBackToPosition(t *testing.T) {
	shapes := []backend.Shape{shapeWithID("1"), newShape(nil)}
	files := []backend.FileShape{{ID: "2"}, {ID: "1"}}

	pairs, err := correlate(0, shapes, files)
	require.NoError(t, err)
	assert.Equal(t, "2", pairs[0].file.ID)
}
