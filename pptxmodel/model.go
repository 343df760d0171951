// Package pptxmodel reads the geometry of a .pptx file: page size and the
// top level shapes of every slide in EMU.
package pptxmodel

import (
	"fmt"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/backend"
)

// Opener opens parsed-file models with GoPPT.
type Opener struct{}

func (Opener) OpenFile(path string) (backend.FileModel, error) {
	return Open(path)
}

type Model struct {
	pres   *gopresentation.Presentation
	width  int64
	height int64
}

func Open(path string) (*Model, error) {
	pres, err := gopresentation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return FromPresentation(pres), nil
}

func FromPresentation(pres *gopresentation.Presentation) *Model {
	m := &Model{pres: pres}
	if l := pres.GetLayout(); l != nil {
		m.width, m.height = l.CX, l.CY
	}
	return m
}

func (m *Model) PageSize() (int64, int64) {
	return m.width, m.height
}

func (m *Model) SlideCount() int {
	return len(m.pres.Slides())
}

// SlideShapes lists the top level shapes of slide index in document order.
// GoPPT does not keep shape identifiers, so ID is empty and the caller
// falls back to positional matching.
func (m *Model) SlideShapes(index int) ([]backend.FileShape, error) {
	slides := m.pres.Slides()
	if index < 0 || index >= len(slides) {
		return nil, fmt.Errorf("slide %d out of range (0-%d)", index, len(slides)-1)
	}
	shapes := slides[index].GetShapes()
	out := make([]backend.FileShape, len(shapes))
	for i, s := range shapes {
		out[i] = backend.FileShape{
			Name:   s.GetName(),
			Left:   s.GetOffsetX(),
			Top:    s.GetOffsetY(),
			Width:  s.GetWidth(),
			Height: s.GetHeight(),
		}
	}
	return out, nil
}

func (m *Model) Close() error {
	return m.pres.Close()
}
