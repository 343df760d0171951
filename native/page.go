package native

import (
	"slices"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
)

// Page is one slide. Its shape list is owned by the page and can be
// changed with Remove and Add.
type Page struct {
	doc        *Document
	index      int
	shapes     []*Shape
	background *gopresentation.Fill
}

func (p *Page) Shapes() []backend.Shape {
	out := make([]backend.Shape, len(p.shapes))
	for i, s := range p.shapes {
		out[i] = s
	}
	return out
}

func (p *Page) Count() int {
	return len(p.shapes)
}

func (p *Page) Remove(s backend.Shape) error {
	shape, ok := s.(*Shape)
	if !ok {
		return backend.ErrShapeNotOnPage
	}
	i := slices.Index(p.shapes, shape)
	if i < 0 {
		return backend.ErrShapeNotOnPage
	}
	p.shapes = slices.Delete(p.shapes, i, i+1)
	if p.doc.selected == shape {
		p.doc.selected = nil
	}
	return nil
}

// Add appends s to the page.
func (p *Page) Add(s backend.Shape) error {
	shape, ok := s.(*Shape)
	if !ok {
		return backend.ErrUnsupported
	}
	if slices.Contains(p.shapes, shape) {
		return nil
	}
	shape.page = p
	p.shapes = append(p.shapes, shape)
	return nil
}

func (p *Page) Property(name string) (any, bool) {
	switch name {
	case "Number":
		return p.index + 1, true
	case "Background":
		if p.background == nil {
			return nil, false
		}
		return fillProps(*p.background), true
	}
	return nil, false
}

// fillProps exposes a GoPPT fill as FillStyle/FillColor/FillTransparence.
type fillProps gopresentation.Fill

func (f fillProps) Property(name string) (any, bool) {
	switch name {
	case "FillStyle":
		return fillStyle(f.Type), true
	case "FillColor":
		if f.Type == gopresentation.FillNone {
			return nil, false
		}
		return packedColor(f.Color), true
	case "FillTransparence":
		return transparence(f.Color), true
	}
	return nil, false
}

func fillStyle(t gopresentation.FillType) backend.Enum {
	switch t {
	case gopresentation.FillSolid:
		return "SOLID"
	case gopresentation.FillGradientLinear, gopresentation.FillGradientPath:
		return "GRADIENT"
	}
	return "NONE"
}

// packedColor converts an ARGB colour to the packed integer form, whose high
// byte is the inverse alpha.
func packedColor(c gopresentation.Color) int64 {
	rgba, err := colorutils.FromHex(c.ARGB)
	if err != nil {
		return 0
	}
	return rgba.Packed()
}

// transparence is the inverse alpha of c in percent.
func transparence(c gopresentation.Color) int {
	return int((255 - int(c.GetAlpha())) * 100 / 255)
}
