package native

import (
	"math"
	"slices"
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/units"
)

type (
	filled interface {
		GetFill() *gopresentation.Fill
	}
	bordered interface {
		GetBorder() *gopresentation.Border
	}
	rotatable interface {
		SetRotation(int) *gopresentation.BaseShape
	}
	withParagraphs interface {
		GetParagraphs() []*gopresentation.Paragraph
	}
)

// Shape exposes a GoPPT shape through automation style properties: geometry
// in hundredths of a millimetre, rotation in hundredths of a degree and
// colours in packed form.
type Shape struct {
	src  gopresentation.Shape
	page *Page
}

// Source returns the wrapped GoPPT shape.
func (s *Shape) Source() gopresentation.Shape {
	return s.src
}

// ID is empty: GoPPT does not expose shape identifiers.
func (s *Shape) ID() string { return "" }

func (s *Shape) SetProperty(name string, value any) error {
	switch name {
	case "RotateAngle":
		r, ok := s.src.(rotatable)
		if !ok {
			return backend.ErrUnsupported
		}
		angle, ok := backend.ToNumber(value)
		if !ok {
			return backend.ErrUnsupported
		}
		r.SetRotation(clockwiseDegrees(angle))
		return nil
	}
	return backend.ErrUnsupported
}

func (s *Shape) Property(name string) (any, bool) {
	switch name {
	case "ShapeType":
		return shapeType(s.src), true
	case "Name":
		return s.src.GetName(), true
	case "Position":
		return backend.Point{
			X: units.EMUToHundredthMM(s.src.GetOffsetX()),
			Y: units.EMUToHundredthMM(s.src.GetOffsetY()),
		}, true
	case "Size":
		return backend.Size{
			Width:  units.EMUToHundredthMM(s.src.GetWidth()),
			Height: units.EMUToHundredthMM(s.src.GetHeight()),
		}, true
	case "RotateAngle":
		return rotateAngle(s.src.GetRotation()), true
	case "ZOrder":
		if s.page == nil {
			return nil, false
		}
		if i := slices.Index(s.page.shapes, s); i >= 0 {
			return i, true
		}
		return nil, false
	}

	if v, ok := s.textProperty(name); ok {
		return v, true
	}
	if v, ok := s.lineProperty(name); ok {
		return v, true
	}
	if f, ok := s.src.(filled); ok && s.src.GetType() != gopresentation.ShapeTypeLine {
		if v, ok := fillProps(*f.GetFill()).Property(name); ok {
			return v, true
		}
	}
	return nil, false
}

func (s *Shape) richText() *gopresentation.RichTextShape {
	switch t := s.src.(type) {
	case *gopresentation.RichTextShape:
		return t
	case *gopresentation.PlaceholderShape:
		return &t.RichTextShape
	}
	return nil
}

func (s *Shape) textProperty(name string) (any, bool) {
	rt := s.richText()
	if rt == nil {
		return nil, false
	}
	switch name {
	case "TextVerticalAdjust":
		switch rt.GetTextAnchor() {
		case gopresentation.TextAnchorMiddle:
			return backend.Enum("CENTER"), true
		case gopresentation.TextAnchorBottom:
			return backend.Enum("BOTTOM"), true
		}
		return backend.Enum("TOP"), true
	case "TextWordWrap":
		return rt.GetWordWrap(), true
	case "TextAutoGrowHeight":
		return rt.GetAutoFit() == gopresentation.AutoFitShape, true
	case "TextAutoGrowWidth":
		return false, true
	case "TextFitToSize":
		if rt.GetAutoFit() == gopresentation.AutoFitNormal {
			return backend.Enum("AUTOFIT"), true
		}
		return backend.Enum("NONE"), true
	}
	return nil, false
}

func (s *Shape) lineProperty(name string) (any, bool) {
	if l, ok := s.src.(*gopresentation.LineShape); ok {
		switch name {
		case "LineStyle":
			return lineStyle(l.GetLineStyle()), true
		case "LineWidth":
			return units.EMUToHundredthMM(int64(l.GetLineWidthEMU())), true
		case "LineColor":
			return packedColor(l.GetLineColor()), true
		case "LineTransparence":
			return transparence(l.GetLineColor()), true
		case "FillStyle":
			return backend.Enum("NONE"), true
		}
		return nil, false
	}

	b, ok := s.src.(bordered)
	if !ok {
		return nil, false
	}
	border := b.GetBorder()
	switch name {
	case "LineStyle":
		return lineStyle(border.Style), true
	case "LineWidth":
		return units.EMUToHundredthMM(int64(border.Width)), true
	case "LineColor":
		if border.Style == gopresentation.BorderNone {
			return nil, false
		}
		return packedColor(border.Color), true
	case "LineTransparence":
		return transparence(border.Color), true
	}
	return nil, false
}

// Paragraphs makes Shape a backend.TextShape for every GoPPT shape with text.
func (s *Shape) Paragraphs() ([]backend.Paragraph, error) {
	p, ok := s.src.(withParagraphs)
	if !ok {
		return nil, backend.ErrUnsupported
	}
	src := p.GetParagraphs()
	out := make([]backend.Paragraph, len(src))
	for i, para := range src {
		out[i] = &paragraph{src: para}
	}
	return out, nil
}

// rotateAngle converts a clockwise rotation in whole degrees to a
// counter-clockwise angle in hundredths of a degree within [0, 36000).
func rotateAngle(clockwise int) int {
	return ((36000-clockwise*100)%36000 + 36000) % 36000
}

// clockwiseDegrees is the inverse of rotateAngle.
func clockwiseDegrees(angle float64) int {
	deg := int(math.Round(angle / 100))
	return ((360-deg)%360 + 360) % 360
}

func lineStyle(s gopresentation.BorderStyle) backend.Enum {
	switch s {
	case gopresentation.BorderSolid:
		return "SOLID"
	case gopresentation.BorderDash, gopresentation.BorderDot:
		return "DASH"
	}
	return "NONE"
}

func shapeType(s gopresentation.Shape) string {
	switch t := s.(type) {
	case *gopresentation.PlaceholderShape:
		switch t.GetPlaceholderType() {
		case gopresentation.PlaceholderTitle, gopresentation.PlaceholderCtrTitle:
			return backend.ShapeTypeTitle
		case gopresentation.PlaceholderBody:
			return backend.ShapeTypeOutline
		case gopresentation.PlaceholderSubTitle:
			return backend.ShapeTypeSubtitle
		}
		return backend.ShapeTypePlaceholder
	case *gopresentation.LineShape:
		if strings.Contains(strings.ToLower(t.GetConnectorType()), "connector") {
			return backend.ShapeTypeConnector
		}
		return backend.ShapeTypeLine
	}

	switch s.GetType() {
	case gopresentation.ShapeTypeRichText:
		return backend.ShapeTypeText
	case gopresentation.ShapeTypeDrawing:
		return backend.ShapeTypeGraphic
	case gopresentation.ShapeTypeTable:
		return backend.ShapeTypeTable
	case gopresentation.ShapeTypeAutoShape:
		return backend.ShapeTypeCustom
	case gopresentation.ShapeTypeChart:
		return backend.ShapeTypeOLE
	case gopresentation.ShapeTypeGroup:
		return backend.ShapeTypeGroup
	}
	return backend.ShapeTypeCustom
}
