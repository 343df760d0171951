package decomposer

import (
	"log"
	"strings"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
	"github.com/brandquad/decomposer/units"
)

const (
	AutofitNone    = "Do Not Autofit"
	AutofitShrink  = "Shrink Text on Overflow"
	AutofitResize  = "Resize Shape to Fit Text"
	AutofitUnknown = "Unknown"
)

// minConnectorExtent is the pixel size given to a degenerate connector side.
const minConnectorExtent = 2

var verticalAlignments = map[string]string{
	"TOP":    "top",
	"CENTER": "center",
	"BOTTOM": "bottom",
}

// shapeExtractor reads shape attributes. Fill colours pass through fills,
// which carries the placeholder policy unless it is disabled.
type shapeExtractor struct {
	fills colorutils.Resolver
}

func newShapeExtractor(c Config) shapeExtractor {
	if c.KeepPlaceholderFill {
		return shapeExtractor{fills: colorutils.NewResolver()}
	}
	return shapeExtractor{fills: colorutils.NewResolver(colorutils.PlaceholderFillPolicy)}
}

// extract builds the record of one shape. A panic inside a backend accessor
// degrades the record to its name and type instead of failing the slide.
func (e shapeExtractor) extract(slide int, shape backend.Shape, origin backend.FileShape, name string) (info *Shape) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[!] %v", newShapeError(slide, name, "attributes", recovered(r)))
			shapeType, _ := backend.String(shape, "ShapeType")
			info = &Shape{
				Name:              name,
				Type:              shapeType,
				Rotation:          Measure{Unit: UnitCentiDegree},
				VerticalAlignment: "unknown",
			}
		}
	}()

	shapeType, _ := backend.String(shape, "ShapeType")
	position, _ := backend.PointOf(shape, "Position")
	size, _ := backend.SizeOf(shape, "Size")

	width := units.LengthToPixels(float64(size.Width))
	height := units.LengthToPixels(float64(size.Height))
	if shapeType == backend.ShapeTypeConnector {
		if width == 0 {
			width = minConnectorExtent
		}
		if height == 0 {
			height = minConnectorExtent
		}
	}

	info = &Shape{
		Name:               name,
		Type:               shapeType,
		Width:              px(width),
		Height:             px(height),
		PositionX:          px(units.LengthToPixels(float64(position.X))),
		PositionY:          px(units.LengthToPixels(float64(position.Y))),
		Rotation:           Measure{Value: float64(int(backend.NumberOr(shape, "RotateAngle", 0))), Unit: UnitCentiDegree},
		VerticalAlignment:  verticalAlignment(shape),
		TextAutoGrowHeight: backend.Bool(shape, "TextAutoGrowHeight"),
		TextAutoGrowWidth:  backend.Bool(shape, "TextAutoGrowWidth"),
		TextWordWrap:       backend.Bool(shape, "TextWordWrap"),
		TextFitToSize:      backend.Bool(shape, "TextFitToSize"),
		Padding:            boxOf(shape, "TextLeftDistance", "TextRightDistance", "TextUpperDistance", "TextLowerDistance"),
	}
	if z, ok := backend.Number(shape, "ZOrder"); ok {
		zo := int(z)
		info.ZOrder = &zo
	}

	if ts, ok := shape.(backend.TextShape); ok {
		tf, err := extractTextFrame(ts, origin, info, Autofit(shape))
		if err != nil {
			log.Printf("[!] %v", newShapeError(slide, name, "text", err))
		} else {
			info.TextFrame = tf
			info.HasText = hasText(tf)
		}
	}

	info.Fill = e.fill(shape)
	info.Line = line(shape)
	return info
}

func verticalAlignment(ps backend.PropertySet) string {
	name, ok := backend.EnumName(ps, "TextVerticalAdjust")
	if !ok {
		return "unknown"
	}
	if a, ok := verticalAlignments[strings.ToUpper(name)]; ok {
		return a
	}
	return "unknown"
}

// Autofit derives the autofit mode from TextFitToSize and the two auto-grow
// flags. The flags must be real booleans to count.
func Autofit(ps backend.PropertySet) string {
	fit, _ := backend.EnumName(ps, "TextFitToSize")
	growHeight, hasHeight := backend.OptionalBool(ps, "TextAutoGrowHeight")
	growWidth, hasWidth := backend.OptionalBool(ps, "TextAutoGrowWidth")

	switch {
	case fit == "NONE" && hasHeight && hasWidth && !growHeight && !growWidth:
		return AutofitNone
	case fit == "NONE" && (growHeight || growWidth):
		return AutofitShrink
	case fit == "ALLLINES" || fit == "FIRSTLINE":
		return AutofitResize
	}
	return AutofitUnknown
}

func (e shapeExtractor) fill(ps backend.PropertySet) Fill {
	f := Fill{
		Color:        e.fills.Resolve(propertyOrNil(ps, "FillColor")),
		Transparency: percent(backend.NumberOr(ps, "FillTransparence", 0)),
	}
	if style, ok := backend.EnumName(ps, "FillStyle"); ok {
		f.Type = &style
	}
	return f
}

func line(ps backend.PropertySet) Line {
	l := Line{
		Color:        colorutils.Resolve(propertyOrNil(ps, "LineColor")),
		Width:        px(units.LengthToPixels(backend.NumberOr(ps, "LineWidth", 0))),
		Transparency: percent(backend.NumberOr(ps, "LineTransparence", 0)),
	}
	if style, ok := backend.EnumName(ps, "LineStyle"); ok {
		l.Style = &style
	}
	return l
}
