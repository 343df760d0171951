package backend

// Enum is the symbolic name of an enumerated property value, e.g. "TOP".
type Enum string

func (e Enum) String() string { return string(e) }

// Point is a position in hundredths of a millimetre.
type Point struct {
	X int64
	Y int64
}

// Size is an extent in hundredths of a millimetre.
type Size struct {
	Width  int64
	Height int64
}

// ColorObject is the structured colour form: channels plus a transparency
// percentage in 0..100.
type ColorObject struct {
	Red          uint8
	Green        uint8
	Blue         uint8
	Transparency float64
}

// FontDescriptor describes the font of a bullet glyph. Height is in points.
type FontDescriptor struct {
	Name        string
	Height      float64
	Weight      float64
	Underline   int
	Orientation float64
	Kerning     bool
}

type PropertyValue struct {
	Name  string
	Value any
}

// NumberingRules holds the per-level numbering rule of a paragraph.
type NumberingRules interface {
	Count() int
	Level(index int) ([]PropertyValue, error)
}

// LineSpacing mirrors the paragraph line spacing property: Mode 0 is
// proportional (Height in percent), 1 minimum, 2 leading, 3 fixed (Height in
// hundredths of a millimetre).
type LineSpacing struct {
	Mode   int
	Height int
}

// Shape type names reported through the ShapeType property.
const (
	ShapeTypeText        = "com.sun.star.drawing.TextShape"
	ShapeTypeCustom      = "com.sun.star.drawing.CustomShape"
	ShapeTypeConnector   = "com.sun.star.drawing.ConnectorShape"
	ShapeTypeLine        = "com.sun.star.drawing.LineShape"
	ShapeTypeGraphic     = "com.sun.star.drawing.GraphicObjectShape"
	ShapeTypeGroup       = "com.sun.star.drawing.GroupShape"
	ShapeTypeTable       = "com.sun.star.drawing.TableShape"
	ShapeTypeOLE         = "com.sun.star.drawing.OLE2Shape"
	ShapeTypeTitle       = "com.sun.star.presentation.TitleTextShape"
	ShapeTypeOutline     = "com.sun.star.presentation.OutlinerShape"
	ShapeTypeSubtitle    = "com.sun.star.presentation.SubtitleShape"
	ShapeTypePlaceholder = "com.sun.star.presentation.PlaceholderShape"
)
