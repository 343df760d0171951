package decomposer

import "github.com/brandquad/decomposer/colorutils"

const (
	UnitPixel       = "px"
	UnitCentiDegree = "0.01degree"
	UnitPercent     = "%"
)

// Measure is a value with its unit.
type Measure struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func px(v float64) Measure { return Measure{Value: v, Unit: UnitPixel} }

func percent(v float64) Measure { return Measure{Value: v, Unit: UnitPercent} }

type FrameSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Box struct {
	Left   Measure `json:"left"`
	Right  Measure `json:"right"`
	Top    Measure `json:"top"`
	Bottom Measure `json:"bottom"`
}

// Slide is the decomposition of one slide. Shapes maps shape names to PNG
// bytes.
type Slide struct {
	Index           int               `json:"index"`
	Shapes          map[string][]byte `json:"shapes"`
	Structure       []*Shape          `json:"structure"`
	Thumbnail       []byte            `json:"thumbnail"`
	Background      []byte            `json:"background"`
	BackgroundColor colorutils.RGBA   `json:"background_color"`
	FrameSize       FrameSize         `json:"frame_size"`
}

type Shape struct {
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Width              Measure    `json:"width"`
	Height             Measure    `json:"height"`
	PositionX          Measure    `json:"position_x"`
	PositionY          Measure    `json:"position_y"`
	Rotation           Measure    `json:"rotation"`
	ZOrder             *int       `json:"z_order"`
	HasText            bool       `json:"has_text"`
	VerticalAlignment  string     `json:"vertical_alignment"`
	TextAutoGrowHeight bool       `json:"text_auto_grow_height"`
	TextAutoGrowWidth  bool       `json:"text_auto_grow_width"`
	TextWordWrap       bool       `json:"text_word_wrap"`
	TextFitToSize      bool       `json:"text_fit_to_size"`
	Padding            Box        `json:"padding"`
	TextFrame          *TextFrame `json:"text_frame,omitempty"`
	Fill               Fill       `json:"fill"`
	Line               Line       `json:"line"`
}

type TextFrame struct {
	Paragraphs        []*Paragraph `json:"paragraphs"`
	VerticalAlignment string       `json:"vertical_alignment"`
}

type Paragraph struct {
	Text            string           `json:"text"`
	Alignment       string           `json:"alignment"`
	Level           *int             `json:"level"`
	BulletInfo      BulletInfo       `json:"bullet_info"`
	Runs            []*Run           `json:"runs"`
	PositionX       Measure          `json:"position_x"`
	PositionY       Measure          `json:"position_y"`
	Width           Measure          `json:"width"`
	Margin          Box              `json:"margin"`
	Padding         Box              `json:"padding"`
	Autofit         string           `json:"autofit"`
	BackgroundColor *colorutils.RGBA `json:"background_color"`
	LineHeight      Measure          `json:"line_height"`
	LineSpacing     *LineSpacing     `json:"line_spacing,omitempty"`
	Height          Measure          `json:"height"`
}

// LineSpacing reports the paragraph line spacing rule. Height is a
// percentage for proportional spacing (mode 0) and pixels otherwise.
type LineSpacing struct {
	Mode   int     `json:"mode"`
	Height Measure `json:"height"`
}

type Run struct {
	Text           string           `json:"text"`
	FontName       string           `json:"font_name"`
	FontSize       float64          `json:"font_size"`
	Bold           bool             `json:"bold"`
	Italic         bool             `json:"italic"`
	Underline      bool             `json:"underline"`
	Color          *colorutils.RGBA `json:"color"`
	HighlightColor *colorutils.RGBA `json:"highlight_color"`
	PositionX      Measure          `json:"position_x"`
	PositionY      Measure          `json:"position_y"`
	Width          Measure          `json:"width"`
	Height         Measure          `json:"height"`
}

type BulletInfo struct {
	Visible           bool             `json:"visible"`
	Type              int              `json:"type"`
	Char              *string          `json:"char"`
	ImageURL          *string          `json:"image_url"`
	BulletSizePercent *float64         `json:"bullet_size_percent"`
	BulletColor       *colorutils.RGBA `json:"bullet_color"`
	Color             *colorutils.RGBA `json:"color"`
	FontName          *string          `json:"font_name"`
	FontSize          Measure          `json:"font_size"`
	Bold              bool             `json:"bold"`
	Italic            bool             `json:"italic"`
	Underline         bool             `json:"underline"`
	Orientation       float64          `json:"orientation"`
	Kerning           bool             `json:"kerning"`
	Distance          Measure          `json:"distance"`
	StartValue        int              `json:"start_value"`
	CurrentValue      int              `json:"current_value"`
	Indent            Measure          `json:"indent"`
	Prefix            string           `json:"prefix"`
	Suffix            string           `json:"suffix"`
	Level             *int             `json:"level"`
	Style             string           `json:"style"`
	TypeDescription   string           `json:"type_description"`
}

type Fill struct {
	Type         *string          `json:"type"`
	Color        *colorutils.RGBA `json:"color"`
	Transparency Measure          `json:"transparency"`
}

type Line struct {
	Color        *colorutils.RGBA `json:"color"`
	Width        Measure          `json:"width"`
	Style        *string          `json:"style"`
	Transparency Measure          `json:"transparency"`
}
