package decomposer

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
	"github.com/brandquad/decomposer/units"
)

const (
	// lineSpacingFactor is the height of a text line relative to its font size.
	lineSpacingFactor = 1.2
	// glyphWidthFactor estimates the advance of one character relative to the
	// font size.
	glyphWidthFactor = 0.6
)

var paragraphAlignments = map[int]string{
	0: "left",
	1: "right",
	2: "justify",
	3: "center",
	4: "distributed",
}

var paragraphAdjustNames = map[string]string{
	"LEFT":    "left",
	"RIGHT":   "right",
	"BLOCK":   "justify",
	"CENTER":  "center",
	"STRETCH": "distributed",
}

// extractTextFrame walks the paragraphs of shape. The frame origin and width
// come from the parsed-file geometry in origin. Paragraph padding and autofit
// are inherited from the owning shape record.
func extractTextFrame(shape backend.TextShape, origin backend.FileShape, owner *Shape, autofit string) (*TextFrame, error) {
	paragraphs, err := shape.Paragraphs()
	if err != nil {
		return nil, err
	}

	frameX := units.EMUToPixels(float64(origin.Left))
	frameY := units.EMUToPixels(float64(origin.Top))
	width := units.EMUToPixels(float64(origin.Width))

	tf := &TextFrame{
		Paragraphs:        make([]*Paragraph, 0, len(paragraphs)),
		VerticalAlignment: owner.VerticalAlignment,
	}

	tracker := NewBulletTracker()
	currentY := 0.0
	for _, p := range paragraphs {
		para := extractParagraph(p, tracker, frameX, frameY+currentY, width)
		para.Padding = owner.Padding
		para.Autofit = autofit
		tf.Paragraphs = append(tf.Paragraphs, para)
		currentY += para.Height.Value
	}
	return tf, nil
}

func extractParagraph(p backend.Paragraph, tracker *BulletTracker, baseX, baseY, width float64) *Paragraph {
	para := &Paragraph{
		Text:            strings.TrimSpace(decodeText(p.String())),
		Alignment:       paragraphAlignment(p),
		BulletInfo:      tracker.Extract(p),
		Runs:            make([]*Run, 0),
		PositionX:       px(baseX),
		PositionY:       px(baseY),
		Width:           px(width),
		Margin:          boxOf(p, "ParaLeftMargin", "ParaRightMargin", "ParaTopMargin", "ParaBottomMargin"),
		BackgroundColor: colorutils.Resolve(propertyOrNil(p, "ParaBackColor")),
		LineSpacing:     lineSpacingOf(p),
	}
	if lvl, ok := backend.Number(p, "NumberingLevel"); ok {
		level := int(lvl)
		para.Level = &level
	}

	portions, err := p.Portions()
	if err != nil {
		log.Printf("[!] Error reading text portions: %v", err)
	}

	totalHeight := 0.0
	maxFontSize := 0.0
	for _, portion := range portions {
		run := extractRun(portion, baseX, baseY+totalHeight)
		para.Runs = append(para.Runs, run)
		totalHeight += run.Height.Value
		maxFontSize = max(maxFontSize, run.FontSize)
	}

	lineHeight := units.PointsToPixels(maxFontSize) * lineSpacingFactor
	para.LineHeight = px(lineHeight)
	para.Height = px(max(totalHeight, lineHeight))
	return para
}

func extractRun(portion backend.Portion, baseX, baseY float64) *Run {
	text := decodeText(portion.String())
	fontSize := backend.NumberOr(portion, "CharHeight", 0)

	var width, height float64
	if fontSize > 0 {
		width = units.PointsToPixels(fontSize * float64(utf8.RuneCountInString(text)) * glyphWidthFactor)
		height = units.PointsToPixels(fontSize)
	}

	run := &Run{
		Text:           text,
		FontSize:       fontSize,
		Bold:           backend.NumberOr(portion, "CharWeight", 0) > 100,
		Italic:         isItalic(portion),
		Underline:      backend.NumberOr(portion, "CharUnderline", 0) != 0,
		Color:          colorutils.Resolve(propertyOrNil(portion, "CharColor")),
		HighlightColor: colorutils.Resolve(propertyOrNil(portion, "CharBackColor")),
		PositionX:      px(baseX),
		PositionY:      px(baseY),
		Width:          px(width),
		Height:         px(height),
	}
	if name, ok := backend.String(portion, "CharFontName"); ok {
		run.FontName = decodeText(name)
	}
	return run
}

func isItalic(ps backend.PropertySet) bool {
	if n, ok := backend.Number(ps, "CharPosture"); ok {
		return n == 2
	}
	name, _ := backend.EnumName(ps, "CharPosture")
	return name == "ITALIC"
}

func paragraphAlignment(ps backend.PropertySet) string {
	if n, ok := backend.Number(ps, "ParaAdjust"); ok {
		if a, ok := paragraphAlignments[int(n)]; ok {
			return a
		}
		return "unknown"
	}
	if name, ok := backend.EnumName(ps, "ParaAdjust"); ok {
		if a, ok := paragraphAdjustNames[name]; ok {
			return a
		}
	}
	return "unknown"
}

func lineSpacingOf(ps backend.PropertySet) *LineSpacing {
	v, ok := ps.Property("ParaLineSpacing")
	if !ok {
		return nil
	}
	var ls backend.LineSpacing
	switch s := v.(type) {
	case backend.LineSpacing:
		ls = s
	case *backend.LineSpacing:
		if s == nil {
			return nil
		}
		ls = *s
	default:
		return nil
	}
	if ls.Mode == 0 {
		return &LineSpacing{Mode: ls.Mode, Height: percent(float64(ls.Height))}
	}
	return &LineSpacing{Mode: ls.Mode, Height: px(units.LengthToPixels(float64(ls.Height)))}
}

// hasText reports whether any run of tf carries non-whitespace text.
func hasText(tf *TextFrame) bool {
	if tf == nil {
		return false
	}
	for _, p := range tf.Paragraphs {
		for _, r := range p.Runs {
			if strings.TrimSpace(r.Text) != "" {
				return true
			}
		}
	}
	return false
}

func propertyOrNil(ps backend.PropertySet, name string) any {
	v, ok := ps.Property(name)
	if !ok {
		return nil
	}
	return v
}

// boxOf reads four lengths in hundredths of a millimetre, absent ones as 0.
func boxOf(ps backend.PropertySet, left, right, top, bottom string) Box {
	return Box{
		Left:   px(units.LengthToPixels(backend.NumberOr(ps, left, 0))),
		Right:  px(units.LengthToPixels(backend.NumberOr(ps, right, 0))),
		Top:    px(units.LengthToPixels(backend.NumberOr(ps, top, 0))),
		Bottom: px(units.LengthToPixels(backend.NumberOr(ps, bottom, 0))),
	}
}
