package decomposer

import (
	"testing"

	"github.com/brandquad/decomposer/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textShape(paragraphs ...backend.Paragraph) *fakeTextShape {
	return &fakeTextShape{fakeShape: newShape(props{"ShapeType": backend.ShapeTypeText}), paragraphs: paragraphs}
}

func TestExtractTextFrame(t *testing.T) {
	shape := textShape(
		&fakeParagraph{
			props: props{"ParaAdjust": int16(3), "ParaLeftMargin": int32(254)},
			text:  "  Hello world ",
			portions: []backend.Portion{
				&fakePortion{props: props{"CharHeight": 12.0, "CharWeight": 150.0, "CharFontName": "Arial"}, text: "Hello"},
				&fakePortion{props: props{"CharHeight": 18.0, "CharPosture": backend.Enum("ITALIC"), "CharUnderline": int16(1), "CharColor": int32(0xFF0000)}, text: " world"},
			},
		},
		&fakeParagraph{props: props{"ParaAdjust": backend.Enum("BLOCK")}},
	)
	owner := &Shape{VerticalAlignment: "top", Padding: Box{Left: px(4)}}
	origin := backend.FileShape{Left: 914400, Top: 0, Width: 1828800}

	tf, err := extractTextFrame(shape, origin, owner, AutofitNone)
	require.NoError(t, err)
	require.Len(t, tf.Paragraphs, 2)
	assert.Equal(t, "top", tf.VerticalAlignment)

	p := tf.Paragraphs[0]
	assert.Equal(t, "Hello world", p.Text)
	assert.Equal(t, "center", p.Alignment)
	assert.Equal(t, px(96), p.PositionX)
	assert.Equal(t, px(0), p.PositionY)
	assert.Equal(t, px(192), p.Width)
	assert.Equal(t, px(10), p.Margin.Left)
	assert.Equal(t, owner.Padding, p.Padding)
	assert.Equal(t, AutofitNone, p.Autofit)
	assert.Nil(t, p.Level)

	require.Len(t, p.Runs, 2)
	first, second := p.Runs[0], p.Runs[1]
	assert.Equal(t, "Arial", first.FontName)
	assert.True(t, first.Bold)
	assert.False(t, first.Italic)
	assert.Equal(t, px(48), first.Width)
	assert.Equal(t, px(16), first.Height)
	assert.True(t, second.Italic)
	assert.True(t, second.Underline)
	require.NotNil(t, second.Color)
	assert.Equal(t, 255, second.Color.Red)
	assert.Equal(t, px(16), second.PositionY)
	assert.Equal(t, px(86), second.Width)

	assert.InDelta(t, 28.8, p.LineHeight.Value, 1e-9)
	assert.Equal(t, px(40), p.Height)

	empty := tf.Paragraphs[1]
	assert.Equal(t, "justify", empty.Alignment)
	assert.Equal(t, px(40), empty.PositionY)
	assert.Empty(t, empty.Runs)
	assert.Equal(t, px(0), empty.Height)
}

func TestRunWithoutFontSize(t *testing.T) {
	run := extractRun(&fakePortion{props: props{}, text: "abc"}, 10, 20)
	assert.Equal(t, px(0), run.Width)
	assert.Equal(t, px(0), run.Height)
	assert.Equal(t, px(10), run.PositionX)
	assert.Nil(t, run.Color)
}

func TestParagraphAlignment(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{0, "left"},
		{1, "right"},
		{2, "justify"},
		{3, "center"},
		{4, "distributed"},
		{9, "unknown"},
		{backend.Enum("STRETCH"), "distributed"},
		{backend.Enum("DIAGONAL"), "unknown"},
		{nil, "unknown"},
	}
	for _, tt := range tests {
		ps := props{}
		if tt.value != nil {
			ps["ParaAdjust"] = tt.value
		}
		assert.Equal(t, tt.want, paragraphAlignment(ps), "%v", tt.value)
	}
}

func TestLineSpacingOf(t *testing.T) {
	assert.Nil(t, lineSpacingOf(props{}))

	ls := lineSpacingOf(props{"ParaLineSpacing": backend.LineSpacing{Mode: 0, Height: 150}})
	require.NotNil(t, ls)
	assert.Equal(t, percent(150), ls.Height)

	ls = lineSpacingOf(props{"ParaLineSpacing": &backend.LineSpacing{Mode: 3, Height: 2540}})
	require.NotNil(t, ls)
	assert.Equal(t, 3, ls.Mode)
	assert.Equal(t, px(96), ls.Height)
}

func TestHasText(t *testing.T) {
	frame := func(texts ...string) *TextFrame {
		p := &Paragraph{}
		for _, s := range texts {
			p.Runs = append(p.Runs, &Run{Text: s})
		}
		return &TextFrame{Paragraphs: []*Paragraph{p}}
	}

	assert.False(t, hasText(nil))
	assert.False(t, hasText(&TextFrame{}))
	assert.False(t, hasText(frame()))
	assert.False(t, hasText(frame("  ", "\n\t")))
	assert.True(t, hasText(frame(" ", "x")))
}
