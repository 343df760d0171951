package native

import (
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/units"
)

const numberingLevels = 10

var paraAdjust = map[gopresentation.HorizontalAlignment]int{
	gopresentation.HorizontalLeft:        0,
	gopresentation.HorizontalRight:       1,
	gopresentation.HorizontalJustify:     2,
	gopresentation.HorizontalCenter:      3,
	gopresentation.HorizontalDistributed: 4,
}

// numbering type codes for the scheme prefixes of a:buAutoNum
var autoNumberTypes = []struct {
	prefix string
	code   int
}{
	{"arabic", 4},
	{"alphaUc", 8},
	{"alphaLc", 9},
	{"romanUc", 10},
	{"romanLc", 11},
}

type paragraph struct {
	src *gopresentation.Paragraph
}

func (p *paragraph) String() string {
	var sb strings.Builder
	for _, e := range p.src.GetElements() {
		switch el := e.(type) {
		case *gopresentation.TextRun:
			sb.WriteString(el.GetText())
		case *gopresentation.BreakElement:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (p *paragraph) Portions() ([]backend.Portion, error) {
	elements := p.src.GetElements()
	out := make([]backend.Portion, 0, len(elements))
	for _, e := range elements {
		switch el := e.(type) {
		case *gopresentation.TextRun:
			out = append(out, &portion{run: el})
		case *gopresentation.BreakElement:
			out = append(out, &portion{})
		}
	}
	return out, nil
}

func (p *paragraph) bullet() *gopresentation.Bullet {
	b := p.src.GetBullet()
	if b == nil || b.Type == gopresentation.BulletTypeNone {
		return nil
	}
	return b
}

func (p *paragraph) Property(name string) (any, bool) {
	a := p.src.GetAlignment()
	switch name {
	case "ParaAdjust":
		if a == nil {
			return 0, true
		}
		if v, ok := paraAdjust[a.Horizontal]; ok {
			return v, true
		}
		return 0, true
	case "ParaLineSpacing":
		return lineSpacing(p.src.GetLineSpacing())
	case "NumberingLevel":
		if p.bullet() == nil {
			return nil, false
		}
		if a == nil {
			return 0, true
		}
		return a.Level, true
	case "NumberingRules":
		b := p.bullet()
		if b == nil {
			return nil, false
		}
		var indent int64
		if a != nil {
			indent = a.MarginLeft
		}
		return &numberingRules{bullet: b, indent: indent}, true
	}

	if a == nil {
		return nil, false
	}
	switch name {
	case "ParaLeftMargin":
		return units.EMUToHundredthMM(a.MarginLeft), true
	case "ParaRightMargin":
		return units.EMUToHundredthMM(a.MarginRight), true
	case "ParaTopMargin":
		return units.EMUToHundredthMM(a.MarginTop), true
	case "ParaBottomMargin":
		return units.EMUToHundredthMM(a.MarginBottom), true
	}
	return nil, false
}

// lineSpacing decodes the GoPPT spacing value: positive is hundredths of a
// point, negative is thousandths of a percent.
func lineSpacing(v int) (any, bool) {
	switch {
	case v < 0:
		return backend.LineSpacing{Mode: 0, Height: -v / 1000}, true
	case v > 0:
		emu := int64(v) * 12700 / 100
		return backend.LineSpacing{Mode: 3, Height: int(units.EMUToHundredthMM(emu))}, true
	}
	return nil, false
}

// numberingRules repeats the paragraph bullet at every level; GoPPT keeps one
// bullet per paragraph.
type numberingRules struct {
	bullet *gopresentation.Bullet
	indent int64
}

func (r *numberingRules) Count() int { return numberingLevels }

func (r *numberingRules) Level(int) ([]backend.PropertyValue, error) {
	b := r.bullet
	values := []backend.PropertyValue{
		{Name: "LeftMargin", Value: units.EMUToHundredthMM(r.indent)},
	}
	if b.Size > 0 {
		values = append(values, backend.PropertyValue{Name: "BulletRelSize", Value: b.Size})
	}
	if b.Color != nil {
		values = append(values, backend.PropertyValue{Name: "BulletColor", Value: packedColor(*b.Color)})
	}
	if b.Font != "" {
		values = append(values, backend.PropertyValue{Name: "BulletFont", Value: backend.FontDescriptor{Name: b.Font}})
	}

	switch b.Type {
	case gopresentation.BulletTypeChar:
		values = append(values,
			backend.PropertyValue{Name: "NumberingType", Value: 3},
			backend.PropertyValue{Name: "BulletChar", Value: b.Style},
		)
	case gopresentation.BulletTypeNumeric:
		code, prefix, suffix := autoNumber(b.NumFormat)
		start := b.StartAt
		if start < 1 {
			start = 1
		}
		values = append(values,
			backend.PropertyValue{Name: "NumberingType", Value: code},
			backend.PropertyValue{Name: "StartWith", Value: start},
			backend.PropertyValue{Name: "Prefix", Value: prefix},
			backend.PropertyValue{Name: "Suffix", Value: suffix},
		)
	}
	return values, nil
}

// autoNumber splits an auto numbering scheme such as "alphaLcParenR" into a
// numbering type code and its decorations.
func autoNumber(scheme string) (code int, prefix, suffix string) {
	code = 4
	rest := scheme
	for _, t := range autoNumberTypes {
		if strings.HasPrefix(scheme, t.prefix) {
			code = t.code
			rest = strings.TrimPrefix(scheme, t.prefix)
			break
		}
	}
	switch {
	case strings.HasPrefix(rest, "ParenBoth"):
		return code, "(", ")"
	case strings.HasPrefix(rest, "ParenR"):
		return code, "", ")"
	case strings.HasPrefix(rest, "Period"):
		return code, "", "."
	case strings.HasPrefix(rest, "Minus"):
		return code, "", "-"
	}
	return code, "", ""
}

// portion is one text run; a nil run stands for a line break.
type portion struct {
	run *gopresentation.TextRun
}

func (p *portion) String() string {
	if p.run == nil {
		return "\n"
	}
	return p.run.GetText()
}

func (p *portion) Property(name string) (any, bool) {
	if p.run == nil {
		return nil, false
	}
	f := p.run.GetFont()
	if f == nil {
		return nil, false
	}
	switch name {
	case "CharHeight":
		if f.Size <= 0 {
			return nil, false
		}
		return f.Size, true
	case "CharFontName":
		if f.Name == "" {
			return nil, false
		}
		return f.Name, true
	case "CharWeight":
		if f.Bold {
			return 150, true
		}
		return 100, true
	case "CharPosture":
		if f.Italic {
			return 2, true
		}
		return 0, true
	case "CharUnderline":
		if f.Underline == "" || f.Underline == gopresentation.UnderlineNone {
			return 0, true
		}
		return 1, true
	case "CharColor":
		if f.Color.ARGB == "" {
			return nil, false
		}
		return packedColor(f.Color), true
	}
	return nil, false
}
