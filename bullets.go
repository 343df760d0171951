package decomposer

import (
	"errors"
	"fmt"
	"log"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
	"github.com/brandquad/decomposer/units"
)

// MaxBulletLevel is the deepest numbering level tracked.
const MaxBulletLevel = 9

var errNoNumberingRules = errors.New("paragraph has no numbering rules")

var numberingTypes = [...]string{
	"NONE",
	"OUTLINE",
	"BITMAP",
	"CHAR_SPECIAL",
	"NUMBER",
	"BITMAP_SPECIAL",
	"CHAR",
	"CONTINUE",
	"CHAR_UPPER_LETTER",
	"CHAR_LOWER_LETTER",
	"CHAR_UPPER_ROMAN",
	"CHAR_LOWER_ROMAN",
	"PAGE_DESCRIPTOR",
	"CHAPTER_NUMBER",
	"BITMAP_URL",
}

// NumberingTypeDescription returns the symbolic name of a numbering type code.
func NumberingTypeDescription(code int) string {
	if code < 0 || code >= len(numberingTypes) {
		return "UNKNOWN"
	}
	return numberingTypes[code]
}

// DefaultBulletInfo is the record reported when a bullet cannot be read.
func DefaultBulletInfo() BulletInfo {
	return BulletInfo{
		FontSize:        px(0),
		Distance:        px(0),
		Indent:          px(0),
		TypeDescription: "UNKNOWN",
	}
}

// BulletTracker keeps the running ordinal of every numbering level within one
// text frame.
type BulletTracker struct {
	counters [MaxBulletLevel + 1]int
}

func NewBulletTracker() *BulletTracker {
	return &BulletTracker{}
}

// Extract resolves the bullet of paragraph p and advances the counters. It
// never fails: any problem yields DefaultBulletInfo.
func (t *BulletTracker) Extract(p backend.PropertySet) (info BulletInfo) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[!] Error extracting bullet info: %v", recovered(r))
			info = DefaultBulletInfo()
		}
	}()

	res, err := t.extract(p)
	if err != nil {
		log.Printf("[!] Error extracting bullet info: %v", err)
		return DefaultBulletInfo()
	}
	return res
}

func (t *BulletTracker) extract(p backend.PropertySet) (BulletInfo, error) {
	info := DefaultBulletInfo()

	lvl, ok := backend.Number(p, "NumberingLevel")
	if !ok || lvl < 0 {
		info.TypeDescription = NumberingTypeDescription(info.Type)
		return info, nil
	}
	level := int(lvl)
	if level > MaxBulletLevel {
		return info, fmt.Errorf("numbering level %d is deeper than %d", level, MaxBulletLevel)
	}

	info.Visible = true
	info.Level = &level
	info.CurrentValue = t.advance(level)

	v, _ := p.Property("NumberingRules")
	rules, ok := v.(backend.NumberingRules)
	if !ok || rules == nil {
		return info, errNoNumberingRules
	}
	rule, err := rules.Level(level)
	if err != nil {
		return info, fmt.Errorf("numbering rule %d: %w", level, err)
	}

	for _, pv := range rule {
		applyBulletProperty(&info, pv)
	}
	info.TypeDescription = NumberingTypeDescription(info.Type)
	return info, nil
}

// advance returns the current ordinal of level and resets all deeper levels.
func (t *BulletTracker) advance(level int) int {
	current := t.counters[level]
	t.counters[level]++
	for i := level + 1; i < len(t.counters); i++ {
		t.counters[i] = 0
	}
	return current
}

func applyBulletProperty(info *BulletInfo, pv backend.PropertyValue) {
	switch pv.Name {
	case "StartWith":
		if n, ok := backend.ToNumber(pv.Value); ok {
			info.StartValue = int(n)
		}
	case "LeftMargin":
		if n, ok := backend.ToNumber(pv.Value); ok {
			info.Indent = px(units.LengthToPixels(n))
		}
	case "BulletColor":
		info.BulletColor = colorutils.Resolve(pv.Value)
	case "BulletSizePercent", "BulletRelSize":
		if n, ok := backend.ToNumber(pv.Value); ok {
			info.BulletSizePercent = &n
		}
	case "NumberingType":
		if n, ok := backend.ToNumber(pv.Value); ok {
			info.Type = int(n)
		}
	case "Prefix":
		if s, ok := pv.Value.(string); ok {
			info.Prefix = decodeText(s)
		}
	case "Suffix":
		if s, ok := pv.Value.(string); ok {
			info.Suffix = decodeText(s)
		}
	case "BulletChar":
		if s, ok := pv.Value.(string); ok {
			s = decodeText(s)
			info.Char = &s
		}
	case "BulletFont":
		switch f := pv.Value.(type) {
		case backend.FontDescriptor:
			applyBulletFont(info, f)
		case *backend.FontDescriptor:
			if f != nil {
				applyBulletFont(info, *f)
			}
		}
	}
}

func applyBulletFont(info *BulletInfo, f backend.FontDescriptor) {
	if f.Name != "" {
		name := decodeText(f.Name)
		info.FontName = &name
	}
	if f.Height != 0 {
		info.FontSize = px(units.PointsToPixels(f.Height))
	}
	if f.Weight != 0 {
		info.Bold = f.Weight > 100
	}
	if f.Underline != 0 {
		info.Underline = true
	}
	if f.Orientation != 0 {
		info.Orientation = f.Orientation
	}
	if f.Kerning {
		info.Kerning = true
	}
}
