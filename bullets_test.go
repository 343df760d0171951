package decomposer

import (
	"testing"

	"github.com/brandquad/decomposer/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulleted(level int) props {
	return props{
		"NumberingLevel": level,
		"NumberingRules": fakeRules{levels: map[int][]backend.PropertyValue{
			level: {{Name: "NumberingType", Value: 4}},
		}},
	}
}

func TestBulletOrdinals(t *testing.T) {
	tracker := NewBulletTracker()
	levels := []int{0, 0, 1, 1, 0}
	want := []int{0, 1, 0, 1, 2}

	for i, level := range levels {
		info := tracker.Extract(bulleted(level))
		require.True(t, info.Visible)
		require.NotNil(t, info.Level)
		assert.Equal(t, level, *info.Level)
		assert.Equal(t, want[i], info.CurrentValue, "paragraph %d", i)
	}
}

func TestBulletShallowerLevelResetsDeeper(t *testing.T) {
	tracker := NewBulletTracker()
	for _, level := range []int{0, 1, 2, 2, 0, 2} {
		tracker.Extract(bulleted(level))
	}
	// the last level 2 paragraph follows a level 0 one
	info := tracker.Extract(bulleted(2))
	assert.Equal(t, 1, info.CurrentValue)
}

func TestBulletDefaults(t *testing.T) {
	tests := []struct {
		name        string
		p           backend.PropertySet
		description string
	}{
		{"no numbering level", props{}, "NONE"},
		{"negative level", props{"NumberingLevel": -1}, "NONE"},
		{"level too deep", props{"NumberingLevel": 12}, "UNKNOWN"},
		{"no rules", props{"NumberingLevel": 0}, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewBulletTracker().Extract(tt.p)
			want := DefaultBulletInfo()
			want.TypeDescription = tt.description
			assert.Equal(t, want, info)
			assert.False(t, info.Visible)
			assert.Zero(t, info.Type)
		})
	}
}

type panicking struct{}

func (panicking) Property(string) (any, bool) {
	panic("backend went away")
}

func TestBulletPanicYieldsDefault(t *testing.T) {
	info := NewBulletTracker().Extract(panicking{})
	assert.Equal(t, DefaultBulletInfo(), info)
}

func TestBulletRuleProperties(t *testing.T) {
	p := props{
		"NumberingLevel": int16(1),
		"NumberingRules": fakeRules{levels: map[int][]backend.PropertyValue{
			1: {
				{Name: "NumberingType", Value: int16(9)},
				{Name: "StartWith", Value: int16(3)},
				{Name: "LeftMargin", Value: int32(2540)},
				{Name: "Prefix", Value: "("},
				{Name: "Suffix", Value: ")"},
				{Name: "BulletChar", Value: "•"},
				{Name: "BulletRelSize", Value: int16(75)},
				{Name: "BulletColor", Value: int64(0x00FF0000)},
				{Name: "BulletFont", Value: backend.FontDescriptor{Name: "Symbol", Height: 12, Weight: 150, Kerning: true}},
				{Name: "Unrelated", Value: true},
			},
		}},
	}
	info := NewBulletTracker().Extract(p)

	assert.True(t, info.Visible)
	assert.Equal(t, 9, info.Type)
	assert.Equal(t, "CHAR_LOWER_LETTER", info.TypeDescription)
	assert.Equal(t, 3, info.StartValue)
	assert.Equal(t, px(96), info.Indent)
	assert.Equal(t, "(", info.Prefix)
	assert.Equal(t, ")", info.Suffix)
	require.NotNil(t, info.Char)
	assert.Equal(t, "•", *info.Char)
	require.NotNil(t, info.BulletSizePercent)
	assert.Equal(t, 75.0, *info.BulletSizePercent)
	require.NotNil(t, info.BulletColor)
	assert.Equal(t, 255, info.BulletColor.Red)
	require.NotNil(t, info.FontName)
	assert.Equal(t, "Symbol", *info.FontName)
	assert.Equal(t, px(16), info.FontSize)
	assert.True(t, info.Bold)
	assert.True(t, info.Kerning)
}

func TestNumberingTypeDescription(t *testing.T) {
	assert.Equal(t, "NONE", NumberingTypeDescription(0))
	assert.Equal(t, "NUMBER", NumberingTypeDescription(4))
	assert.Equal(t, "BITMAP_URL", NumberingTypeDescription(14))
	assert.Equal(t, "UNKNOWN", NumberingTypeDescription(15))
	assert.Equal(t, "UNKNOWN", NumberingTypeDescription(-1))
}
