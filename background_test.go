package decomposer

import (
	"testing"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
	"github.com/stretchr/testify/assert"
)

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		name string
		page props
		want colorutils.RGBA
	}{
		{"no background", props{}, white},
		{"solid", props{"Background": props{"FillStyle": backend.Enum("SOLID"), "FillColor": int32(0x102030)}},
			colorutils.RGBA{Red: 0x10, Green: 0x20, Blue: 0x30, Alpha: 255}},
		{"gradient", props{"Background": props{"FillStyle": backend.Enum("GRADIENT"), "FillColor": int32(0x102030)}}, white},
		{"solid without colour", props{"Background": props{"FillStyle": backend.Enum("SOLID")}}, white},
		{"not a property set", props{"Background": "blue"}, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackgroundColor(tt.page))
		})
	}
}
