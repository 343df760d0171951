package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthToPixels(t *testing.T) {
	tests := []struct {
		name  string
		mm100 float64
		want  float64
	}{
		{"zero", 0, 0},
		{"one inch", 2540, 96},
		{"ten centimetres", 10000, 378},
		{"negative", -2540, -96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LengthToPixels(tt.mm100))
		})
	}
}

func TestPointsToPixels(t *testing.T) {
	assert.Equal(t, 0.0, PointsToPixels(0))
	assert.Equal(t, 16.0, PointsToPixels(12))
	assert.Equal(t, 24.0, PointsToPixels(18))
	// 1.5pt is exactly 2px, 0.375pt is 0.5px which rounds to even
	assert.Equal(t, 2.0, PointsToPixels(1.5))
	assert.Equal(t, 0.0, PointsToPixels(0.375))
}

func TestEMUToPixels(t *testing.T) {
	assert.Equal(t, 96.0, EMUToPixels(914400))
	assert.Equal(t, 960.0, EMUToPixels(9144000))
	assert.InDelta(t, 0.5, EMUToPixels(4762.5), 1e-9)
}

func TestHundredthMMRoundTrip(t *testing.T) {
	assert.Equal(t, int64(2540), EMUToHundredthMM(914400))
	assert.Equal(t, int64(914400), HundredthMMToEMU(2540))
}
