// Package units converts the native length units of slide documents to pixels.
package units

import "math"

// DPI is the output resolution used for every conversion.
const DPI = 96.0

const (
	emuPerInch    = 914400.0
	emuPerMM100   = 360.0
	mmPerInch     = 25.4
	pointsPerInch = 72.0
)

// LengthToPixels converts hundredths of a millimetre to whole pixels.
func LengthToPixels(mm100 float64) float64 {
	return round(mm100 / 100 / mmPerInch * DPI)
}

// PointsToPixels converts typographic points to whole pixels.
func PointsToPixels(pt float64) float64 {
	return round(pt * DPI / pointsPerInch)
}

// EMUToPixels converts English Metric Units to pixels without rounding.
func EMUToPixels(emu float64) float64 {
	return emu / emuPerInch * DPI
}

// EMUToHundredthMM converts EMU to hundredths of a millimetre.
func EMUToHundredthMM(emu int64) int64 {
	return int64(math.Round(float64(emu) / emuPerMM100))
}

// HundredthMMToEMU is the inverse of EMUToHundredthMM.
func HundredthMMToEMU(mm100 int64) int64 {
	return mm100 * emuPerMM100
}

// round rounds half to even.
func round(v float64) float64 {
	return math.RoundToEven(v)
}
