package palette

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// D65 reference white, scaled to Y = 100.
var whiteD65 = chromath.XYZ{95.047, 100.0, 108.883}

// ToXYZ converts an sRGB color to CIE XYZ (Y in [0, 100]).
func ToXYZ(c RGB) chromath.XYZ {
	r := linearize(float64(c.R)/255) * 100
	g := linearize(float64(c.G)/255) * 100
	b := linearize(float64(c.B)/255) * 100

	return chromath.XYZ{
		r*0.4124 + g*0.3576 + b*0.1805,
		r*0.2126 + g*0.7152 + b*0.0722,
		r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// ToLab converts an sRGB color to CIE L*a*b* relative to D65.
func ToLab(c RGB) chromath.Lab {
	xyz := ToXYZ(c)

	fx := labF(xyz[0] / whiteD65[0])
	fy := labF(xyz[1] / whiteD65[1])
	fz := labF(xyz[2] / whiteD65[2])

	return chromath.Lab{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// inverse sRGB companding
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}
