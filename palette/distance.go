package palette

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
	pow25to7 = math.Pow(25, 7)
	klch     = &deltae.KLChDefault
)

// Distance returns the weighted perceptual difference between a sample and
// a reference color. It is a CIEDE2000 derivative: hue angles stay in
// radians throughout, SH and the rotation term use the sample hue only, and
// the result is scaled by weight. Classification depends on these exact
// numbers, so this must not be replaced with the published formula.
func Distance(sample, reference chromath.Lab, weight float64) float64 {
	l1, a1, b1 := sample.L(), sample.A(), sample.B()
	l2, a2, b2 := reference.L(), reference.A(), reference.B()

	cbar := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	r7 := chromaRatio(cbar)

	g := 0.5 * (1 - math.Sqrt(r7))
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	dC := c2p - c1p

	h1 := math.Atan2(b1, a1p)
	h2 := math.Atan2(b2, a2p)
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin((h2-h1)/2)

	dL := l2 - l1
	lbar50 := math.Pow((l1+l2)/2-50, 2)

	sl := 1 + 0.015*lbar50/math.Sqrt(20+lbar50)
	sc := 1 + 0.045*cbar
	sh := 1 + 0.015*cbar*(1-
		0.17*math.Cos(h1-math.Pi/6)+
		0.24*math.Cos(2*h1)+
		0.32*math.Cos(3*h1+math.Pi/30)-
		0.20*math.Cos(4*h1-63*math.Pi/180))

	dTheta := 30 * math.Exp(-math.Pow((h1-275)/25, 2))
	rt := -2 * math.Sqrt(r7) * math.Sin(2*dTheta)

	l := dL / sl
	c := dC / sc
	h := dH / sh

	// |rt| <= 2 keeps the radicand non-negative; clamp rounding noise.
	return weight * math.Sqrt(math.Max(0, l*l+c*c+h*h+rt*c*h))
}

// Standard returns the published CIEDE2000 difference. It is only used for
// comparison output; classification never calls it.
func Standard(sample, reference chromath.Lab) float64 {
	return deltae.CIE2000(reference, sample, klch)
}

// chromaRatio is C^7 / (C^7 + 25^7), defined as 0 for achromatic pairs.
func chromaRatio(c float64) float64 {
	if c == 0 {
		return 0
	}
	c7 := math.Pow(c, 7)
	return c7 / (c7 + pow25to7)
}
