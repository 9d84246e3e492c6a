package palette

import "math"

// Reference is a named color swatches are classified against. Lower
// weights make a reference easier to select.
type Reference struct {
	Name   string
	Code   string
	RGB    RGB
	Weight float64
}

// Palette is an ordered list of references. Order breaks ties.
type Palette []Reference

// Result is the reference chosen for a swatch and its weighted distance.
type Result struct {
	Reference Reference
	Distance  float64
}

var references = [...]Reference{
	{Name: "Red", Code: "R", RGB: RGB{255, 0, 0}, Weight: 1.5},
	{Name: "Green", Code: "G", RGB: RGB{0, 255, 0}, Weight: 1.3},
	{Name: "Blue", Code: "B", RGB: RGB{0, 0, 255}, Weight: 1.3},
	{Name: "Yellow", Code: "Y", RGB: RGB{255, 255, 0}, Weight: 1.4},
	{Name: "Black", Code: "Bk", RGB: RGB{0, 0, 0}, Weight: 10.0},
	{Name: "White", Code: "W", RGB: RGB{255, 255, 255}, Weight: 2.5},
}

// DefaultPalette returns a copy of the six reference colors.
func DefaultPalette() Palette {
	p := make(Palette, len(references))
	copy(p, references[:])
	return p
}

// Classify returns the nearest reference color to c.
func Classify(c RGB) Result {
	return Palette(references[:]).Nearest(c)
}

// Nearest scans the palette in order and keeps the first reference with
// the smallest weighted distance to c.
func (p Palette) Nearest(c RGB) Result {
	best := Result{Distance: math.Inf(1)}
	if len(p) > 0 {
		best.Reference = p[0]
	}

	sample := ToLab(c)
	for _, ref := range p {
		d := Distance(sample, ToLab(ref.RGB), ref.Weight)
		if d < best.Distance {
			best = Result{ref, d}
		}
	}

	return best
}

// Distances returns the weighted distance from c to every reference, in
// palette order.
func (p Palette) Distances(c RGB) []Result {
	rs := make([]Result, len(p))

	sample := ToLab(c)
	for i, ref := range p {
		rs[i] = Result{ref, Distance(sample, ToLab(ref.RGB), ref.Weight)}
	}

	return rs
}
