package image

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/palette"
)

// Swatch pairs a color with the reference it was classified as.
type Swatch struct {
	Color     palette.RGB
	Reference palette.Reference
}

// Sheet lays swatches out in a grid of cell-sized squares, columns wide.
// The top half of each cell is the swatch, the bottom half its reference.
func Sheet(swatches []Swatch, cell int, columns int) *image.RGBA {
	if cell < 2 {
		cell = 2
	}
	if columns < 1 {
		columns = 1
	}
	if columns > len(swatches) && len(swatches) > 0 {
		columns = len(swatches)
	}

	rows := (len(swatches) + columns - 1) / columns
	img := image.NewRGBA(image.Rect(0, 0, columns*cell, rows*cell))

	for i, s := range swatches {
		x := (i % columns) * cell
		y := (i / columns) * cell

		top := image.Rect(x, y, x+cell, y+cell/2)
		bottom := image.Rect(x, y+cell/2, x+cell, y+cell)
		draw.Draw(img, top, image.NewUniform(s.Color.Color()), image.Point{}, draw.Src)
		draw.Draw(img, bottom, image.NewUniform(s.Reference.RGB.Color()), image.Point{}, draw.Src)
	}

	return img
}

// Save writes img as a PNG file at path.
func Save(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return &errs.OpError{Op: "image.save", Kind: errs.KindNotFound, Path: path, Err: e}
	}
	defer f.Close()

	if e := png.Encode(f, img); e != nil {
		return &errs.OpError{Op: "image.save", Kind: errs.KindRender, Path: path, Err: e}
	}

	return f.Close()
}
