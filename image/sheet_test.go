package image

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/palette"
)

func swatches() []Swatch {
	var ss []Swatch
	for _, c := range []palette.RGB{{R: 10, G: 10, B: 10}, {R: 200, G: 30, B: 30}, {R: 12, G: 200, B: 80}} {
		ss = append(ss, Swatch{Color: c, Reference: palette.Classify(c).Reference})
	}
	return ss
}

func TestSheet(t *testing.T) {
	img := Sheet(swatches(), 10, 2)

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("unexpected bounds %v", b)
	}

	cases := []struct {
		x, y int
		want palette.RGB
	}{
		{1, 1, palette.RGB{R: 10, G: 10, B: 10}},
		{1, 8, palette.RGB{}},
		{11, 1, palette.RGB{R: 200, G: 30, B: 30}},
		{11, 8, palette.RGB{R: 255}},
		{1, 11, palette.RGB{R: 12, G: 200, B: 80}},
		{1, 18, palette.RGB{G: 255}},
	}
	for _, c := range cases {
		if got := palette.FromColor(img.At(c.x, c.y)); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSheetClampsColumns(t *testing.T) {
	img := Sheet(swatches(), 8, 10)
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 8 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if b := Sheet(nil, 8, 4).Bounds(); !b.Empty() {
		t.Fatalf("expected empty sheet, got %v", b)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := Save(path, Sheet(swatches(), 4, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestSaveBadPath(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "no", "such", "dir.png"), Sheet(swatches(), 4, 1))
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
