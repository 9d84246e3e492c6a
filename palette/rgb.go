package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a swatch string is not six hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB represents an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" swatch. The leading '#' and case are optional.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 || strings.Trim(h, "0123456789abcdefABCDEF") != "" {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	c, e := colorful.Hex("#" + h)
	if e != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, e)
	}

	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
}

// Hex formats the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the opaque color.RGBA equivalent.
func (c RGB) Color() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

func (c RGB) String() string { return c.Hex() }

// LookupURL fills the "{hex}" placeholder of tmpl with the swatch hex, without '#'.
func LookupURL(tmpl string, hex string) string {
	if tmpl == "" {
		return ""
	}
	return strings.ReplaceAll(tmpl, "{hex}", strings.TrimPrefix(hex, "#"))
}

// DefaultLookupURL points at an external color reference page.
const DefaultLookupURL = "https://www.color-hex.com/color/{hex}"
