package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with channels clamped to [0, 1].
type Color struct {
	rgb colorful.Color
}

// Black and White are the two extremes Shade interpolates toward.
var (
	Black = Color{}
	White = Color{rgb: colorful.Color{R: 1, G: 1, B: 1}}
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// wrapHue maps any angle onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// New returns a color from float channels, clamping each to [0, 1].
func New(r, g, b float64) Color {
	return Color{rgb: colorful.Color{
		R: clamp(r, 0, 1),
		G: clamp(g, 0, 1),
		B: clamp(b, 0, 1),
	}}
}

// IsValidCSS reports whether s is a six digit hex color with an optional leading '#'.
func IsValidCSS(s string) bool {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseCSS parses "#rrggbb" or "rrggbb". Use it for input that was not
// validated at build time.
func ParseCSS(s string) (Color, error) {
	if !IsValidCSS(s) {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(strings.TrimPrefix(s, "#")))
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromRGB(c.RGB255()), nil
}

// FromCSS parses a compiled-in hex literal and panics if it is malformed.
func FromCSS(s string) Color {
	c, err := ParseCSS(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHex builds a color from a 0xRRGGBB integer. Bits above 24 are ignored.
func FromHex(hex uint32) Color {
	return FromRGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// FromBytes builds a color from an [r, g, b] byte triple.
func FromBytes(b [3]byte) Color {
	return FromRGB(b[0], b[1], b[2])
}

// FromRGB builds a color from 8-bit channels.
func FromRGB(r, g, b uint8) Color {
	return New(float64(r)/255, float64(g)/255, float64(b)/255)
}

// FromHSV builds a color from hue in degrees and saturation/value in [0, 100].
func FromHSV(h, s, v float64) Color {
	c := colorful.Hsv(wrapHue(h), clamp(s, 0, 100)/100, clamp(v, 0, 100)/100)
	return New(c.R, c.G, c.B)
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0, 100].
func FromHSL(h, s, l float64) Color {
	c := colorful.Hsl(wrapHue(h), clamp(s, 0, 100)/100, clamp(l, 0, 100)/100)
	return New(c.R, c.G, c.B)
}

// RGB returns the 8-bit channels, rounding half up.
func (c Color) RGB() (r, g, b uint8) {
	return c.rgb.RGB255()
}

// Bytes returns the 8-bit channels as an array.
func (c Color) Bytes() [3]byte {
	r, g, b := c.RGB()
	return [3]byte{r, g, b}
}

// Hex returns the color as a 0xRRGGBB integer.
func (c Color) Hex() uint32 {
	r, g, b := c.RGB()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// CSS returns the lowercase "#rrggbb" form.
func (c Color) CSS() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

func (c Color) String() string {
	return c.CSS()
}

// HSV returns hue in degrees and saturation/value in [0, 100].
func (c Color) HSV() (h, s, v float64) {
	h, s, v = c.rgb.Hsv()
	return h, s * 100, v * 100
}

// HSL returns hue in degrees and saturation/lightness in [0, 100].
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.rgb.Hsl()
	return h, s * 100, l * 100
}

// Blend moves each channel toward other by f. f is not clamped, so values
// outside [0, 1] extrapolate; the result channels are clamped.
func (c Color) Blend(other Color, f float64) Color {
	m := c.rgb.BlendRgb(other.rgb, f)
	return New(m.R, m.G, m.B)
}

// Shade moves toward white by f when f >= 0 and toward black by |f| otherwise.
func (c Color) Shade(f float64) Color {
	if f < 0 {
		return c.Blend(Black, -f)
	}
	return c.Blend(White, f)
}

// Brighten adds v to the HSV value.
func (c Color) Brighten(v float64) Color {
	h, s, val := c.HSV()
	return FromHSV(h, s, clamp(val+v, 0, 100))
}

// Lighten adds v to the HSL lightness.
func (c Color) Lighten(v float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s, clamp(l+v, 0, 100))
}

// Saturate adds v to the HSV saturation.
func (c Color) Saturate(v float64) Color {
	h, s, val := c.HSV()
	return FromHSV(h, clamp(s+v, 0, 100), val)
}

// Rotate turns the hue by v degrees.
func (c Color) Rotate(v float64) Color {
	h, s, val := c.HSV()
	return FromHSV(wrapHue(h+v), s, val)
}

// Luminance returns the relative luminance (sRGB linearized, BT.709 weights).
func (c Color) Luminance() float64 {
	r, g, b := c.rgb.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Channels returns the raw float channels.
func (c Color) Channels() (r, g, b float64) {
	return c.rgb.R, c.rgb.G, c.rgb.B
}
