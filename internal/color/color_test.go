package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint32
		wantErr bool
	}{
		{name: "with hash", in: "#282a36", want: 0x282a36},
		{name: "without hash", in: "f8f8f2", want: 0xf8f8f2},
		{name: "uppercase", in: "#FF79C6", want: 0xff79c6},
		{name: "short form rejected", in: "#fff", wantErr: true},
		{name: "non hex rejected", in: "#12345g", wantErr: true},
		{name: "too long", in: "#1234567", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCSS(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, IsValidCSS(tt.in))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestFromCSSPanicsOnMalformedLiteral(t *testing.T) {
	assert.Panics(t, func() { FromCSS("#zzzzzz") })
	assert.NotPanics(t, func() { FromCSS("#000000") })
}

func TestConstructorsAgree(t *testing.T) {
	want := FromCSS("#bd93f9")

	assert.Equal(t, want, FromHex(0xbd93f9))
	assert.Equal(t, want, FromBytes([3]byte{0xbd, 0x93, 0xf9}))
	assert.Equal(t, want, FromRGB(0xbd, 0x93, 0xf9))
	assert.Equal(t, [3]byte{0xbd, 0x93, 0xf9}, want.Bytes())
	assert.Equal(t, "#bd93f9", want.CSS())
	assert.Equal(t, "#bd93f9", want.String())
}

func TestNewClamps(t *testing.T) {
	c := New(-0.5, 2, 0.5)
	r, g, b := c.Channels()
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 1.0, g)
	assert.Equal(t, 0.5, b)
}

func TestQuantizationRounds(t *testing.T) {
	r, g, b := New(127.7/255, 127.2/255, 0.4/255).RGB()
	assert.Equal(t, uint8(128), r)
	assert.Equal(t, uint8(127), g)
	assert.Equal(t, uint8(0), b)
}

func TestHSVRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xffffff, 0xff5555, 0x50fa7b, 0x8be9fd, 0x44475a, 0x808080} {
		c := FromHex(hex)
		h, s, v := c.HSV()
		assert.Equal(t, hex, FromHSV(h, s, v).Hex(), "hsv round trip of %06x", hex)

		h, s, l := c.HSL()
		assert.Equal(t, hex, FromHSL(h, s, l).Hex(), "hsl round trip of %06x", hex)
	}
}

func TestHSLLightness(t *testing.T) {
	_, _, l := FromCSS("#ff0000").HSL()
	assert.Equal(t, 50.0, l)

	_, _, l = FromCSS("#000000").HSL()
	assert.Equal(t, 0.0, l)

	_, _, l = FromCSS("#ffffff").HSL()
	assert.Equal(t, 100.0, l)
}

func TestBrightenBlackToWhite(t *testing.T) {
	assert.Equal(t, uint32(0xffffff), FromRGB(0, 0, 0).Brighten(100).Hex())
}

func TestShade(t *testing.T) {
	assert.Equal(t, uint32(0x000000), FromRGB(255, 255, 255).Shade(-1).Hex())
	assert.Equal(t, uint32(0xffffff), FromRGB(0, 0, 0).Shade(1).Hex())

	c := FromCSS("#804020")
	assert.Equal(t, c.Blend(White, 0.25), c.Shade(0.25))
	assert.Equal(t, c.Blend(Black, 0.25), c.Shade(-0.25))
	assert.Equal(t, c, c.Shade(0))
}

func TestBlend(t *testing.T) {
	a := FromCSS("#000000")
	b := FromCSS("#ffffff")

	assert.Equal(t, uint32(0x808080), a.Blend(b, 0.5).Hex())
	assert.Equal(t, a, a.Blend(b, 0))
	assert.Equal(t, b, a.Blend(b, 1))
	// Extrapolation is allowed but the result stays in range.
	assert.Equal(t, b, a.Blend(b, 3))
	assert.Equal(t, a, a.Blend(b, -1))
}

func TestRotateWrapsHue(t *testing.T) {
	red := FromCSS("#ff0000")
	assert.Equal(t, uint32(0x00ff00), red.Rotate(120).Hex())
	assert.Equal(t, uint32(0x0000ff), red.Rotate(-120).Hex())
	assert.Equal(t, uint32(0xff0000), red.Rotate(720).Hex())
}

func TestSaturateAndLighten(t *testing.T) {
	grey := FromCSS("#808080")
	assert.Equal(t, grey, grey.Saturate(0))

	h, s, _ := FromCSS("#804040").Saturate(-100).HSV()
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 0.0, h)

	_, _, l := FromCSS("#404040").Lighten(100).HSL()
	assert.Equal(t, 100.0, l)
	_, _, l = FromCSS("#404040").Lighten(-100).HSL()
	assert.Equal(t, 0.0, l)
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, 0.0, Black.Luminance())
	assert.InDelta(t, 1.0, White.Luminance(), 1e-9)
	assert.InDelta(t, 0.2126, FromCSS("#ff0000").Luminance(), 1e-9)
	assert.InDelta(t, 0.7152, FromCSS("#00ff00").Luminance(), 1e-9)

	mid := FromCSS("#808080").Luminance()
	assert.True(t, mid > 0.2 && mid < 0.23, "luminance of #808080 = %v", mid)
	assert.False(t, math.IsNaN(mid))
}
