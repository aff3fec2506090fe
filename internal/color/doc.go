// Package color provides the RGB colorspace value used by every tvibe palette.
//
// A Color holds three floating point channels clamped to [0, 1]. It converts
// to and from CSS hex strings, 24-bit integers, byte triples, HSV and HSL, and
// offers the small color algebra the palette derivation is built from:
//
//   - Blend: per-channel linear interpolation toward another color
//   - Shade: interpolation toward white (positive factor) or black (negative)
//   - Brighten, Saturate: HSV value and saturation offsets
//   - Lighten: HSL lightness offset
//   - Rotate: hue rotation modulo 360
//   - Luminance: relative luminance for contrast computations
//
// HSV and HSL hue is expressed in degrees, saturation, value and lightness in
// the range [0, 100]. Quantization to 8 bits rounds half up.
//
// # Usage Example
//
//	bg := color.FromCSS("#282a36")
//	fmt.Println(bg.Brighten(6).CSS())
//	fmt.Println(bg.Blend(color.FromCSS("#f8f8f2"), 0.4))
//
// Colors are plain values and safe for concurrent use.
package color
