package raster

import "math"

// Color is an RGBA color with channels in [0, 1].
type Color [4]float32

// ToBytes converts a color to 8-bit channels, rounding to nearest.
func ToBytes(c Color) [4]uint8 {
	var b [4]uint8
	for i, ch := range c {
		if ch < 0 {
			ch = 0
		}
		if ch > 1 {
			ch = 1
		}
		b[i] = uint8(ch*255 + 0.5)
	}
	return b
}

// FromBytes converts 8-bit channels to a float color.
func FromBytes(b [4]uint8) Color {
	return Color{
		float32(b[0]) / 255,
		float32(b[1]) / 255,
		float32(b[2]) / 255,
		float32(b[3]) / 255,
	}
}

// Multiply returns the per-channel product of two colors.
// Used to tint a sampled texel by a draw color.
func Multiply(a, b Color) Color {
	return Color{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Layer composites over atop under.
//
// The over color is weighted by 1-(1-a)^2 and the result alpha is
// min(1, sqrt(over.a^2 + under.a^2)). Fully opaque over replaces under
// exactly; fully transparent over leaves under untouched.
func Layer(over, under Color) Color {
	ow := 1 - (1-over[3])*(1-over[3])
	uw := 1 - ow
	a := math.Sqrt(float64(over[3])*float64(over[3]) + float64(under[3])*float64(under[3]))
	if a > 1 {
		a = 1
	}
	return Color{
		ow*over[0] + uw*under[0],
		ow*over[1] + uw*under[1],
		ow*over[2] + uw*under[2],
		float32(a),
	}
}
