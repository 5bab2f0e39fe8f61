package meshing

import "math"

// sRGB→linear lookup for 8-bit channels, so edge-point color interpolation
// happens in linear space without per-sample pow calls. Filled once at
// package init; read-only afterwards.
var srgbToLinear [256]float32

func init() {
	for i := range srgbToLinear {
		n := float64(i) / 255.0
		if n < 0.04045 {
			srgbToLinear[i] = float32(n / 12.92)
		} else {
			srgbToLinear[i] = float32(math.Pow((n+0.055)/1.055, 2.4))
		}
	}
}
