package color

// sRGBToLinearLUT holds pre-computed EOTF values at 12-bit precision.
// Record building resolves every quad and text color through it, so the
// per-frame cost is an array lookup instead of a math.Pow call. The
// quantization error stays below 2e-4, well inside what an 8-bit target
// can represent.
var sRGBToLinearLUT [4096]float32

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 4095)
	}
}

// SRGBToLinearFast converts an sRGB-encoded component to linear using the
// lookup table. Input is clamped to [0, 1].
func SRGBToLinearFast(s float32) float32 {
	if s <= 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	return sRGBToLinearLUT[int(s*4095+0.5)]
}
