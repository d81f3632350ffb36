// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/strata"
)

// Scissor is a clip rectangle in physical pixels, as consumed by a render
// pass scissor test.
type Scissor struct {
	X, Y          uint32
	Width, Height uint32
}

// NewScissor converts logical-space layer bounds to a physical scissor
// rectangle: scaled by the viewport scale factor, snapped outward to whole
// pixels, and clamped to the target extent. The second return value is
// false when nothing of the bounds lands on the target.
func NewScissor(bounds strata.Rectangle, scaleFactor float64, targetWidth, targetHeight uint32) (Scissor, bool) {
	x0 := math.Floor(float64(bounds.X) * scaleFactor)
	y0 := math.Floor(float64(bounds.Y) * scaleFactor)
	x1 := math.Ceil(float64(bounds.Right()) * scaleFactor)
	y1 := math.Ceil(float64(bounds.Bottom()) * scaleFactor)

	x0 = math.Max(x0, 0)
	y0 = math.Max(y0, 0)
	x1 = math.Min(x1, float64(targetWidth))
	y1 = math.Min(y1, float64(targetHeight))

	if x1 <= x0 || y1 <= y0 {
		return Scissor{}, false
	}

	return Scissor{
		X:      uint32(x0),
		Y:      uint32(y0),
		Width:  uint32(x1 - x0),
		Height: uint32(y1 - y0),
	}, true
}
