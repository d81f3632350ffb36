package strata

// Viewport describes the target area of a frame: its physical size in
// pixels, the scale factor relating physical to logical coordinates, and
// the projection used to map logical coordinates to the device box.
//
// A Viewport is immutable once created; compute a new one when the window
// is resized or moved across monitors.
type Viewport struct {
	physicalWidth  uint32
	physicalHeight uint32
	scaleFactor    float64
	logicalSize    Size
	projection     Transformation
}

// NewViewport creates a viewport from a physical size in pixels and a
// scale factor. The logical size is the physical size divided by the
// scale factor.
func NewViewport(physicalWidth, physicalHeight uint32, scaleFactor float64) *Viewport {
	logical := Size{
		Width:  float32(float64(physicalWidth) / scaleFactor),
		Height: float32(float64(physicalHeight) / scaleFactor),
	}

	return &Viewport{
		physicalWidth:  physicalWidth,
		physicalHeight: physicalHeight,
		scaleFactor:    scaleFactor,
		logicalSize:    logical,
		projection:     Orthographic(logical.Width, logical.Height),
	}
}

// PhysicalWidth returns the viewport width in pixels.
func (v *Viewport) PhysicalWidth() uint32 {
	return v.physicalWidth
}

// PhysicalHeight returns the viewport height in pixels.
func (v *Viewport) PhysicalHeight() uint32 {
	return v.physicalHeight
}

// ScaleFactor returns the factor relating physical to logical coordinates.
func (v *Viewport) ScaleFactor() float64 {
	return v.scaleFactor
}

// LogicalSize returns the viewport size in logical coordinates. Layer 0 of
// a generated frame covers exactly this area.
func (v *Viewport) LogicalSize() Size {
	return v.logicalSize
}

// Projection returns the orthographic projection for the logical area.
func (v *Viewport) Projection() Transformation {
	return v.projection
}
