package strata

import "testing"

func TestViewportLogicalSize(t *testing.T) {
	tests := []struct {
		name        string
		width       uint32
		height      uint32
		scaleFactor float64
		want        Size
	}{
		{"scale 1", 800, 600, 1, Size{Width: 800, Height: 600}},
		{"scale 2", 1600, 1200, 2, Size{Width: 800, Height: 600}},
		{"fractional scale", 1920, 1080, 1.5, Size{Width: 1280, Height: 720}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.width, tt.height, tt.scaleFactor)

			if got := v.LogicalSize(); got != tt.want {
				t.Errorf("LogicalSize() = %v, want %v", got, tt.want)
			}
			if v.PhysicalWidth() != tt.width || v.PhysicalHeight() != tt.height {
				t.Errorf("physical size = %dx%d, want %dx%d",
					v.PhysicalWidth(), v.PhysicalHeight(), tt.width, tt.height)
			}
			if v.ScaleFactor() != tt.scaleFactor {
				t.Errorf("ScaleFactor() = %v, want %v", v.ScaleFactor(), tt.scaleFactor)
			}
		})
	}
}

func TestViewportProjection(t *testing.T) {
	v := NewViewport(1600, 1200, 2)
	proj := v.Projection()

	// The projection maps the logical area, not the physical one.
	if got := proj.TransformPoint(Pt(0, 0)); !approxEqualPoint(got, Pt(-1, 1)) {
		t.Errorf("projection(0,0) = %v, want (-1,1)", got)
	}
	if got := proj.TransformPoint(Pt(800, 600)); !approxEqualPoint(got, Pt(1, -1)) {
		t.Errorf("projection(800,600) = %v, want (1,-1)", got)
	}
}
