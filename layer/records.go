package layer

import (
	"github.com/gogpu/strata"
	"github.com/gogpu/strata/font"
	"github.com/gogpu/strata/image"
	"github.com/gogpu/strata/mesh"
)

// Quad is a render-ready rectangle. Position and size are in the
// coordinate space of the layer's bounds; colors are linear.
type Quad struct {
	Position [2]float32
	Size     [2]float32

	// Color is the fill color in linear space.
	Color [4]float32

	BorderRadius float32
	BorderWidth  float32
	BorderColor  [4]float32
}

// Mesh is a render-ready triangle mesh. The vertex buffers are borrowed
// from the primitive tree, never copied.
type Mesh struct {
	// Origin is the transformed position of the mesh's local origin.
	Origin strata.Point

	Buffers *mesh.Buffers

	// ClipBounds is the visible portion of the mesh: the intersection of
	// its own extent with the layer bounds at the time it was routed.
	ClipBounds strata.Rectangle

	Style mesh.Style
}

// Text is a render-ready text run. Bounds and size are already
// transformed; the color is linear. Shaping happens in the renderer.
type Text struct {
	Content string
	Bounds  strata.Rectangle
	Color   [4]float32
	Size    float32
	Font    font.Font

	HorizontalAlignment strata.Horizontal
	VerticalAlignment   strata.Vertical
}

// ImageKind distinguishes raster from vector image records.
type ImageKind uint8

// Image record kinds.
const (
	ImageRaster ImageKind = iota
	ImageVector
)

// String returns a human-readable name for the image kind.
func (k ImageKind) String() string {
	switch k {
	case ImageRaster:
		return "Raster"
	case ImageVector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// Image is a render-ready raster or vector image. The handle is a shared
// identifier resolved by the renderer's image cache.
type Image struct {
	Kind   ImageKind
	Handle image.Handle
	Bounds strata.Rectangle
}
