// Package primitive defines the tree of drawing primitives consumed by
// the layer builder.
//
// Primitive is a closed sum: the variant set is fixed, and consumers
// dispatch with a single exhaustive type switch rather than through
// virtual methods. Trees are read-only during flattening; the builder
// never mutates or copies primitive payloads except where cheap (colors,
// scalars) or identifier-shared (image handles).
package primitive

import (
	"github.com/gogpu/strata"
	"github.com/gogpu/strata/font"
	"github.com/gogpu/strata/image"
	"github.com/gogpu/strata/mesh"
)

// Primitive is one node of a drawing tree: an atomic drawing instruction
// or a structural wrapper over child content.
type Primitive interface {
	isPrimitive()
}

// None draws nothing.
type None struct{}

// Group renders its children in order. Grouping carries no transform or
// clip of its own; it exists so widgets can hand back several primitives
// as one.
type Group struct {
	Primitives []Primitive
}

// Text is a run of text laid out inside Bounds.
type Text struct {
	Content string

	// Bounds positions the run in local coordinates. Use
	// strata.SizeInfinity dimensions when the run should not wrap.
	Bounds strata.Rectangle

	Color strata.Color
	Size  float32
	Font  font.Font

	HorizontalAlignment strata.Horizontal
	VerticalAlignment   strata.Vertical
}

// Quad is a filled rectangle with an optional rounded border.
type Quad struct {
	Bounds       strata.Rectangle
	Background   strata.Background
	BorderRadius float32
	BorderWidth  float32
	BorderColor  strata.Color
}

// Mesh is an arbitrary triangle mesh anchored at the local origin.
//
// Only the origin is transformed during flattening; the vertex data is
// handed to the GPU untouched, so meshes do not support scale transforms
// on their own geometry.
type Mesh struct {
	Buffers *mesh.Buffers

	// Size is the extent of the mesh from its origin, used for culling
	// against the target layer's clip bounds.
	Size strata.Size

	Style mesh.Style
}

// Clip restricts its content to Bounds. Each Clip encountered during
// flattening opens a new layer whose clip rectangle is the intersection
// of Bounds (transformed) with the enclosing layer's bounds.
type Clip struct {
	Bounds  strata.Rectangle
	Content Primitive
}

// Translate displaces its content.
type Translate struct {
	Translation strata.Vector
	Content     Primitive
}

// Scale scales its content uniformly about the local origin.
type Scale struct {
	Factor  float32
	Content Primitive
}

// Cache marks content whose construction is memoized by the caller. The
// layer builder walks straight through it every frame; the memoization of
// the subtree itself is not its concern.
type Cache struct {
	Content Primitive
}

// Image draws a raster image scaled into Bounds. The handle is a shared
// identifier; pixel data is resolved by the renderer.
type Image struct {
	Handle image.Handle
	Bounds strata.Rectangle
}

// Svg draws a vector image scaled into Bounds.
type Svg struct {
	Handle image.Handle
	Bounds strata.Rectangle
}

func (None) isPrimitive()      {}
func (Group) isPrimitive()     {}
func (Text) isPrimitive()      {}
func (Quad) isPrimitive()      {}
func (Mesh) isPrimitive()      {}
func (Clip) isPrimitive()      {}
func (Translate) isPrimitive() {}
func (Scale) isPrimitive()     {}
func (Cache) isPrimitive()     {}
func (Image) isPrimitive()     {}
func (Svg) isPrimitive()       {}
