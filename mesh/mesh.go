// Package mesh defines the triangle mesh buffers and fill styles carried
// by mesh primitives and their render records.
//
// Buffers are borrowed, never copied: a flatten pass and the layers it
// produces reference the same vertex and index slices the primitive tree
// was built with.
package mesh

import "github.com/gogpu/strata"

// Vertex2D is a single mesh vertex: a logical-space position and a
// linear-space color.
type Vertex2D struct {
	Position [2]float32
	Color    [4]float32
}

// Buffers holds the vertex and index data of a triangle mesh. Indices
// address Vertices in groups of three.
type Buffers struct {
	Vertices []Vertex2D
	Indices  []uint32
}

// StyleKind identifies how a mesh is filled.
type StyleKind uint8

// Style kind constants.
const (
	// StyleSolid fills the mesh with a single color.
	StyleSolid StyleKind = iota

	// StyleGradient fills the mesh with a linear gradient.
	StyleGradient
)

// String returns a human-readable name for the style kind.
func (k StyleKind) String() string {
	switch k {
	case StyleSolid:
		return "Solid"
	case StyleGradient:
		return "Gradient"
	default:
		return "Unknown"
	}
}

// ColorStop is a color at a normalized offset along a gradient.
type ColorStop struct {
	// Offset is the position of the stop in [0, 1] along the gradient line.
	Offset float32

	Color strata.Color
}

// Gradient describes a linear gradient between two points in the mesh's
// local coordinate space.
type Gradient struct {
	Start, End strata.Point
	Stops      []ColorStop
}

// Style describes how a mesh is filled.
type Style struct {
	Kind     StyleKind
	Color    strata.Color
	Gradient *Gradient
}

// Solid creates a solid fill style.
func Solid(c strata.Color) Style {
	return Style{Kind: StyleSolid, Color: c}
}

// WithGradient creates a linear gradient fill style.
func WithGradient(g Gradient) Style {
	return Style{Kind: StyleGradient, Gradient: &g}
}
