// Package layer organizes drawing primitives into a flattened list of
// layers.
//
// Generate walks a primitive tree depth-first in a single pass, composing
// the running transformation and routing every draw record into the layer
// whose clip rectangle applies to it. Layers are final once generated: all
// geometry in a layer is already in the coordinate space implied by its
// bounds, and a renderer only has to draw the layers in list order with
// each layer's bounds as the scissor rectangle.
package layer

import (
	"github.com/gogpu/strata"
	"github.com/gogpu/strata/font"
	"github.com/gogpu/strata/primitive"
)

// Layer is a group of draw records that share one clip rectangle.
type Layer struct {
	// Bounds is the clip rectangle of the layer, in viewport logical
	// coordinates. Records are never culled against it here; the renderer
	// applies it as a scissor.
	Bounds strata.Rectangle

	// Quads, Meshes, Text, and Images hold the layer's records, each
	// category in the depth-first visitation order of the source tree.
	Quads  []Quad
	Meshes []Mesh
	Text   []Text
	Images []Image
}

// New creates an empty layer with the given clip bounds.
func New(bounds strata.Rectangle) Layer {
	return Layer{Bounds: bounds}
}

// Generate flattens a sequence of primitives into an ordered list of
// layers. Layer 0 covers the full viewport logical size; every Clip
// primitive with a visible intersection appends one more layer, in
// pre-order document position.
func Generate(primitives []primitive.Primitive, viewport *strata.Viewport) []Layer {
	g := generator{
		layers: []Layer{New(strata.RectWithSize(viewport.LogicalSize()))},
	}

	for _, p := range primitives {
		g.process(strata.Identity(), p, 0)
	}

	return g.layers
}

// Overlay builds a single full-viewport layer of diagnostic text, without
// walking a primitive tree. Each line produces two records: a dark shadow
// copy offset by (-1, -1) and the light foreground copy on top of it.
func Overlay(lines []string, viewport *strata.Viewport) Layer {
	overlay := New(strata.RectWithSize(viewport.LogicalSize()))

	for i, line := range lines {
		text := Text{
			Content: line,
			Bounds: strata.Rectangle{
				X:      11,
				Y:      11 + 25*float32(i),
				Width:  strata.SizeInfinity.Width,
				Height: strata.SizeInfinity.Height,
			},
			Color:               [4]float32{0.9, 0.9, 0.9, 1},
			Size:                20,
			Font:                font.Default,
			HorizontalAlignment: strata.HorizontalLeft,
			VerticalAlignment:   strata.VerticalTop,
		}

		shadow := text
		shadow.Bounds = text.Bounds.Add(strata.Vector{X: -1, Y: -1})
		shadow.Color = [4]float32{0, 0, 0, 1}

		overlay.Text = append(overlay.Text, shadow, text)
	}

	return overlay
}

// generator accumulates layers during one flatten pass. Layers live in a
// single growable slice and are addressed by index only: appending a new
// layer mid-traversal may reallocate the slice, so no *Layer is ever held
// across a recursive call.
type generator struct {
	layers []Layer
}

func (g *generator) process(transformation strata.Transformation, p primitive.Primitive, currentLayer int) {
	switch p := p.(type) {
	case primitive.None:

	case primitive.Group:
		for _, child := range p.Primitives {
			g.process(transformation, child, currentLayer)
		}

	case primitive.Text:
		g.layers[currentLayer].Text = append(g.layers[currentLayer].Text, Text{
			Content:             p.Content,
			Bounds:              transformation.TransformRectangle(p.Bounds),
			Size:                transformation.TransformScalar(p.Size),
			Color:               p.Color.Linear(),
			Font:                p.Font,
			HorizontalAlignment: p.HorizontalAlignment,
			VerticalAlignment:   p.VerticalAlignment,
		})

	case primitive.Quad:
		bounds := transformation.TransformRectangle(p.Bounds)

		g.layers[currentLayer].Quads = append(g.layers[currentLayer].Quads, Quad{
			Position:     [2]float32{bounds.X, bounds.Y},
			Size:         [2]float32{bounds.Width, bounds.Height},
			Color:        p.Background.Color.Linear(),
			BorderRadius: transformation.TransformScalar(p.BorderRadius),
			BorderWidth:  transformation.TransformScalar(p.BorderWidth),
			BorderColor:  p.BorderColor.Linear(),
		})

	case primitive.Mesh:
		// Meshes do not support scale: only the origin is transformed,
		// the geometry is handled untouched on the GPU side.
		origin := transformation.TransformPoint(strata.Point{})

		bounds := strata.Rectangle{
			X:      origin.X,
			Y:      origin.Y,
			Width:  p.Size.Width,
			Height: p.Size.Height,
		}

		// Only draw visible content.
		clipBounds, ok := g.layers[currentLayer].Bounds.Intersection(bounds)
		if !ok {
			return
		}

		g.layers[currentLayer].Meshes = append(g.layers[currentLayer].Meshes, Mesh{
			Origin:     origin,
			Buffers:    p.Buffers,
			ClipBounds: clipBounds,
			Style:      p.Style,
		})

	case primitive.Clip:
		transformedBounds := transformation.TransformRectangle(p.Bounds)

		// A clip fully outside its enclosing layer prunes the whole
		// subtree: nothing under it can become visible.
		clipBounds, ok := g.layers[currentLayer].Bounds.Intersection(transformedBounds)
		if !ok {
			return
		}

		g.layers = append(g.layers, New(clipBounds))
		g.process(transformation, p.Content, len(g.layers)-1)

	case primitive.Translate:
		g.process(
			transformation.Translated(p.Translation.X, p.Translation.Y),
			p.Content,
			currentLayer,
		)

	case primitive.Scale:
		g.process(
			transformation.Scaled(p.Factor, p.Factor),
			p.Content,
			currentLayer,
		)

	case primitive.Cache:
		g.process(transformation, p.Content, currentLayer)

	case primitive.Image:
		g.layers[currentLayer].Images = append(g.layers[currentLayer].Images, Image{
			Kind:   ImageRaster,
			Handle: p.Handle,
			Bounds: transformation.TransformRectangle(p.Bounds),
		})

	case primitive.Svg:
		g.layers[currentLayer].Images = append(g.layers[currentLayer].Images, Image{
			Kind:   ImageVector,
			Handle: p.Handle,
			Bounds: transformation.TransformRectangle(p.Bounds),
		})
	}
}
