package layer

import (
	"math"
	"testing"

	"github.com/gogpu/strata"
	"github.com/gogpu/strata/image"
	"github.com/gogpu/strata/mesh"
	"github.com/gogpu/strata/primitive"
)

func testViewport() *strata.Viewport {
	return strata.NewViewport(300, 300, 1)
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxEqualRect(a, b strata.Rectangle) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) &&
		approxEqual(a.Width, b.Width) && approxEqual(a.Height, b.Height)
}

func quadAt(x, y, w, h float32) primitive.Quad {
	return primitive.Quad{
		Bounds:     strata.Rectangle{X: x, Y: y, Width: w, Height: h},
		Background: strata.Background{Color: strata.White},
	}
}

func TestGenerateEmpty(t *testing.T) {
	layers := Generate(nil, testViewport())

	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}

	root := layers[0]
	want := strata.Rectangle{Width: 300, Height: 300}
	if root.Bounds != want {
		t.Errorf("root bounds = %v, want %v", root.Bounds, want)
	}
	if len(root.Quads) != 0 || len(root.Meshes) != 0 || len(root.Text) != 0 || len(root.Images) != 0 {
		t.Errorf("root layer not empty: %+v", root)
	}
}

func TestGenerateTranslatedQuad(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Translate{
			Translation: strata.Vec(5, 5),
			Content:     quadAt(10, 10, 50, 50),
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if len(layers[0].Quads) != 1 {
		t.Fatalf("len(quads) = %d, want 1", len(layers[0].Quads))
	}

	q := layers[0].Quads[0]
	if q.Position != [2]float32{15, 15} {
		t.Errorf("position = %v, want [15 15]", q.Position)
	}
	if q.Size != [2]float32{50, 50} {
		t.Errorf("size = %v, want [50 50]", q.Size)
	}
}

func TestGenerateScaledQuad(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Scale{
			Factor: 2,
			Content: primitive.Quad{
				Bounds:       strata.Rectangle{X: 10, Y: 10, Width: 50, Height: 50},
				Background:   strata.Background{Color: strata.White},
				BorderRadius: 3,
				BorderWidth:  1.5,
			},
		},
	}

	layers := Generate(tree, testViewport())
	q := layers[0].Quads[0]

	if q.Position != [2]float32{20, 20} || q.Size != [2]float32{100, 100} {
		t.Errorf("quad = %v %v, want [20 20] [100 100]", q.Position, q.Size)
	}

	// Scalar quantities scale with the transform.
	if !approxEqual(q.BorderRadius, 6) {
		t.Errorf("border radius = %v, want 6", q.BorderRadius)
	}
	if !approxEqual(q.BorderWidth, 3) {
		t.Errorf("border width = %v, want 3", q.BorderWidth)
	}
}

func TestGenerateClipDoesNotSelfCullQuads(t *testing.T) {
	// The quad lies entirely outside the clip's own bounds, but quads do
	// not self-cull: the record lands in the clip's layer regardless, and
	// the renderer's scissor does the culling.
	tree := []primitive.Primitive{
		primitive.Clip{
			Bounds:  strata.Rectangle{X: 0, Y: 0, Width: 100, Height: 100},
			Content: quadAt(200, 200, 10, 10),
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}

	clipLayer := layers[1]
	wantBounds := strata.Rectangle{X: 0, Y: 0, Width: 100, Height: 100}
	if clipLayer.Bounds != wantBounds {
		t.Errorf("clip layer bounds = %v, want %v", clipLayer.Bounds, wantBounds)
	}

	if len(layers[0].Quads) != 0 {
		t.Errorf("root layer has %d quads, want 0", len(layers[0].Quads))
	}
	if len(clipLayer.Quads) != 1 {
		t.Fatalf("clip layer has %d quads, want 1", len(clipLayer.Quads))
	}

	q := clipLayer.Quads[0]
	if q.Position != [2]float32{200, 200} || q.Size != [2]float32{10, 10} {
		t.Errorf("quad = %v %v, want [200 200] [10 10]", q.Position, q.Size)
	}
}

func TestGenerateOffscreenClipPrunesSubtree(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Clip{
			Bounds:  strata.Rectangle{X: 500, Y: 500, Width: 10, Height: 10},
			Content: quadAt(0, 0, 5, 5),
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1 (offscreen clip must not create a layer)", len(layers))
	}
	if len(layers[0].Quads) != 0 {
		t.Errorf("pruned subtree leaked %d quads", len(layers[0].Quads))
	}
}

func TestGenerateNestedClips(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Clip{
			Bounds: strata.Rectangle{X: 50, Y: 50, Width: 200, Height: 200},
			Content: primitive.Clip{
				Bounds:  strata.Rectangle{X: 0, Y: 0, Width: 100, Height: 100},
				Content: quadAt(0, 0, 10, 10),
			},
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 3 {
		t.Fatalf("len(layers) = %d, want 3", len(layers))
	}

	outer := layers[1]
	wantOuter := strata.Rectangle{X: 50, Y: 50, Width: 200, Height: 200}
	if outer.Bounds != wantOuter {
		t.Errorf("outer clip bounds = %v, want %v", outer.Bounds, wantOuter)
	}

	// Inner bounds are the intersection of outer clip, inner clip, and
	// the root viewport.
	inner := layers[2]
	wantInner := strata.Rectangle{X: 50, Y: 50, Width: 50, Height: 50}
	if inner.Bounds != wantInner {
		t.Errorf("inner clip bounds = %v, want %v", inner.Bounds, wantInner)
	}

	if len(inner.Quads) != 1 {
		t.Errorf("inner layer has %d quads, want 1", len(inner.Quads))
	}
}

func TestGenerateClipLayersInPreOrder(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Group{Primitives: []primitive.Primitive{
			primitive.Clip{
				Bounds: strata.Rectangle{X: 0, Y: 0, Width: 50, Height: 50},
				Content: primitive.Clip{
					Bounds:  strata.Rectangle{X: 0, Y: 0, Width: 25, Height: 25},
					Content: primitive.None{},
				},
			},
			primitive.Clip{
				Bounds:  strata.Rectangle{X: 100, Y: 100, Width: 50, Height: 50},
				Content: primitive.None{},
			},
		}},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 4 {
		t.Fatalf("len(layers) = %d, want 4", len(layers))
	}

	wantBounds := []strata.Rectangle{
		{X: 0, Y: 0, Width: 300, Height: 300},
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 0, Y: 0, Width: 25, Height: 25},
		{X: 100, Y: 100, Width: 50, Height: 50},
	}
	for i, want := range wantBounds {
		if layers[i].Bounds != want {
			t.Errorf("layer %d bounds = %v, want %v", i, layers[i].Bounds, want)
		}
	}
}

func TestGenerateMeshCulling(t *testing.T) {
	buffers := &mesh.Buffers{
		Vertices: []mesh.Vertex2D{
			{Position: [2]float32{0, 0}},
			{Position: [2]float32{10, 0}},
			{Position: [2]float32{0, 10}},
		},
		Indices: []uint32{0, 1, 2},
	}

	t.Run("partially visible mesh keeps intersection", func(t *testing.T) {
		tree := []primitive.Primitive{
			primitive.Translate{
				Translation: strata.Vec(250, 250),
				Content: primitive.Mesh{
					Buffers: buffers,
					Size:    strata.Size{Width: 100, Height: 100},
					Style:   mesh.Solid(strata.White),
				},
			},
		}

		layers := Generate(tree, testViewport())

		if len(layers[0].Meshes) != 1 {
			t.Fatalf("len(meshes) = %d, want 1", len(layers[0].Meshes))
		}

		m := layers[0].Meshes[0]
		if m.Origin != strata.Pt(250, 250) {
			t.Errorf("origin = %v, want (250,250)", m.Origin)
		}
		want := strata.Rectangle{X: 250, Y: 250, Width: 50, Height: 50}
		if !approxEqualRect(m.ClipBounds, want) {
			t.Errorf("clip bounds = %v, want %v", m.ClipBounds, want)
		}
		if m.Buffers != buffers {
			t.Error("mesh buffers must be borrowed, not copied")
		}
	})

	t.Run("fully clipped mesh is dropped", func(t *testing.T) {
		tree := []primitive.Primitive{
			primitive.Translate{
				Translation: strata.Vec(400, 400),
				Content: primitive.Mesh{
					Buffers: buffers,
					Size:    strata.Size{Width: 10, Height: 10},
					Style:   mesh.Solid(strata.White),
				},
			},
		}

		layers := Generate(tree, testViewport())

		if len(layers[0].Meshes) != 0 {
			t.Errorf("len(meshes) = %d, want 0", len(layers[0].Meshes))
		}
	})
}

func TestGenerateText(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Scale{
			Factor: 2,
			Content: primitive.Text{
				Content: "hello",
				Bounds:  strata.Rectangle{X: 10, Y: 20, Width: 100, Height: 30},
				Color:   strata.Black,
				Size:    16,
			},
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers[0].Text) != 1 {
		t.Fatalf("len(text) = %d, want 1", len(layers[0].Text))
	}

	run := layers[0].Text[0]
	if run.Content != "hello" {
		t.Errorf("content = %q, want %q", run.Content, "hello")
	}
	if !approxEqual(run.Size, 32) {
		t.Errorf("size = %v, want 32", run.Size)
	}
	want := strata.Rectangle{X: 20, Y: 40, Width: 200, Height: 60}
	if !approxEqualRect(run.Bounds, want) {
		t.Errorf("bounds = %v, want %v", run.Bounds, want)
	}
}

func TestGenerateImages(t *testing.T) {
	raster := image.FromPixels(2, 2, make([]byte, 16))
	vector := image.FromBytes([]byte("<svg/>"))

	tree := []primitive.Primitive{
		primitive.Translate{
			Translation: strata.Vec(10, 10),
			Content: primitive.Group{Primitives: []primitive.Primitive{
				primitive.Image{
					Handle: raster,
					Bounds: strata.Rectangle{X: 0, Y: 0, Width: 20, Height: 20},
				},
				primitive.Svg{
					Handle: vector,
					Bounds: strata.Rectangle{X: 30, Y: 0, Width: 20, Height: 20},
				},
			}},
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers[0].Images) != 2 {
		t.Fatalf("len(images) = %d, want 2", len(layers[0].Images))
	}

	first := layers[0].Images[0]
	if first.Kind != ImageRaster || first.Handle.ID() != raster.ID() {
		t.Errorf("first record = %v %#x, want Raster %#x", first.Kind, first.Handle.ID(), raster.ID())
	}
	want := strata.Rectangle{X: 10, Y: 10, Width: 20, Height: 20}
	if !approxEqualRect(first.Bounds, want) {
		t.Errorf("first bounds = %v, want %v", first.Bounds, want)
	}

	second := layers[0].Images[1]
	if second.Kind != ImageVector {
		t.Errorf("second record kind = %v, want Vector", second.Kind)
	}
}

func TestGenerateGroupPreservesOrder(t *testing.T) {
	tree := []primitive.Primitive{
		primitive.Group{Primitives: []primitive.Primitive{
			quadAt(0, 0, 1, 1),
			primitive.None{},
			primitive.Cache{Content: quadAt(10, 0, 1, 1)},
			primitive.Group{Primitives: []primitive.Primitive{
				quadAt(20, 0, 1, 1),
			}},
		}},
		quadAt(30, 0, 1, 1),
	}

	layers := Generate(tree, testViewport())

	if len(layers[0].Quads) != 4 {
		t.Fatalf("len(quads) = %d, want 4", len(layers[0].Quads))
	}

	for i, wantX := range []float32{0, 10, 20, 30} {
		if got := layers[0].Quads[i].Position[0]; got != wantX {
			t.Errorf("quad %d at x=%v, want %v (depth-first order violated)", i, got, wantX)
		}
	}
}

func TestGenerateCacheIsTransparent(t *testing.T) {
	direct := Generate([]primitive.Primitive{
		primitive.Translate{Translation: strata.Vec(5, 5), Content: quadAt(0, 0, 10, 10)},
	}, testViewport())

	cached := Generate([]primitive.Primitive{
		primitive.Cache{Content: primitive.Translate{
			Translation: strata.Vec(5, 5),
			Content:     quadAt(0, 0, 10, 10),
		}},
	}, testViewport())

	if len(direct[0].Quads) != 1 || len(cached[0].Quads) != 1 {
		t.Fatal("expected one quad on both sides")
	}
	if direct[0].Quads[0] != cached[0].Quads[0] {
		t.Errorf("cached quad = %+v, direct quad = %+v", cached[0].Quads[0], direct[0].Quads[0])
	}
}

func TestGenerateTransformInsideClip(t *testing.T) {
	// The transform accumulated outside a clip applies to the clip bounds
	// and keeps applying inside the new layer.
	tree := []primitive.Primitive{
		primitive.Translate{
			Translation: strata.Vec(100, 0),
			Content: primitive.Clip{
				Bounds:  strata.Rectangle{X: 0, Y: 0, Width: 50, Height: 50},
				Content: quadAt(10, 10, 5, 5),
			},
		},
	}

	layers := Generate(tree, testViewport())

	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}

	wantBounds := strata.Rectangle{X: 100, Y: 0, Width: 50, Height: 50}
	if layers[1].Bounds != wantBounds {
		t.Errorf("clip bounds = %v, want %v", layers[1].Bounds, wantBounds)
	}

	q := layers[1].Quads[0]
	if q.Position != [2]float32{110, 10} {
		t.Errorf("quad position = %v, want [110 10]", q.Position)
	}
}

func TestOverlay(t *testing.T) {
	l := Overlay([]string{"fps: 60"}, testViewport())

	if l.Bounds != (strata.Rectangle{Width: 300, Height: 300}) {
		t.Errorf("overlay bounds = %v, want full viewport", l.Bounds)
	}
	if len(l.Text) != 2 {
		t.Fatalf("len(text) = %d, want 2", len(l.Text))
	}

	shadow, foreground := l.Text[0], l.Text[1]

	if shadow.Content != "fps: 60" || foreground.Content != "fps: 60" {
		t.Errorf("contents = %q, %q", shadow.Content, foreground.Content)
	}
	if shadow.Color != [4]float32{0, 0, 0, 1} {
		t.Errorf("shadow color = %v, want black", shadow.Color)
	}
	if foreground.Color != [4]float32{0.9, 0.9, 0.9, 1} {
		t.Errorf("foreground color = %v, want light gray", foreground.Color)
	}

	// The copies differ only in color and a (-1,-1) offset.
	if shadow.Bounds.X != foreground.Bounds.X-1 || shadow.Bounds.Y != foreground.Bounds.Y-1 {
		t.Errorf("shadow at (%v,%v), foreground at (%v,%v), want (-1,-1) offset",
			shadow.Bounds.X, shadow.Bounds.Y, foreground.Bounds.X, foreground.Bounds.Y)
	}
	if shadow.Size != foreground.Size || shadow.Font.Name() != foreground.Font.Name() {
		t.Error("shadow and foreground should differ only in color and position")
	}
}

func TestOverlayLineSpacing(t *testing.T) {
	l := Overlay([]string{"a", "b", "c"}, testViewport())

	if len(l.Text) != 6 {
		t.Fatalf("len(text) = %d, want 6", len(l.Text))
	}

	// Foreground copies are the odd indices; lines advance by 25.
	for i := 0; i < 3; i++ {
		fg := l.Text[2*i+1]
		wantY := float32(11 + 25*i)
		if fg.Bounds.Y != wantY {
			t.Errorf("line %d at y=%v, want %v", i, fg.Bounds.Y, wantY)
		}
	}
}
