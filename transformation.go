package strata

// Transformation represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Transformations are immutable values: Translated and Scaled return new
// values and never modify the receiver. Composition is associative but not
// commutative.
type Transformation struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation, the neutral element
// under composition.
func Identity() Transformation {
	return Transformation{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Orthographic creates a projection mapping a width x height logical area
// onto the normalized device box [-1, 1] x [-1, 1], flipping the Y axis so
// that the logical top-left origin lands at the top of the device box.
// It is applied once per frame, not during tree flattening.
func Orthographic(width, height float32) Transformation {
	return Transformation{
		A: 2 / width, B: 0, C: -1,
		D: 0, E: -2 / height, F: 1,
	}
}

// Translate creates a pure translation.
func Translate(dx, dy float32) Transformation {
	return Transformation{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Scale creates a pure scale about the origin.
func Scale(sx, sy float32) Transformation {
	return Transformation{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Mul returns the composition t ∘ other: applying the result is equivalent
// to applying other first and t second. Not commutative.
func (t Transformation) Mul(other Transformation) Transformation {
	return Transformation{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Translated returns Translate(dx, dy) ∘ t: the offset is pre-applied in
// the accumulated (parent) coordinate space, so a child's local offset is
// expressed in terms of its parent during tree traversal.
func (t Transformation) Translated(dx, dy float32) Transformation {
	return Translate(dx, dy).Mul(t)
}

// Scaled returns Scale(sx, sy) ∘ t, following the same composition rule
// as Translated.
func (t Transformation) Scaled(sx, sy float32) Transformation {
	return Scale(sx, sy).Mul(t)
}

// TransformPoint applies the full transformation to a point.
func (t Transformation) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// TransformVector applies the linear part of the transformation to a
// vector, ignoring translation. Use it for directions, not positions.
func (t Transformation) TransformVector(v Vector) Vector {
	return Vector{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// TransformScalar applies the transformation to the vector (s, 0) and
// returns its x-component. This is how scalar magnitudes (border widths,
// corner radii, font sizes) scale under the accumulated transform.
//
// The result is exact only for axis-uniform scale. Under non-uniform scale
// it reports the x-axis factor as an approximation; downstream renderers
// are tuned against exactly these semantics, so do not "fix" this.
func (t Transformation) TransformScalar(s float32) float32 {
	return t.TransformVector(Vector{X: s, Y: 0}).X
}

// TransformRectangle transforms the top-left and bottom-right corners of a
// rectangle independently and reconstructs an axis-aligned rectangle from
// the results.
//
// This is not well-defined when the transformation contains anything other
// than translation and scale: an axis-aligned box cannot represent a
// rotated rectangle. Callers must only pass translate/scale transforms
// down this path.
func (t Transformation) TransformRectangle(r Rectangle) Rectangle {
	topLeft := t.TransformPoint(Point{X: r.X, Y: r.Y})
	bottomRight := t.TransformPoint(Point{X: r.X + r.Width, Y: r.Y + r.Height})

	return Rectangle{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  bottomRight.X - topLeft.X,
		Height: bottomRight.Y - topLeft.Y,
	}
}

// IsIdentity returns true if the transformation is the identity.
func (t Transformation) IsIdentity() bool {
	return t == Identity()
}

// Matrix returns the transformation as a 4x4 column-major matrix suitable
// for GPU upload.
func (t Transformation) Matrix() [16]float32 {
	return [16]float32{
		t.A, t.D, 0, 0,
		t.B, t.E, 0, 0,
		0, 0, 1, 0,
		t.C, t.F, 0, 1,
	}
}

// TranslateScale is a restricted transformation holding only a translation
// and a uniform scale. Where it applies, it is cheaper than Transformation
// and its TransformScalar is exact rather than approximate, since the scale
// is uniform by construction. Use it when the caller can statically
// guarantee no rotation or non-uniform scale.
type TranslateScale struct {
	Translation Vector
	Scale       float32
}

// IdentityTranslateScale returns the neutral TranslateScale.
func IdentityTranslateScale() TranslateScale {
	return TranslateScale{Scale: 1}
}

// Mul returns the composition ts ∘ other.
func (ts TranslateScale) Mul(other TranslateScale) TranslateScale {
	return TranslateScale{
		Translation: ts.Translation.Add(other.Translation.Mul(ts.Scale)),
		Scale:       ts.Scale * other.Scale,
	}
}

// Translated returns the transformation with an additional translation
// pre-applied in the accumulated coordinate space.
func (ts TranslateScale) Translated(dx, dy float32) TranslateScale {
	return TranslateScale{Translation: Vector{X: dx, Y: dy}, Scale: 1}.Mul(ts)
}

// Scaled returns the transformation with an additional uniform scale
// pre-applied in the accumulated coordinate space.
func (ts TranslateScale) Scaled(factor float32) TranslateScale {
	return TranslateScale{Scale: factor}.Mul(ts)
}

// TransformPoint applies the transformation to a point.
func (ts TranslateScale) TransformPoint(p Point) Point {
	return Point{
		X: p.X*ts.Scale + ts.Translation.X,
		Y: p.Y*ts.Scale + ts.Translation.Y,
	}
}

// TransformVector applies the scale to a vector, ignoring translation.
func (ts TranslateScale) TransformVector(v Vector) Vector {
	return v.Mul(ts.Scale)
}

// TransformScalar scales a scalar magnitude. Exact, since the scale is
// uniform.
func (ts TranslateScale) TransformScalar(s float32) float32 {
	return s * ts.Scale
}

// TransformRectangle applies the transformation to a rectangle.
func (ts TranslateScale) TransformRectangle(r Rectangle) Rectangle {
	topLeft := ts.TransformPoint(Point{X: r.X, Y: r.Y})
	return Rectangle{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  r.Width * ts.Scale,
		Height: r.Height * ts.Scale,
	}
}

// Transformation widens the restricted transform into a full
// Transformation value.
func (ts TranslateScale) Transformation() Transformation {
	return Transformation{
		A: ts.Scale, B: 0, C: ts.Translation.X,
		D: 0, E: ts.Scale, F: ts.Translation.Y,
	}
}
