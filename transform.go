package geom

import "math"

// Affine2D is a 2D affine transformation: a 3x3 homogeneous matrix in
// column-major convention. Column 0 is the local x basis, column 1 the
// local y basis, column 2 holds the translation; row 2 of a well-formed
// transform is (0, 0, 1).
//
// Affine2D is a plain value. Reading one value from multiple goroutines
// is safe; mutating it through the Set* methods while other goroutines
// access it requires external synchronization.
type Affine2D[T Float] struct {
	m Mat3[T]
}

// Identity returns the identity transformation.
func Identity[T Float]() Affine2D[T] {
	return Affine2D[T]{m: Mat3Identity[T]()}
}

// Translation creates a transform that displaces points by v.
func Translation[T Float](v Vec2[T]) Affine2D[T] {
	return Affine2D[T]{m: Mat3[T]{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: v.X, Y: v.Y, Z: 1},
	}}
}

// Scaling creates a transform that scales points component-wise by v.
func Scaling[T Float](v Vec2[T]) Affine2D[T] {
	return Affine2D[T]{m: Mat3[T]{
		{X: v.X, Y: 0, Z: 0},
		{X: 0, Y: v.Y, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}}
}

// Rotation creates a counter-clockwise rotation by angle radians.
func Rotation[T Float](angle T) Affine2D[T] {
	sin, cos := math.Sincos(float64(angle))
	s, c := T(sin), T(cos)
	return Affine2D[T]{m: Mat3[T]{
		{X: c, Y: s, Z: 0},
		{X: -s, Y: c, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}}
}

// Reflection creates a transform that reflects points through the line
// passing through the origin with the given normal: I − 2·n·nᵗ.
// The normal must be unit length; otherwise a ViolationError is returned.
func Reflection[T Float](normal Vec2[T]) (Affine2D[T], error) {
	if !EqualApprox(normal.Dot(normal), T(1)) {
		return Affine2D[T]{}, &ViolationError{
			Op:  "geom.Reflection",
			Msg: "normal must be normalized",
		}
	}
	block := Mat2Identity[T]().Sub(Outer(normal, normal).MulScalar(2))
	return FromParts(block, Vec2[T]{}), nil
}

// Projection creates an orthographic projection mapping a view of the
// given size, centered on the origin, to the [-1,1] x [-1,1] range.
func Projection[T Float](size Vec2[T]) Affine2D[T] {
	return Scaling(Vec2[T]{X: 2 / size.X, Y: 2 / size.Y})
}

// FromParts assembles a transform from a 2x2 rotation/scaling block and
// a translation vector. Row 2 is set to (0, 0, 1).
// The inverse operation is RotationScaling and Translation.
func FromParts[T Float](block Mat2[T], translation Vec2[T]) Affine2D[T] {
	return Affine2D[T]{m: Mat3FromCols(
		V3(block[0], 0),
		V3(block[1], 0),
		V3(translation, 1),
	)}
}

// FromMat3 interprets an arbitrary 3x3 matrix as a transform.
// The matrix is taken as-is; no well-formedness check is performed.
func FromMat3[T Float](m Mat3[T]) Affine2D[T] {
	return Affine2D[T]{m: m}
}

// Mat returns the underlying 3x3 matrix.
func (a Affine2D[T]) Mat() Mat3[T] {
	return a.m
}

// RotationScaling returns the upper-left 2x2 block of the transform,
// including any scaling it carries.
func (a Affine2D[T]) RotationScaling() Mat2[T] {
	return Mat2FromCols(a.m[0].XY(), a.m[1].XY())
}

// Rotation returns the upper-left 2x2 block with each column normalized
// to unit length, recovering the pure rotation from a scaled rotation.
// The block is assumed to be a (possibly non-uniformly) scaled rotation;
// the result is unspecified if it contains shear.
func (a Affine2D[T]) Rotation() Mat2[T] {
	return Mat2FromCols(a.m[0].XY().Normalize(), a.m[1].XY().Normalize())
}

// Right returns the transform's local x axis in the parent frame
// (first two elements of column 0).
func (a Affine2D[T]) Right() Vec2[T] {
	return a.m[0].XY()
}

// SetRight assigns the transform's local x axis in place.
func (a *Affine2D[T]) SetRight(v Vec2[T]) {
	a.m[0].X, a.m[0].Y = v.X, v.Y
}

// Up returns the transform's local y axis in the parent frame
// (first two elements of column 1).
func (a Affine2D[T]) Up() Vec2[T] {
	return a.m[1].XY()
}

// SetUp assigns the transform's local y axis in place.
func (a *Affine2D[T]) SetUp(v Vec2[T]) {
	a.m[1].X, a.m[1].Y = v.X, v.Y
}

// Translation returns the translation part of the transform
// (first two elements of column 2).
func (a Affine2D[T]) Translation() Vec2[T] {
	return a.m[2].XY()
}

// SetTranslation assigns the translation part in place.
func (a *Affine2D[T]) SetTranslation(v Vec2[T]) {
	a.m[2].X, a.m[2].Y = v.X, v.Y
}

// InvertedEuclidean returns the inverse of a Euclidean (rigid) transform,
// one composed of rotation and translation only. It exploits that the
// inverse of a rotation is its transpose, which is significantly cheaper
// than a general 3x3 inversion.
//
// A ViolationError is returned if row 2 is not exactly (0, 0, 1) or the
// rotation/scaling block is not orthogonal within Epsilon — either means
// the transform is not rigid and the shortcut would produce a wrong result.
func (a Affine2D[T]) InvertedEuclidean() (Affine2D[T], error) {
	if a.m[0].Z != 0 || a.m[1].Z != 0 || a.m[2].Z != 1 {
		return Affine2D[T]{}, &ViolationError{
			Op:  "geom.Affine2D.InvertedEuclidean",
			Msg: "unexpected values on last row",
		}
	}
	inverseRotation := a.RotationScaling().Transposed()
	if !inverseRotation.Mul(a.RotationScaling()).EqualApprox(Mat2Identity[T]()) {
		return Affine2D[T]{}, &ViolationError{
			Op:  "geom.Affine2D.InvertedEuclidean",
			Msg: "matrix does not represent a Euclidean transformation",
		}
	}
	return FromParts(inverseRotation, inverseRotation.MulVec(a.Translation().Neg())), nil
}

// Mul returns the composition a·b: the transform that applies b first,
// then a.
func (a Affine2D[T]) Mul(b Affine2D[T]) Affine2D[T] {
	return Affine2D[T]{m: a.m.Mul(b.m)}
}

// TransformPoint applies the transform to a point. The point is treated
// as the homogeneous vector (X, Y, 1), so translation applies; the
// homogeneous coordinate is dropped from the result.
func (a Affine2D[T]) TransformPoint(p Point[T]) Point[T] {
	v := a.m.MulVec(Vec3[T]{X: p.X, Y: p.Y, Z: 1})
	return Point[T]{X: v.X, Y: v.Y}
}

// TransformVec applies only the linear part of the transform to a
// displacement vector; translation does not apply.
func (a Affine2D[T]) TransformVec(v Vec2[T]) Vec2[T] {
	return a.RotationScaling().MulVec(v)
}

// EqualApprox reports whether two transforms are equal within Epsilon,
// element-wise.
func (a Affine2D[T]) EqualApprox(b Affine2D[T]) bool {
	return a.m.EqualApprox(b.m)
}

// String formats the transform like the underlying matrix.
func (a Affine2D[T]) String() string {
	return a.m.String()
}

// MarshalText encodes the transform as the underlying matrix.
func (a Affine2D[T]) MarshalText() ([]byte, error) {
	return a.m.MarshalText()
}

// UnmarshalText decodes the transform from the underlying matrix format.
func (a *Affine2D[T]) UnmarshalText(text []byte) error {
	return a.m.UnmarshalText(text)
}
