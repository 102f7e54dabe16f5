package geom

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// ToAff3 converts a transform to the row-major 2x3 form used by
// golang.org/x/image/math/f64 (and accepted by x/image/draw
// transformers). The bottom row of the transform is dropped; for a
// well-formed transform it is (0, 0, 1), which Aff3 keeps implicit.
func ToAff3(a Affine2D[float64]) f64.Aff3 {
	m := a.Mat()
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// FromAff3 converts a row-major 2x3 affine matrix to a transform,
// restoring the implicit (0, 0, 1) bottom row.
func FromAff3(m f64.Aff3) Affine2D[float64] {
	return FromParts(
		Mat2FromCols(V2(m[0], m[3]), V2(m[1], m[4])),
		V2(m[2], m[5]),
	)
}

// ToAff3f is ToAff3 for float32 transforms and
// golang.org/x/image/math/f32.
func ToAff3f(a Affine2D[float32]) f32.Aff3 {
	m := a.Mat()
	return f32.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}

// FromAff3f is FromAff3 for float32 transforms and
// golang.org/x/image/math/f32.
func FromAff3f(m f32.Aff3) Affine2D[float32] {
	return FromParts(
		Mat2FromCols(V2(m[0], m[3]), V2(m[1], m[4])),
		V2(m[2], m[5]),
	)
}
