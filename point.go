package geom

// Point is a 2D point in homogeneous coordinates: a Point{X, Y} stands
// for the homogeneous vector (X, Y, 1), so that applying an Affine2D to
// it performs the full affine transform including translation.
// Use Vec2 for displacements, which translation must not affect.
type Point[T Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Vec returns the point's coordinates as a displacement from the origin.
func (p Point[T]) Vec() Vec2[T] {
	return Vec2[T]{X: p.X, Y: p.Y}
}

// Add returns the point displaced by v.
func (p Point[T]) Add(v Vec2[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Vec2[T] {
	return Vec2[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// EqualApprox reports whether two points are equal within Epsilon,
// component-wise.
func (p Point[T]) EqualApprox(q Point[T]) bool {
	return EqualApprox(p.X, q.X) && EqualApprox(p.Y, q.Y)
}
