package geom

import "math"

// Vec2 is a 2-component vector over the scalar type T.
// Unlike Point which represents a position, Vec2 represents a direction
// and magnitude; translation leaves it untouched.
type Vec2[T Float] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vec2[T]) Length() T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2[T]) Normalize() Vec2[T] {
	length := v.Length()
	if length == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{X: v.X / length, Y: v.Y / length}
}

// EqualApprox reports whether two vectors are equal within Epsilon,
// component-wise.
func (v Vec2[T]) EqualApprox(w Vec2[T]) bool {
	return EqualApprox(v.X, w.X) && EqualApprox(v.Y, w.Y)
}

// Vec3 is a 3-component vector over the scalar type T.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 creates a Vec3 by appending a scalar to a Vec2.
func V3[T Float](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// XY returns the first two components as a Vec2.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the negation of the vector.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the length (magnitude) of the vector.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// EqualApprox reports whether two vectors are equal within Epsilon,
// component-wise.
func (v Vec3[T]) EqualApprox(w Vec3[T]) bool {
	return EqualApprox(v.X, w.X) && EqualApprox(v.Y, w.Y) && EqualApprox(v.Z, w.Z)
}
