package geom

import "math"

// Float is the scalar constraint for all geom types: any type whose
// underlying type is an IEEE 754 floating-point type.
type Float interface {
	~float32 | ~float64
}

// Epsilon returns the comparison tolerance for the scalar type T:
// 1e-5 for 32-bit scalars, 1e-12 for 64-bit scalars.
// All approximate comparisons in this package use it.
func Epsilon[T Float]() T {
	// 1 + 1e-10 rounds back to 1 in float32 precision but not in float64,
	// so this distinguishes the two without reflection.
	if T(1)+T(1e-10) == T(1) {
		return 1e-5
	}
	return 1e-12
}

// EqualApprox reports whether a and b are equal within Epsilon.
// Exactly equal values (including equal infinities) always compare true.
func EqualApprox[T Float](a, b T) bool {
	if a == b {
		return true
	}
	return T(math.Abs(float64(a-b))) <= Epsilon[T]()
}

// bitSize returns the IEEE bit width of T, for strconv formatting.
func bitSize[T Float]() int {
	if T(1)+T(1e-10) == T(1) {
		return 32
	}
	return 64
}
