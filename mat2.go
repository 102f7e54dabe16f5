package geom

// Mat2 is a 2x2 matrix over the scalar type T, stored column-major:
// m[0] is the first column, m[1] the second.
type Mat2[T Float] [2]Vec2[T]

// Mat2FromCols creates a Mat2 from two column vectors.
func Mat2FromCols[T Float](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}
}

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity[T Float]() Mat2[T] {
	return Mat2[T]{
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}
}

// Outer returns the outer product a·bᵗ.
func Outer[T Float](a, b Vec2[T]) Mat2[T] {
	return Mat2[T]{a.Mul(b.X), a.Mul(b.Y)}
}

// Col returns column i.
func (m Mat2[T]) Col(i int) Vec2[T] {
	return m[i]
}

// Mul returns the matrix product m·n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return m[0].Mul(v.X).Add(m[1].Mul(v.Y))
}

// Transposed returns the transpose of the matrix.
func (m Mat2[T]) Transposed() Mat2[T] {
	return Mat2[T]{
		{X: m[0].X, Y: m[1].X},
		{X: m[0].Y, Y: m[1].Y},
	}
}

// Sub returns the element-wise difference m−n.
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// MulScalar returns the matrix scaled element-wise by s.
func (m Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{m[0].Mul(s), m[1].Mul(s)}
}

// EqualApprox reports whether two matrices are equal within Epsilon,
// element-wise.
func (m Mat2[T]) EqualApprox(n Mat2[T]) bool {
	return m[0].EqualApprox(n[0]) && m[1].EqualApprox(n[1])
}
