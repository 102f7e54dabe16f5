package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Mat3 is a 3x3 matrix over the scalar type T, stored column-major:
// m[0] is the first column, m[1] the second, m[2] the third.
// The zero value is the zero matrix.
type Mat3[T Float] [3]Vec3[T]

// Mat3FromCols creates a Mat3 from three column vectors.
func Mat3FromCols[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Float]() Mat3[T] {
	return Mat3Uniform(T(1))
}

// Mat3Uniform returns the diagonal matrix v·I.
func Mat3Uniform[T Float](v T) Mat3[T] {
	return Mat3[T]{
		{X: v, Y: 0, Z: 0},
		{X: 0, Y: v, Z: 0},
		{X: 0, Y: 0, Z: v},
	}
}

// Col returns column i.
func (m Mat3[T]) Col(i int) Vec3[T] {
	return m[i]
}

// At returns the element in the given row and column.
func (m Mat3[T]) At(row, col int) T {
	switch row {
	case 0:
		return m[col].X
	case 1:
		return m[col].Y
	default:
		return m[col].Z
	}
}

// Set assigns the element in the given row and column.
func (m *Mat3[T]) Set(row, col int, v T) {
	switch row {
	case 0:
		m[col].X = v
	case 1:
		m[col].Y = v
	default:
		m[col].Z = v
	}
}

// Mul returns the matrix product m·n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m[0].Mul(v.X).Add(m[1].Mul(v.Y)).Add(m[2].Mul(v.Z))
}

// Transposed returns the transpose of the matrix.
func (m Mat3[T]) Transposed() Mat3[T] {
	return Mat3[T]{
		{X: m[0].X, Y: m[1].X, Z: m[2].X},
		{X: m[0].Y, Y: m[1].Y, Z: m[2].Y},
		{X: m[0].Z, Y: m[1].Z, Z: m[2].Z},
	}
}

// Sub returns the element-wise difference m−n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// MulScalar returns the matrix scaled element-wise by s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{m[0].Mul(s), m[1].Mul(s), m[2].Mul(s)}
}

// EqualApprox reports whether two matrices are equal within Epsilon,
// element-wise.
func (m Mat3[T]) EqualApprox(n Mat3[T]) bool {
	return m[0].EqualApprox(n[0]) && m[1].EqualApprox(n[1]) && m[2].EqualApprox(n[2])
}

// String formats the matrix row by row, rows separated by semicolons.
func (m Mat3[T]) String() string {
	var b strings.Builder
	b.WriteString("Mat3(")
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("; ")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.At(row, col))
		}
	}
	b.WriteString(")")
	return b.String()
}

// MarshalText encodes the matrix as nine space-separated scalars listed
// row by row (row 0 left to right, then row 1, then row 2).
func (m Mat3[T]) MarshalText() ([]byte, error) {
	var b []byte
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if len(b) > 0 {
				b = append(b, ' ')
			}
			b = strconv.AppendFloat(b, float64(m.At(row, col)), 'g', -1, bitSize[T]())
		}
	}
	return b, nil
}

// UnmarshalText decodes a matrix from the format produced by MarshalText.
func (m *Mat3[T]) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 9 {
		return fmt.Errorf("geom: Mat3 text needs 9 fields, got %d", len(fields))
	}
	var parsed Mat3[T]
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, bitSize[T]())
		if err != nil {
			return fmt.Errorf("geom: Mat3 field %d: %w", i, err)
		}
		parsed.Set(i/3, i%3, T(v))
	}
	*m = parsed
	return nil
}
