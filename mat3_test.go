package geom

import "testing"

func mat3Sequential() Mat3[float64] {
	// | 1 2 3 |
	// | 4 5 6 |
	// | 7 8 9 |
	return Mat3FromCols(
		Vec3[float64]{X: 1, Y: 4, Z: 7},
		Vec3[float64]{X: 2, Y: 5, Z: 8},
		Vec3[float64]{X: 3, Y: 6, Z: 9},
	)
}

func TestMat3At(t *testing.T) {
	m := mat3Sequential()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := float64(3*row + col + 1)
			if got := m.At(row, col); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestMat3Set(t *testing.T) {
	var m Mat3[float64]
	m.Set(1, 2, 42)
	if got := m.At(1, 2); got != 42 {
		t.Errorf("after Set(1,2,42): At(1,2) = %v", got)
	}
	if got := m[2].Y; got != 42 {
		t.Errorf("Set must write column-major storage: m[2].Y = %v, want 42", got)
	}
}

func TestMat3IdentityMul(t *testing.T) {
	id := Mat3Identity[float64]()
	m := mat3Sequential()
	if got := id.Mul(m); got != m {
		t.Errorf("I·m = %+v, want m", got)
	}
	if got := m.Mul(id); got != m {
		t.Errorf("m·I = %+v, want m", got)
	}
}

func TestMat3Uniform(t *testing.T) {
	m := Mat3Uniform(3.0)
	v := Vec3[float64]{X: 1, Y: -2, Z: 0.5}
	if got := m.MulVec(v); got != v.Mul(3) {
		t.Errorf("(3I)·v = %+v, want %+v", got, v.Mul(3))
	}
}

func TestMat3MulVec(t *testing.T) {
	m := mat3Sequential()
	got := m.MulVec(Vec3[float64]{X: 1, Y: 1, Z: 1})
	want := Vec3[float64]{X: 6, Y: 15, Z: 24}
	if got != want {
		t.Errorf("MulVec = %+v, want %+v", got, want)
	}
}

func TestMat3Transposed(t *testing.T) {
	m := mat3Sequential()
	tr := m.Transposed()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if tr.At(row, col) != m.At(col, row) {
				t.Errorf("Transposed().At(%d,%d) = %v, want %v",
					row, col, tr.At(row, col), m.At(col, row))
			}
		}
	}
	if got := tr.Transposed(); got != m {
		t.Errorf("double transpose = %+v, want original", got)
	}
}

func TestMat3SubMulScalar(t *testing.T) {
	m := mat3Sequential()
	if got := m.Sub(m); got != (Mat3[float64]{}) {
		t.Errorf("m.Sub(m) = %+v, want zero", got)
	}
	if got := m.MulScalar(2).Sub(m); got != m {
		t.Errorf("2m − m = %+v, want m", got)
	}
}

func TestMat3String(t *testing.T) {
	got := mat3Sequential().String()
	want := "Mat3(1, 2, 3; 4, 5, 6; 7, 8, 9)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMat3MarshalText(t *testing.T) {
	text, err := mat3Sequential().MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	want := "1 2 3 4 5 6 7 8 9"
	if string(text) != want {
		t.Errorf("MarshalText() = %q, want %q", text, want)
	}
}

func TestMat3TextRoundTrip(t *testing.T) {
	orig := Mat3FromCols(
		Vec3[float64]{X: 0.5, Y: -1.25, Z: 0},
		Vec3[float64]{X: 1e-3, Y: 2, Z: 0},
		Vec3[float64]{X: 3, Y: -4, Z: 1},
	)
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	var back Mat3[float64]
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error: %v", text, err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}

func TestMat3UnmarshalTextErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too few fields", "1 2 3"},
		{"too many fields", "1 2 3 4 5 6 7 8 9 10"},
		{"not a number", "1 2 3 4 x 6 7 8 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mat3[float64]
			if err := m.UnmarshalText([]byte(tt.text)); err == nil {
				t.Errorf("UnmarshalText(%q) = nil, want error", tt.text)
			}
		})
	}
}

func TestMat3UnmarshalTextKeepsValueOnError(t *testing.T) {
	m := mat3Sequential()
	if err := m.UnmarshalText([]byte("bad")); err == nil {
		t.Fatal("UnmarshalText should fail")
	}
	if m != mat3Sequential() {
		t.Errorf("failed UnmarshalText must not modify the receiver, got %+v", m)
	}
}

func TestMat3Float32TextRoundTrip(t *testing.T) {
	orig := Mat3FromCols(
		Vec3[float32]{X: 0.1, Y: 0.2, Z: 0},
		Vec3[float32]{X: -1.5, Y: 3, Z: 0},
		Vec3[float32]{X: 7, Y: 8, Z: 1},
	)
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	var back Mat3[float32]
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error: %v", text, err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}
