// Package geom provides 2D transform math for Go.
//
// # Overview
//
// geom implements affine transformations in the plane on top of small
// fixed-size vector and matrix value types, generic over float32 and
// float64. It is designed to integrate with the GoGPU ecosystem and with
// golang.org/x/image/draw.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// Compose a rigid transform: rotate, then move.
//	m := geom.Translation(geom.V2(10.0, 20.0)).Mul(geom.Rotation(math.Pi / 4))
//
//	// Apply it to a point.
//	p := m.TransformPoint(geom.Pt(1.0, 0.0))
//
//	// Rigid transforms invert cheaply.
//	inv, err := m.InvertedEuclidean()
//
// # Conventions
//
// Matrices are column-major: column 0 is the local x basis, column 1 the
// local y basis, column 2 the translation. Angles are in radians,
// positive angles rotate counter-clockwise. Points are homogeneous
// (X, Y, 1); displacement vectors (Vec2) ignore translation.
//
// # Checked operations
//
// Reflection and InvertedEuclidean have preconditions and return a
// ViolationError when called outside their contract. The Must* wrappers
// panic instead, or — after SetStrict(false) — log through the package
// logger and return the identity fallback.
//
// # Concurrency
//
// All types are plain values with no internal synchronization.
// Concurrent reads are safe; concurrent mutation of the same value
// through the Set* methods requires external synchronization.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
