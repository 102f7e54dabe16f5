package geom

import (
	"errors"
	"sync/atomic"
)

// ErrViolation matches any precondition violation via errors.Is.
var ErrViolation = errors.New("geom: precondition violation")

// ViolationError describes a violated precondition: a checked operation
// was called with arguments outside its contract. Violations are
// programming errors, not transient failures; retrying cannot help.
type ViolationError struct {
	Op  string // the operation that was called, e.g. "geom.Reflection"
	Msg string // which precondition failed
}

func (e *ViolationError) Error() string {
	return e.Op + ": " + e.Msg
}

func (e *ViolationError) Is(target error) bool {
	return target == ErrViolation
}

// strictMode selects the Must* wrapper behavior on violation:
// panic (strict) or log-and-fall-back (lenient).
var strictMode atomic.Bool

func init() {
	strictMode.Store(true)
}

// SetStrict selects how the Must* wrappers react to a precondition
// violation. In strict mode (the default) they panic. In lenient mode
// they log the violation at Warn through the package logger and return
// the identity transform as fallback.
//
// SetStrict is safe for concurrent use.
func SetStrict(strict bool) {
	strictMode.Store(strict)
}

// Strict reports whether strict mode is active.
func Strict() bool {
	return strictMode.Load()
}

// MustReflection is like Reflection but resolves violations according
// to the strict mode instead of returning an error.
func MustReflection[T Float](normal Vec2[T]) Affine2D[T] {
	a, err := Reflection(normal)
	if err != nil {
		return violated[T](err)
	}
	return a
}

// MustInvertedEuclidean is like InvertedEuclidean but resolves
// violations according to the strict mode instead of returning an error.
func (a Affine2D[T]) MustInvertedEuclidean() Affine2D[T] {
	inv, err := a.InvertedEuclidean()
	if err != nil {
		return violated[T](err)
	}
	return inv
}

// violated resolves a precondition violation: panic in strict mode,
// otherwise log and return the identity fallback.
func violated[T Float](err error) Affine2D[T] {
	if Strict() {
		panic(err)
	}
	Logger().Warn("precondition violation", "err", err)
	return Identity[T]()
}
