// Package invert wraps gonum's dense linear algebra as a pluggable
// matrix-inversion primitive.
//
// Implementations MUST validate shape before factorizing and report failures
// through the package error taxonomy (ShapeError, SingularError, ErrEmpty) so
// callers can match with errors.Is / errors.As. A successful Invert returns a
// freshly allocated matrix; the input is never mutated.
package invert

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Method selects the factorization used to compute the inverse.
type Method int

const (
	// MethodAuto uses gonum's Dense.Inverse (LU under the hood, with its
	// own conditioning check). The default.
	MethodAuto Method = iota

	// MethodLU factorizes with mat.LU and solves against the identity.
	// Detects exact singularity via a zero determinant before solving.
	MethodLU

	// MethodQR factorizes with mat.QR and solves against the identity.
	// Numerically sturdier on ill-conditioned input, at extra cost.
	MethodQR
)

// Options tune a single Invert call. Built from Option values; zero value
// means MethodAuto with no condition limit.
type Options struct {
	Method  Method
	MaxCond float64 // reject input whose 1-norm condition number exceeds this; 0 => no limit
}

// Option mutates Options. Callers of matcache.Inverse pass these through to
// the primitive verbatim.
type Option func(*Options)

// WithMethod selects the factorization.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithMaxCond rejects matrices whose 1-norm condition number exceeds limit.
// The rejection surfaces as a *SingularError carrying the estimate.
func WithMaxCond(limit float64) Option { return func(o *Options) { o.MaxCond = limit } }

// Inverter is the inversion primitive. Invert returns the inverse of m or an
// error from the package taxonomy; it must not mutate m.
type Inverter interface {
	Invert(m *mat.Dense, opts ...Option) (*mat.Dense, error)
}

// Dense is the default gonum-backed Inverter. The zero value is ready to use.
type Dense struct{}

var _ Inverter = Dense{}

func (Dense) Invert(m *mat.Dense, opts ...Option) (*mat.Dense, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if m == nil || m.IsEmpty() {
		return nil, ErrEmpty
	}
	r, c := m.Dims()
	if r != c {
		return nil, &ShapeError{Rows: r, Cols: c}
	}
	if o.MaxCond > 0 {
		if cond := mat.Cond(m, 1); cond > o.MaxCond {
			return nil, &SingularError{Cond: cond}
		}
	}

	switch o.Method {
	case MethodLU:
		return luInvert(m, r)
	case MethodQR:
		return qrInvert(m, r)
	default:
		return autoInvert(m)
	}
}

func autoInvert(m *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, asSingular(err)
	}
	return &inv, nil
}

func luInvert(m *mat.Dense, n int) (*mat.Dense, error) {
	var lu mat.LU
	lu.Factorize(m)
	if lu.Det() == 0 {
		return nil, &SingularError{Cond: math.Inf(1), Err: mat.ErrSingular}
	}
	inv := mat.NewDense(n, n, nil)
	if err := lu.SolveTo(inv, false, eye(n)); err != nil {
		return nil, asSingular(err)
	}
	return inv, nil
}

func qrInvert(m *mat.Dense, n int) (*mat.Dense, error) {
	var qr mat.QR
	qr.Factorize(m)
	inv := mat.NewDense(n, n, nil)
	if err := qr.SolveTo(inv, false, eye(n)); err != nil {
		return nil, asSingular(err)
	}
	return inv, nil
}

// asSingular maps gonum's singularity signals onto *SingularError and leaves
// anything else untouched.
func asSingular(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return &SingularError{Cond: float64(cond), Err: err}
	}
	if errors.Is(err, mat.ErrSingular) {
		return &SingularError{Cond: math.Inf(1), Err: err}
	}
	return err
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}
