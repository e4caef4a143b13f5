package invert

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// product of a and b, for verifying A * inv(A) ~= I.
func mul(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}

// ==============================
// Method agreement and correctness
// ==============================

func TestMethodsAgree(t *testing.T) {
	cases := []struct {
		name string
		m    *mat.Dense
	}{
		{"2x2", mat.NewDense(2, 2, []float64{89, 56, 43, 2})},
		{"3x3", mat.NewDense(3, 3, []float64{
			4, 7, 2,
			3, 6, 1,
			2, 5, 3,
		})},
	}
	methods := []struct {
		name string
		opt  Option
	}{
		{"auto", WithMethod(MethodAuto)},
		{"lu", WithMethod(MethodLU)},
		{"qr", WithMethod(MethodQR)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, _ := tc.m.Dims()
			var ref *mat.Dense
			for _, me := range methods {
				inv, err := Dense{}.Invert(tc.m, me.opt)
				if err != nil {
					t.Fatalf("%s: %v", me.name, err)
				}
				if !mat.EqualApprox(mul(tc.m, inv), eye(n), 1e-9) {
					t.Fatalf("%s: A*inv(A) != I:\n%v", me.name, mat.Formatted(mul(tc.m, inv)))
				}
				if ref == nil {
					ref = inv
					continue
				}
				if !mat.EqualApprox(inv, ref, 1e-9) {
					t.Fatalf("%s disagrees with auto:\n%v\nvs\n%v",
						me.name, mat.Formatted(inv), mat.Formatted(ref))
				}
			}
		})
	}
}

// Input must come back untouched after a successful inversion.
func TestInvertDoesNotMutateInput(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	orig := mat.DenseCopyOf(m)
	if _, err := (Dense{}).Invert(m, WithMethod(MethodLU)); err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if !mat.Equal(m, orig) {
		t.Fatalf("input mutated: %v", mat.Formatted(m))
	}
}

// ==============================
// Error taxonomy
// ==============================

func TestSingularDetection(t *testing.T) {
	sing := mat.NewDense(2, 2, []float64{1, 2, 2, 4}) // rank 1

	t.Run("auto", func(t *testing.T) {
		_, err := Dense{}.Invert(sing)
		var se *SingularError
		if !errors.As(err, &se) {
			t.Fatalf("expected SingularError, got %T: %v", err, err)
		}
	})

	t.Run("lu_zero_det", func(t *testing.T) {
		_, err := Dense{}.Invert(sing, WithMethod(MethodLU))
		var se *SingularError
		if !errors.As(err, &se) {
			t.Fatalf("expected SingularError, got %T: %v", err, err)
		}
		if !math.IsInf(se.Cond, 1) {
			t.Fatalf("exact singularity should report cond=+Inf, got %g", se.Cond)
		}
		if !errors.Is(err, mat.ErrSingular) {
			t.Fatalf("Unwrap should expose the primitive's singularity error")
		}
	})
}

func TestShapeError(t *testing.T) {
	_, err := Dense{}.Invert(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %T: %v", err, err)
	}
	if se.Rows != 2 || se.Cols != 3 {
		t.Fatalf("ShapeError dims wrong: %dx%d", se.Rows, se.Cols)
	}
}

func TestEmptyInput(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if _, err := (Dense{}).Invert(nil); !errors.Is(err, ErrEmpty) {
			t.Fatalf("expected ErrEmpty for nil, got %v", err)
		}
	})
	t.Run("zero_value", func(t *testing.T) {
		if _, err := (Dense{}).Invert(&mat.Dense{}); !errors.Is(err, ErrEmpty) {
			t.Fatalf("expected ErrEmpty for zero-value Dense, got %v", err)
		}
	})
}

func TestMaxCond(t *testing.T) {
	// Nearly dependent rows: condition number far beyond 1e3.
	ill := mat.NewDense(2, 2, []float64{1, 1, 1, 1 + 1e-10})
	_, err := Dense{}.Invert(ill, WithMaxCond(1e3))
	var se *SingularError
	if !errors.As(err, &se) {
		t.Fatalf("expected SingularError from cond limit, got %T: %v", err, err)
	}
	if se.Cond <= 1e3 {
		t.Fatalf("reported cond should exceed the limit, got %g", se.Cond)
	}
	if se.Unwrap() != nil {
		t.Fatalf("cond rejection wraps no primitive error, got %v", se.Unwrap())
	}

	// A well-conditioned matrix passes under the same limit.
	if _, err := (Dense{}).Invert(mat.NewDense(2, 2, []float64{2, 0, 0, 2}), WithMaxCond(1e3)); err != nil {
		t.Fatalf("well-conditioned input rejected: %v", err)
	}
}
