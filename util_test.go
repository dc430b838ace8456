package vectorcalc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Vec, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %s, expected %s", got, want)
	}
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); !(d <= epsilon) {
		t.Errorf("got %v, expected %v (difference %g > %g)", got, want, d, epsilon)
	}
}

func mustCurve(t *testing.T, a, b float64, funcs ...RealFunction) *Curve {
	t.Helper()
	c, err := NewCurve([]float64{a, b}, funcs...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func constant(v float64) RealFunction {
	return func(float64) float64 { return v }
}

func identity(t float64) float64 { return t }
