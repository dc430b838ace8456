package vectorcalc

import (
	"fmt"
	"math"
)

// SolveITP uses the [ITP method] to find a root of the function f in [a, b],
// to within epsilon. ya and yb are f(a) and f(b), which must have opposite
// signs, with ya < 0 < yb.
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and
// because this value is known to work well for arc length problems.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection. When the function is smooth, a
// value of 1 gives the secant method more of a chance to engage. The paper
// suggests 0.2 / (b - a) for k1.
//
// When the function is monotonic, the returned result is guaranteed to be
// within epsilon of the zero crossing. For more detailed analysis, see [An
// Enhancement of the Bisection Method Average Performance Preserving Minmax
// Optimality].
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a, b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya, yb float64,
) float64 {
	nHalf := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	scaledEpsilon := math.Ldexp(epsilon, n0+nHalf)
	for b-a > 2.0*epsilon {
		mid := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		// Interpolation (regula falsi).
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		// Truncation, with k2 = 2.
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}
		// Projection onto the minmax interval.
		x := xt
		if math.Abs(xt-mid) > r {
			x = mid - math.Copysign(r, sigma)
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// windowed restricts a parametric curve to a subset of its domain.
type windowed struct {
	Parametric
	begin, end float64
}

func (w windowed) Domain() (float64, float64) { return w.begin, w.end }

// arclen measures the arc length of c between t0 and t1, without truncating
// the bounds.
func arclen(c Parametric, t0, t1 float64, n int) (float64, error) {
	return midpointRule(windowed{c, t0, t1}, t0, t1, n, func(_, p0, p1 Vec) float64 {
		return p0.Distance(p1)
	})
}

// SolveForArclen solves for the parameter at which the arc length measured
// from the beginning of the curve equals s. The result is accurate to the
// given accuracy, measured in units of arc length. Arc lengths are estimated
// with opts.Evaluations subintervals over the curve's exact domain; unlike
// [Length], the domain isn't truncated to opts.Digits.
//
// Arc lengths of t ↦ [a, t] are measured incrementally, reusing the previous
// measurement, and the root is found using [SolveITP]. Values of s ≤ 0 return
// the beginning of the domain and values of s exceeding the length of the
// curve return the end.
func SolveForArclen(c Parametric, s float64, accuracy float64, opts *Options) (float64, error) {
	if !(accuracy > 0) {
		return 0, fmt.Errorf("%w: accuracy must be positive, got %g", ErrInvalidOptions, accuracy)
	}
	o, err := opts.resolve()
	if err != nil {
		return 0, err
	}
	begin, end := c.Domain()
	if s <= 0 || end == begin {
		return begin, nil
	}
	total, err := arclen(c, begin, end, o.Evaluations)
	if err != nil {
		return 0, err
	}
	if s >= total {
		return end, nil
	}

	var ferr error
	tLast := begin
	arclenLast := 0.0
	f := func(t float64) float64 {
		if ferr != nil {
			return 0
		}
		var arc float64
		if t > tLast {
			arc, ferr = arclen(c, tLast, t, o.Evaluations)
		} else {
			arc, ferr = arclen(c, t, tLast, o.Evaluations)
			arc = -arc
		}
		arclenLast += arc
		tLast = t
		return arclenLast - s
	}
	width := end - begin
	// Keep epsilon representable relative to the bounds, or the bracket
	// cannot shrink far enough to terminate.
	epsilon := max(accuracy/total*width, 1e-14*max(width, math.Abs(begin), math.Abs(end)))
	t := SolveITP(f, begin, end, epsilon, 1, 0.2/width, -s, total-s)
	if ferr != nil {
		return 0, ferr
	}
	return t, nil
}
