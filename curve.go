package vectorcalc

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DefaultJoinTolerance is the tolerance used by [Curve.Join] when comparing
// the end point of one curve with the start point of the next.
const DefaultJoinTolerance = 1e-9

// RealFunction is one component of a curve's parametrization, mapping the
// curve parameter to a coordinate.
type RealFunction func(t float64) float64

// Parametric describes a curve parametrized by a scalar in a closed domain,
// mapping to ℝⁿ. It is the only view of a curve the quadrature routines need.
type Parametric interface {
	// Value evaluates the curve at parameter t, which must lie within the
	// domain.
	Value(t float64) (Vec, error)
	// Domain returns the bounds of the parameter domain.
	Domain() (begin, end float64)
	// Dim returns the dimension of the curve's codomain.
	Dim() int
}

type breakpoint struct {
	at    float64
	funcs []RealFunction
}

// Curve is a piecewise parametrized curve from a real interval to ℝⁿ.
//
// A curve consists of one or more segments. Each segment is governed by a
// tuple of component functions and is right-closed: the segment ending at
// breakpoint b covers (previous breakpoint, b], and the first breakpoint
// belongs to the first segment. Curves are immutable; [Curve.Join] returns a
// new curve and leaves its operands untouched, so curves are safe for
// concurrent use.
type Curve struct {
	// Strictly increasing by at. breaks[0].at is the begin of the domain and
	// breaks[len(breaks)-1].at is its end. A curve with an empty interior has
	// a single breakpoint.
	breaks []breakpoint
	dim    int
}

var _ Parametric = (*Curve)(nil)

// NewCurve returns a curve over the closed interval [domain[0], domain[1]],
// parametrized by funcs, one function per dimension.
//
// It returns [ErrInvalidDomain] if domain doesn't consist of exactly two
// finite points a ≤ b, and [ErrInvalidParametrization] if funcs is empty or
// contains nil functions.
func NewCurve(domain []float64, funcs ...RealFunction) (*Curve, error) {
	if len(domain) != 2 {
		return nil, fmt.Errorf("%w: got %d points", ErrInvalidDomain, len(domain))
	}
	a, b := domain[0], domain[1]
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w: [%g, %g] isn't finite", ErrInvalidDomain, a, b)
	}
	if !(b >= a) {
		return nil, fmt.Errorf("%w: end point %g is smaller than begin point %g", ErrInvalidDomain, b, a)
	}
	if len(funcs) == 0 {
		return nil, fmt.Errorf("%w: no component functions", ErrInvalidParametrization)
	}
	for i, f := range funcs {
		if f == nil {
			return nil, fmt.Errorf("%w: component %d is nil", ErrInvalidParametrization, i)
		}
	}

	funcs = slices.Clone(funcs)
	c := &Curve{
		breaks: []breakpoint{{a, funcs}},
		dim:    len(funcs),
	}
	if b != a {
		c.breaks = append(c.breaks, breakpoint{b, funcs})
	}
	return c, nil
}

// Begin returns the lower bound of the curve's domain.
func (c *Curve) Begin() float64 { return c.breaks[0].at }

// End returns the upper bound of the curve's domain.
func (c *Curve) End() float64 { return c.breaks[len(c.breaks)-1].at }

// Domain returns the bounds of the curve's domain.
func (c *Curve) Domain() (begin, end float64) { return c.Begin(), c.End() }

// Dim returns the dimension of the curve's codomain.
func (c *Curve) Dim() int { return c.dim }

// Breakpoints returns the domain points at which the parametrization may
// change, in increasing order. This includes both bounds of the domain.
func (c *Curve) Breakpoints() []float64 {
	out := make([]float64, len(c.breaks))
	for i, b := range c.breaks {
		out[i] = b.at
	}
	return out
}

// Segments returns the number of segments of the curve.
func (c *Curve) Segments() int {
	return max(len(c.breaks)-1, 1)
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve[%g, %g] → ℝ^%d (%d segments)", c.Begin(), c.End(), c.dim, c.Segments())
}

// segment returns the index of the breakpoint governing t, which is the
// smallest breakpoint ≥ t. t must lie within the domain.
func (c *Curve) segment(t float64) int {
	i, _ := slices.BinarySearchFunc(c.breaks, t, func(b breakpoint, t float64) int {
		return cmp.Compare(b.at, t)
	})
	return i
}

// eval evaluates the curve at t without checking the domain. t is clamped
// into the domain first.
func (c *Curve) eval(t float64) Vec {
	t = min(max(t, c.Begin()), c.End())
	return apply(c.breaks[c.segment(t)].funcs, t)
}

func apply(funcs []RealFunction, t float64) Vec {
	out := make(Vec, len(funcs))
	for i, f := range funcs {
		out[i] = f(t)
	}
	return out
}

func (c *Curve) contains(t float64) bool {
	return t >= c.Begin() && t <= c.End()
}

// Value evaluates the curve at t. It returns [ErrOutOfDomain] if t is outside
// of the curve's domain.
//
// A point exactly on an internal breakpoint is evaluated using the segment
// to its left.
func (c *Curve) Value(t float64) (Vec, error) {
	if !c.contains(t) {
		return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, t, c.Begin(), c.End())
	}
	return c.eval(t), nil
}

// StartPoint returns the value of the curve at [Curve.Begin].
func (c *Curve) StartPoint() Vec { return c.eval(c.Begin()) }

// EndPoint returns the value of the curve at [Curve.End].
func (c *Curve) EndPoint() Vec { return c.eval(c.End()) }

// Derivative approximates the curve's derivative at t using a central
// difference. The difference never crosses a breakpoint: at the bounds of the
// domain and at internal breakpoints it becomes one-sided, using the same
// segment as [Curve.Value].
func (c *Curve) Derivative(t float64) (Vec, error) {
	if !c.contains(t) {
		return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, t, c.Begin(), c.End())
	}
	// The begin bound belongs to the first segment.
	i := max(c.segment(t), min(1, len(c.breaks)-1))
	lo, hi := c.Begin(), c.breaks[i].at
	if i > 0 {
		lo = c.breaks[i-1].at
	}
	// The cube root of machine epsilon balances truncation and roundoff
	// error for central differences.
	h := 6.0554544523933395e-06 * max(1, math.Abs(t))
	t0 := max(t-h, lo)
	t1 := min(t+h, hi)
	if t1 == t0 {
		return make(Vec, c.dim), nil
	}
	funcs := c.breaks[i].funcs
	return apply(funcs, t1).Sub(apply(funcs, t0)).Mul(1 / (t1 - t0)), nil
}

// Join returns a new curve that traverses c followed by o. It is equivalent
// to JoinWithin(o, DefaultJoinTolerance).
func (c *Curve) Join(o *Curve) (*Curve, error) {
	return c.JoinWithin(o, DefaultJoinTolerance)
}

// JoinWithin returns a new curve that traverses c followed by o. Neither c
// nor o are modified.
//
// The domain of o must begin where the domain of c ends, or
// [ErrDomainMismatch] is returned. Both curves must have the same dimension,
// or [ErrDimensionMismatch] is returned. The curves must meet at the shared
// domain point: each component of o's start point must be within tol of the
// corresponding component of c's end point, relative to the magnitude of the
// components if they exceed 1. Otherwise, [ErrEndpointMismatch] is returned.
// A tolerance of 0 requires exact equality.
//
// Joining is associative, but not commutative.
func (c *Curve) JoinWithin(o *Curve, tol float64) (*Curve, error) {
	if o.Begin() != c.End() {
		return nil, fmt.Errorf("%w: %g != %g", ErrDomainMismatch, o.Begin(), c.End())
	}
	if o.dim != c.dim {
		return nil, fmt.Errorf("joining curves: %w: %d != %d", ErrDimensionMismatch, c.dim, o.dim)
	}
	if p, q := c.EndPoint(), o.StartPoint(); !p.Equal(q, tol) {
		return nil, fmt.Errorf("%w: %v != %v", ErrEndpointMismatch, p, q)
	}

	// o.breaks[0] coincides with our last breakpoint. We keep ours, which
	// keeps segments right-closed.
	breaks := make([]breakpoint, 0, len(c.breaks)+len(o.breaks)-1)
	breaks = append(breaks, c.breaks...)
	breaks = append(breaks, o.breaks[1:]...)
	return &Curve{breaks: breaks, dim: c.dim}, nil
}

// Join joins curves in order, as if by repeatedly calling [Curve.Join]. It
// returns [ErrInvalidParametrization] if no curves are provided.
func Join(curves ...*Curve) (*Curve, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: no curves to join", ErrInvalidParametrization)
	}
	out := curves[0]
	for i, o := range curves[1:] {
		var err error
		out, err = out.Join(o)
		if err != nil {
			return nil, fmt.Errorf("joining curve %d: %w", i+1, err)
		}
	}
	return out, nil
}

// Subcurve returns the part of the curve in [t0, t1], using the same
// parametrization. It returns [ErrOutOfDomain] if either bound lies outside
// of the domain and [ErrInvalidDomain] if t1 < t0.
func (c *Curve) Subcurve(t0, t1 float64) (*Curve, error) {
	if !c.contains(t0) || !c.contains(t1) {
		return nil, fmt.Errorf("%w: [%g, %g] not in [%g, %g]", ErrOutOfDomain, t0, t1, c.Begin(), c.End())
	}
	if t1 < t0 {
		return nil, fmt.Errorf("%w: end point %g is smaller than begin point %g", ErrInvalidDomain, t1, t0)
	}

	i0, i1 := c.segment(t0), c.segment(t1)
	breaks := []breakpoint{{t0, c.breaks[i0].funcs}}
	for _, b := range c.breaks[i0:i1] {
		if b.at > t0 {
			breaks = append(breaks, b)
		}
	}
	if t1 != t0 {
		breaks = append(breaks, breakpoint{t1, c.breaks[i1].funcs})
	}
	return &Curve{breaks: breaks, dim: c.dim}, nil
}
