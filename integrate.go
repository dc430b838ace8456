package vectorcalc

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultEvaluations is the default number of subintervals the domain of
	// a curve is partitioned into.
	DefaultEvaluations = 100
	// DefaultDigits is the default number of decimal digits domain bounds are
	// truncated to.
	DefaultDigits = 10
)

// Field is a scalar field on ℝⁿ. A vector field is represented as a slice of
// fields, one per component. Fields must not modify x.
type Field func(x Vec) float64

// Options configures the quadrature routines. The zero value is not
// meaningful; start from [DefaultOptions].
type Options struct {
	// Evaluations is the number of equal-width parameter subintervals. More
	// subintervals trade speed for accuracy.
	Evaluations int
	// Digits is the number of decimal digits the domain bounds are truncated
	// to before partitioning, see [DomainTruncate].
	Digits int
	// Logger receives warnings about lossy domain truncation. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nil options are passed.
func DefaultOptions() Options {
	return Options{
		Evaluations: DefaultEvaluations,
		Digits:      DefaultDigits,
	}
}

func (opts *Options) resolve() (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Evaluations <= 0 {
		return o, fmt.Errorf("%w: Evaluations must be positive, got %d", ErrInvalidOptions, o.Evaluations)
	}
	if o.Digits < 0 {
		return o, fmt.Errorf("%w: Digits must be non-negative, got %d", ErrInvalidOptions, o.Digits)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o, nil
}

// truncatedDomain returns the truncated domain of c, logging a warning if the
// truncation is lossy.
func truncatedDomain(c Parametric, o Options) (float64, float64) {
	begin, end := c.Domain()
	a, b, ok := DomainTruncate(begin, end, o.Digits)
	if !ok {
		o.Logger.Warn("domain truncation error exceeds 1%; increase Digits",
			"begin", begin,
			"end", end,
			"digits", o.Digits)
	}
	return a, b
}

// midpointRule partitions [a, b] into n subintervals and calls step with the
// value of c at the midpoint and both ends of each subinterval, summing the
// results.
//
// Parameters are clamped into the domain of c, as truncation may move a
// slightly below it. Each node is evaluated once and shared by the
// neighbouring subintervals.
func midpointRule(c Parametric, a, b float64, n int, step func(mid, p0, p1 Vec) float64) (float64, error) {
	begin, end := c.Domain()
	at := func(t float64) (Vec, error) {
		t = min(max(t, begin), end)
		v, err := c.Value(t)
		if err != nil {
			return nil, fmt.Errorf("evaluating curve at %g: %w", t, err)
		}
		return v, nil
	}

	h := (b - a) / float64(n)
	p0, err := at(a)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		p1, err := at(a + float64(i+1)*h)
		if err != nil {
			return 0, err
		}
		mid, err := at(a + h/2 + float64(i)*h)
		if err != nil {
			return 0, err
		}
		sum += step(mid, p0, p1)
		p0 = p1
	}
	return sum, nil
}

// ScalarIntegrate computes the line integral ∫_C f ds of the scalar field f
// along c, using the midpoint rule on the arc length element. The arc length
// of each subinterval is approximated by its chord.
//
// The result converges to the analytic integral as opts.Evaluations grows,
// up to the bias introduced by truncating the domain. If opts is nil,
// [DefaultOptions] is used.
func ScalarIntegrate(c Parametric, f Field, opts *Options) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: field is nil", ErrInvalidParametrization)
	}
	o, err := opts.resolve()
	if err != nil {
		return 0, err
	}
	a, b := truncatedDomain(c, o)
	return midpointRule(c, a, b, o.Evaluations, func(mid, p0, p1 Vec) float64 {
		return f(mid) * p0.Distance(p1)
	})
}

// VectorIntegrate computes the line integral ∫_C F · dr of the vector field
// field along c, using the midpoint rule. field must have one component per
// dimension of c, or [ErrDimensionMismatch] is returned.
//
// The displacement of each subinterval is signed, so traversing a curve in
// the opposite direction negates the result. If opts is nil,
// [DefaultOptions] is used.
func VectorIntegrate(c Parametric, field []Field, opts *Options) (float64, error) {
	if len(field) != c.Dim() {
		return 0, fmt.Errorf("%w: vector field has %d components but curve has %d dimensions",
			ErrDimensionMismatch, len(field), c.Dim())
	}
	for i, f := range field {
		if f == nil {
			return 0, fmt.Errorf("%w: field component %d is nil", ErrInvalidParametrization, i)
		}
	}
	o, err := opts.resolve()
	if err != nil {
		return 0, err
	}
	a, b := truncatedDomain(c, o)
	return midpointRule(c, a, b, o.Evaluations, func(mid, p0, p1 Vec) float64 {
		var work float64
		for j, f := range field {
			work += f(mid) * (p1[j] - p0[j])
		}
		return work
	})
}

func one(Vec) float64 { return 1 }

// Length returns the arc length of c. It is equivalent to integrating the
// constant field 1 along c using [ScalarIntegrate], which reduces to summing
// the chord lengths of the partition.
func Length(c Parametric, opts *Options) (float64, error) {
	return ScalarIntegrate(c, one, opts)
}
