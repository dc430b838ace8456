// Package vectorcalc provides parametric curves in ℝⁿ and numerical line
// integrals along them. It is intended for checking the sort of results one
// derives by hand in a vector calculus course, and for applications that need
// the arc length or the work done along a path given in closed form.
//
// # Curves
//
// A [Curve] maps a closed interval [a, b] to ℝⁿ using one [RealFunction] per
// dimension. Curves can be joined end to end with [Curve.Join], forming
// piecewise parametrizations. Joining requires the domains to be adjacent and
// the curves to meet at the shared point, and produces a new curve; curves are
// never modified after construction.
//
// Segments of a joined curve are right-closed. Evaluating a curve exactly at
// an internal breakpoint uses the parametrization of the segment ending there.
// Because joined curves are continuous, both choices agree up to the join
// tolerance.
//
// The quadrature routines accept any [Parametric], which [Curve] implements.
//
// # Quadrature
//
// [ScalarIntegrate] computes ∫_C f ds for a scalar [Field] f, [VectorIntegrate]
// computes ∫_C F · dr for a vector field F, and [Length] computes arc length.
// All three partition the domain into [Options.Evaluations] subintervals of
// equal width and apply the midpoint rule, approximating the arc length of
// each subinterval by its chord. The error for smooth curves is O(1/n²).
//
// Before partitioning, the domain bounds are rounded down to [Options.Digits]
// decimal digits (see [Truncate] and [DomainTruncate]), which makes the
// partition reproducible for irrational bounds such as π. If truncation
// changes a bound by more than 1%, a warning is logged to [Options.Logger].
//
// [SolveForArclen] inverts arc length, finding the parameter at which a given
// distance along the curve has been travelled.
//
// # Errors
//
// Invalid input is reported using the sentinel errors of this package, such as
// [ErrOutOfDomain], possibly wrapped with additional context. Use
// [errors.Is] to test for them.
package vectorcalc
