package vectorcalc

import "errors"

var (
	// ErrInvalidDomain indicates a domain interval that doesn't consist of
	// exactly two finite points a ≤ b.
	ErrInvalidDomain = errors.New("vectorcalc: domain must be two finite points a <= b")

	// ErrInvalidParametrization indicates a missing or nil function, either in
	// a curve's parametrization or in a vector field.
	ErrInvalidParametrization = errors.New("vectorcalc: parametrization must consist of non-nil functions")

	// ErrOutOfDomain indicates evaluation of a curve outside of its domain.
	ErrOutOfDomain = errors.New("vectorcalc: point is outside domain of curve")

	// ErrDomainMismatch indicates a join of two curves whose domains aren't
	// adjacent.
	ErrDomainMismatch = errors.New("vectorcalc: domain of second curve does not begin at the end of the first curve")

	// ErrEndpointMismatch indicates a join of two curves that don't meet at
	// the shared domain point.
	ErrEndpointMismatch = errors.New("vectorcalc: curves must join at endpoints")

	// ErrDimensionMismatch indicates operands of differing dimensions, such as
	// a vector field whose number of components doesn't match the curve.
	ErrDimensionMismatch = errors.New("vectorcalc: dimension mismatch")

	// ErrInvalidOptions indicates quadrature options that are out of range.
	ErrInvalidOptions = errors.New("vectorcalc: invalid options")
)
