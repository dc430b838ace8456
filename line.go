package vectorcalc

import "fmt"

// NewLine returns the line segment from p0 to p1, parametrized over [0, 1] by
// linear interpolation.
func NewLine(p0, p1 Vec) (*Curve, error) {
	return newLine(p0, p1, 0)
}

func newLine(p0, p1 Vec, begin float64) (*Curve, error) {
	if len(p0) != len(p1) {
		return nil, fmt.Errorf("%w: line from %s to %s", ErrDimensionMismatch, p0, p1)
	}
	p0, p1 = append(Vec(nil), p0...), append(Vec(nil), p1...)
	funcs := make([]RealFunction, len(p0))
	for i := range funcs {
		x0, x1 := p0[i], p1[i]
		funcs[i] = func(t float64) float64 {
			t -= begin
			if t == 1 {
				// Hit the end point exactly, so that lines can be joined.
				return x1
			}
			return x0 + t*(x1-x0)
		}
	}
	return NewCurve([]float64{begin, begin + 1}, funcs...)
}

// NewPolyline returns the curve that visits points in order, consisting of
// one line segment per pair of consecutive points. The segment from points[i]
// to points[i+1] is parametrized over [i, i+1].
//
// At least two points are required.
func NewPolyline(points ...Vec) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidParametrization, len(points))
	}
	var out *Curve
	for i := range points[1:] {
		l, err := newLine(points[i], points[i+1], float64(i))
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = l
			continue
		}
		// Joining is exact: each line starts exactly at the previous end.
		if out, err = out.JoinWithin(l, 0); err != nil {
			return nil, err
		}
	}
	return out, nil
}
