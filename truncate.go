package vectorcalc

import "math"

// MaxTruncationError is the largest relative error that [DomainTruncate]
// tolerates before reporting the truncation as lossy.
const MaxTruncationError = 0.01

// Truncate rounds f down to the given number of decimal digits, towards
// negative infinity. A negative number of digits rounds to tens, hundreds,
// and so on.
//
// Non-finite values are returned unchanged, as are values that cannot be
// scaled without overflowing.
func Truncate(f float64, digits int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(digits))
	scaled := f * scale
	if math.IsInf(scaled, 0) || scale == 0 {
		return f
	}
	r := math.Floor(scaled)
	// f*scale rounds to just below an integer for some f that already have
	// the requested number of digits, such as 0.29.
	if up := (r + 1) / scale; up <= f {
		return up
	}
	return r / scale
}

// DomainTruncate truncates the domain bounds a and b to the given number of
// decimal digits, using [Truncate].
//
// ok is false if the relative truncation error of either non-zero bound
// exceeds [MaxTruncationError]. The truncated bounds are returned regardless,
// and callers should use more digits if they care about the bias this
// introduces.
func DomainTruncate(a, b float64, digits int) (ta, tb float64, ok bool) {
	ta = Truncate(a, digits)
	tb = Truncate(b, digits)
	ok = relativeError(a, ta) <= MaxTruncationError &&
		relativeError(b, tb) <= MaxTruncationError
	return ta, tb, ok
}

func relativeError(exact, approx float64) float64 {
	if exact == 0 {
		return 0
	}
	return math.Abs((exact - approx) / exact)
}
