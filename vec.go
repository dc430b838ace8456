package vectorcalc

import (
	"fmt"
	"math"
	"strings"
)

// Vec is a vector in ℝⁿ. It doubles as a point, the value of a curve at a
// parameter.
//
// Binary operations require both operands to have the same length and panic
// otherwise.
type Vec []float64

// V returns the vector ⟨xs...⟩.
func V(xs ...float64) Vec {
	return Vec(xs)
}

func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("⟩")
	return sb.String()
}

func (v Vec) mustMatch(o Vec) {
	if len(v) != len(o) {
		panic(fmt.Sprintf("vector length mismatch: %d != %d", len(v), len(o)))
	}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	v.mustMatch(o)
	var sum float64
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	switch len(v) {
	case 1:
		return math.Abs(v[0])
	case 2:
		return math.Hypot(v[0], v[1])
	default:
		return math.Sqrt(v.Hypot2())
	}
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Hypot].
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two points.
func (v Vec) Distance(o Vec) float64 {
	return o.Sub(v).Hypot()
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	v.mustMatch(o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub computes v−o.
func (v Vec) Sub(o Vec) Vec {
	v.mustMatch(o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

// Mul multiplies the vector by f and returns the resulting vector.
func (v Vec) Mul(f float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * f
	}
	return out
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (v Vec) Midpoint(o Vec) Vec {
	return v.Lerp(o, 0.5)
}

// Equal reports whether v and o have the same length and all their
// components are within tol of each other. The comparison is relative for
// components larger than 1 in magnitude, and absolute otherwise. With tol ==
// 0, the components must be identical.
func (v Vec) Equal(o Vec, tol float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] == o[i] {
			continue
		}
		scale := max(1, math.Abs(v[i]), math.Abs(o[i]))
		if !(math.Abs(v[i]-o[i]) <= tol*scale) {
			return false
		}
	}
	return true
}

// IsInf reports whether at least one component is infinite.
func (v Vec) IsInf() bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (v Vec) IsNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
