package vectorcalc_test

import (
	"fmt"
	"math"

	"honnef.co/go/vectorcalc"
)

func ExampleScalarIntegrate() {
	// The line segment from (-2, -1) to (1, 2).
	c, err := vectorcalc.NewCurve([]float64{0, 1},
		func(t float64) float64 { return 3*t - 2 },
		func(t float64) float64 { return 3*t - 1 },
	)
	if err != nil {
		panic(err)
	}
	f := func(x vectorcalc.Vec) float64 { return 4 * math.Pow(x[0], 3) }
	v, err := vectorcalc.ScalarIntegrate(c, f, &vectorcalc.Options{Evaluations: 1000, Digits: 10})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", v)
	// Output:
	// -21.213
}

func ExampleVectorIntegrate() {
	c, err := vectorcalc.NewCurve([]float64{0, 1},
		func(t float64) float64 { return t },
		func(t float64) float64 { return t * t },
		func(t float64) float64 { return t * t * t },
	)
	if err != nil {
		panic(err)
	}
	field := []vectorcalc.Field{
		func(x vectorcalc.Vec) float64 { return 8 * x[0] * x[0] * x[1] * x[2] },
		func(x vectorcalc.Vec) float64 { return 5 * x[2] },
		func(x vectorcalc.Vec) float64 { return -4 * x[0] * x[1] },
	}
	w, err := vectorcalc.VectorIntegrate(c, field, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", w)
	// Output:
	// 1.000
}

func ExampleLength() {
	c, err := vectorcalc.NewCurve([]float64{1, 4},
		func(t float64) float64 { return t },
		func(t float64) float64 { return 2.0 / 3.0 * math.Pow(t-1, 1.5) },
	)
	if err != nil {
		panic(err)
	}
	l, err := vectorcalc.Length(c, &vectorcalc.Options{Evaluations: 1000, Digits: 10})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", l)
	// Output:
	// 4.667
}

func ExampleCurve_Join() {
	first, err := vectorcalc.NewCurve([]float64{0, 1},
		func(float64) float64 { return 1 },
		func(t float64) float64 { return t },
	)
	if err != nil {
		panic(err)
	}
	second, err := vectorcalc.NewCurve([]float64{1, 3},
		func(float64) float64 { return 1 },
		func(t float64) float64 { return 2*t - 1 },
	)
	if err != nil {
		panic(err)
	}
	c, err := first.Join(second)
	if err != nil {
		panic(err)
	}
	for _, t := range []float64{1, 3} {
		v, _ := c.Value(t)
		fmt.Println(t, v)
	}
	fmt.Println(c.Breakpoints())

	_, err = second.Join(first)
	fmt.Println(err)
	// Output:
	// 1 ⟨1, 1⟩
	// 3 ⟨1, 5⟩
	// [0 1 3]
	// vectorcalc: domain of second curve does not begin at the end of the first curve: 0 != 3
}
