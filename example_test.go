// Package oneloop_test provides examples demonstrating the one-loop
// evaluation surface. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package oneloop_test

import (
	"fmt"

	"github.com/katalvlaran/oneloop"
)

// ExampleSession_OnePoint evaluates the massive tadpole at the default
// renormalization scale μ² = 1 and prints its Laurent coefficients.
func ExampleSession_OnePoint() {
	// 1) Create a caller-owned session with the package defaults.
	s, err := oneloop.NewSession()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Silence diagnostics for a clean example output.
	_ = s.SetLogLevel("quiet")

	// 3) Evaluate A₀ for internal mass 0.5.
	res, err := s.OnePoint(0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The single pole carries m² = 0.25 and the finite part
	//    m²(1 − ln m²).
	fmt.Printf("eps^-1 = %.6f\n", real(res.EpsilonMinus1()))
	fmt.Printf("eps^0  = %.6f\n", real(res.Epsilon0()))
	// Output:
	// eps^-1 = 0.250000
	// eps^0  = 0.596574
}

// ExampleSession_TwoPoint crosses the two-particle threshold: above
// p = (m1+m2)² the bubble develops an imaginary part from the Feynman
// −i0 prescription.
func ExampleSession_TwoPoint() {
	// 1) Create the session.
	s, err := oneloop.NewSession()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = s.SetLogLevel("quiet")

	// 2) Evaluate B₀ at p = 1 with masses 0.5 and 0.2; the threshold
	//    sits at (0.5+0.2)² = 0.49, so the point is absorptive.
	res, err := s.TwoPoint(1.0, 0.5, 0.2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the finite part to six digits.
	fmt.Printf("eps^0 = %.6f%+.6fi\n", real(res.Epsilon0()), imag(res.Epsilon0()))
	// Output:
	// eps^0 = 2.788787+2.140206i
}
