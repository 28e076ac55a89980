// Package load provides the CPU-bound routine that /stress runs to
// simulate work on the server.
package load

import "math"

// Iterations is the exclusive upper bound of the accumulation loop.
// Generate sums over i = 1 .. Iterations-1.
const Iterations = 200000

// Generate computes sum(sqrt(i) * sin(i)) for i in [1, Iterations) using
// float64 arithmetic and returns the total.
//
// It exists to burn CPU for a fixed amount of work. It performs no I/O,
// allocates nothing and always returns. Callers should consume the result
// so the loop is not discarded.
func Generate() float64 {
	var result float64
	for i := 1; i < Iterations; i++ {
		f := float64(i)
		result += math.Sqrt(f) * math.Sin(f)
	}
	return result
}
