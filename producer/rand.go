package producer

import "math/rand/v2"

// All draws use the global math/rand/v2 source, which is safe for concurrent
// use and seeded by the runtime.

// intN returns a uniform int in [0, n), or 0 for n <= 0.
func intN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

func int64n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return rand.Int64N(n)
}

// between returns a uniform int in [min, max].
func between(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

func float64n() float64 {
	return rand.Float64()
}

// perm returns the first k values of a random permutation of [0, n).
func perm(n, k int) []int {
	return rand.Perm(n)[:k]
}
