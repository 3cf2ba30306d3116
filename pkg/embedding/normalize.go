package embedding

import "math"

// Norm returns the L2 norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize scales v in place to unit length and returns it.
func Normalize(v []float64) []float64 {
	n := Norm(v) + Epsilon
	for i := range v {
		v[i] /= n
	}
	return v
}
