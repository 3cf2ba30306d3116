// Package embedding maps text to fixed-dimension unit vectors.
//
// Every Embedder here is a pure function of the lower-cased input: no model,
// no state, no I/O. The same text yields the same vector in every process.
package embedding

// Embedder turns text into an L2-normalized vector of Dimension() floats.
type Embedder interface {
	Embed(text string) []float64
	Dimension() int
	Kind() string
}
