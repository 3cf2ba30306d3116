package embedding

// Embedder kinds
const (
	KindSeeded  = "seeded"
	KindLexical = "lexical"
)

const (
	DefaultDimension = 384

	// Epsilon keeps normalization finite for the all-zero vector.
	Epsilon = 1e-10
)
