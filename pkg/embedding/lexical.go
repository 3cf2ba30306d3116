package embedding

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Lexical is a signed feature-hashing bag of words. Texts sharing tokens share
// coordinates, so overlapping wording scores higher than unrelated wording.
type Lexical struct {
	dim int
}

var _ Embedder = (*Lexical)(nil)

func NewLexical(dim int) *Lexical {
	return &Lexical{dim: dim}
}

func (e *Lexical) Embed(text string) []float64 {
	v := make([]float64, e.dim)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		h := xxhash.Sum64String(tok)
		idx := int(h % uint64(e.dim))
		if h>>63 == 1 {
			v[idx]--
		} else {
			v[idx]++
		}
	}
	return Normalize(v)
}

func (e *Lexical) Dimension() int { return e.dim }

func (e *Lexical) Kind() string { return KindLexical }
