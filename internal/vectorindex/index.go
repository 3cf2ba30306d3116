// Package vectorindex is an in-memory cosine-similarity index over training phrases.
package vectorindex

import (
	"fmt"
	"sort"
	"sync"

	"intent-router/internal/catalog"
	"intent-router/internal/model"
	"intent-router/pkg/embedding"
)

// Hit is one search result.
type Hit struct {
	Entry model.VectorEntry
	Score float64
}

// Index stores vectors with their metadata in insertion order. It is built once
// and then only read; readers may run concurrently.
type Index struct {
	mu      sync.RWMutex
	dim     int
	vectors [][]float64
	entries []model.VectorEntry
}

func New() *Index {
	return &Index{}
}

// Build embeds every training phrase of every intent, in catalog order.
func Build(c *catalog.Catalog, e embedding.Embedder) (*Index, error) {
	vectors := make([][]float64, 0, c.PhraseCount())
	entries := make([]model.VectorEntry, 0, c.PhraseCount())

	for _, in := range c.All() {
		for _, phrase := range in.TrainingPhrases {
			vectors = append(vectors, e.Embed(phrase))
			entries = append(entries, model.VectorEntry{
				IntentID:     in.ID,
				IntentName:   in.Name,
				Category:     in.Category,
				Agent:        in.Agent,
				Priority:     in.Priority,
				SourcePhrase: phrase,
			})
		}
	}

	idx := New()
	if err := idx.Index(vectors, entries); err != nil {
		return nil, err
	}
	return idx, nil
}

// Index appends vectors and entries pairwise.
func (x *Index) Index(vectors [][]float64, entries []model.VectorEntry) error {
	if len(vectors) != len(entries) {
		return fmt.Errorf("%w: %d vectors, %d entries", ErrLengthMismatch, len(vectors), len(entries))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	dim := x.dim
	for i, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return fmt.Errorf("%w: vector %d has %d, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}

	x.dim = dim
	for i, v := range vectors {
		x.vectors = append(x.vectors, append([]float64(nil), v...))
		x.entries = append(x.entries, entries[i])
	}
	return nil
}

// Search returns at most k hits by descending cosine similarity; equal scores
// keep insertion order. An empty index yields an empty result.
func (x *Index) Search(query []float64, k int) []Hit {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if len(x.vectors) == 0 || k <= 0 {
		return []Hit{}
	}

	q := unit(query)
	hits := make([]Hit, len(x.vectors))
	for i, v := range x.vectors {
		hits[i] = Hit{Entry: x.entries[i], Score: dot(unit(v), q)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.vectors)
}

func (x *Index) Dimension() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.dim
}

// unit returns a normalized copy of v.
func unit(v []float64) []float64 {
	return embedding.Normalize(append([]float64(nil), v...))
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}
