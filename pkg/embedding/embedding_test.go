package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func TestNew(t *testing.T) {
	e, err := New("", DefaultDimension)
	require.NoError(t, err)
	assert.Equal(t, KindSeeded, e.Kind())

	e, err = New(KindLexical, 64)
	require.NoError(t, err)
	assert.Equal(t, KindLexical, e.Kind())
	assert.Equal(t, 64, e.Dimension())

	_, err = New("transformer", DefaultDimension)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(KindSeeded, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestEmbed_Deterministic(t *testing.T) {
	for _, e := range []Embedder{NewSeeded(DefaultDimension), NewLexical(DefaultDimension)} {
		t.Run(e.Kind(), func(t *testing.T) {
			a := e.Embed("I need to refill my prescription")
			b := e.Embed("I need to refill my prescription")
			assert.Equal(t, a, b)

			upper := e.Embed("I NEED TO REFILL MY PRESCRIPTION")
			assert.Equal(t, a, upper, "embedding must only depend on lower-cased text")

			assert.Len(t, a, DefaultDimension)
			assert.InDelta(t, 1.0, Norm(a), 1e-9)
		})
	}
}

func TestSeeded_StableAcrossInstances(t *testing.T) {
	a := NewSeeded(DefaultDimension).Embed("Check my claim status")
	b := NewSeeded(DefaultDimension).Embed("Check my claim status")
	assert.Equal(t, a, b)
}

func TestSeeded_DistinctTextsNearlyOrthogonal(t *testing.T) {
	e := NewSeeded(DefaultDimension)
	sim := dot(e.Embed("What is my deductible"), e.Embed("Find urgent care near me"))
	assert.Less(t, math.Abs(sim), 0.3)
}

func TestLexical_SharedWordsScoreHigher(t *testing.T) {
	e := NewLexical(DefaultDimension)
	q := e.Embed("tell me my deductible")
	related := dot(q, e.Embed("What is my deductible"))
	unrelated := dot(q, e.Embed("Find urgent care near me"))
	assert.Greater(t, related, unrelated)
}

func TestEmbed_EmptyText(t *testing.T) {
	v := NewLexical(16).Embed("")
	for _, x := range v {
		assert.False(t, math.IsNaN(x))
		assert.Equal(t, 0.0, x)
	}

	s := NewSeeded(16).Embed("")
	assert.InDelta(t, 1.0, Norm(s), 1e-9)
}
