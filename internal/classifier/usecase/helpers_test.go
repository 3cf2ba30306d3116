package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"intent-router/config"
	"intent-router/internal/catalog"
	"intent-router/internal/metrics"
	"intent-router/internal/model"
	"intent-router/internal/session"
	"intent-router/internal/vectorindex"
	"intent-router/pkg/embedding"
)

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRecorder struct {
	mu       sync.Mutex
	outcomes []metrics.Classification
	sessions int
}

func (r *mockRecorder) RecordClassification(c metrics.Classification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, c)
}

func (r *mockRecorder) SetActiveSessions(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = n
}

// tableEmbedder maps known texts to fixed vectors; anything else embeds to zero.
type tableEmbedder struct {
	vectors map[string][]float64
}

func (e tableEmbedder) Embed(text string) []float64 {
	v, ok := e.vectors[strings.ToLower(text)]
	if !ok {
		return make([]float64, 3)
	}
	return embedding.Normalize(append([]float64(nil), v...))
}

func (e tableEmbedder) Dimension() int { return 3 }

func (e tableEmbedder) Kind() string { return "table" }

// Three intents on three axes. claims owns two phrases, one tilted toward copay.
var tableVectors = map[string][]float64{
	"c1": {1, 0, 0},
	"c2": {0.8, 0.6, 0},
	"p1": {0, 1, 0},
	"d1": {0, 0, 1},

	"q claims":     {1, 0, 0},
	"q copay":      {0, 1, 0},
	"q deductible": {0, 0, 1},
	"q tie":        {1, 1, 0},
	"that one":     {0.6, 0, 0.5},
	"q short":      {0.6, 0, 0.5},

	"please show claims details now": {0.6, 0, 0.5},
}

func tableCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]model.Intent{
		{ID: "INT-CLM", Name: "claims", Category: "claims", Agent: "ClaimsAgent", Priority: 1, TrainingPhrases: []string{"c1", "c2"}},
		{ID: "INT-COP", Name: "copay", Category: "benefits", Agent: "CopayAgent", Priority: 3, TrainingPhrases: []string{"p1"}},
		{ID: "INT-DED", Name: "deductible", Category: "benefits", Agent: "DeductibleAgent", Priority: 1, TrainingPhrases: []string{"d1"}},
	})
	require.NoError(t, err)
	return c
}

type fixture struct {
	uc       *implUseCase
	l        *mockLogger
	rec      *mockRecorder
	sessions *session.Store
}

func newTableFixture(t *testing.T) fixture {
	t.Helper()
	cat := tableCatalog(t)
	emb := tableEmbedder{vectors: tableVectors}
	idx, err := vectorindex.Build(cat, emb)
	require.NoError(t, err)
	return newFixture(t, cat, emb, idx)
}

func newFixture(t *testing.T, cat *catalog.Catalog, emb embedding.Embedder, idx *vectorindex.Index) fixture {
	t.Helper()
	l := &mockLogger{}
	rec := &mockRecorder{}
	store := session.New(l, 0, 0)
	uc, err := New(Deps{
		Logger:   l,
		Catalog:  cat,
		Embedder: emb,
		Index:    idx,
		Sessions: store,
		Recorder: rec,
	})
	require.NoError(t, err)
	return fixture{uc: uc, l: l, rec: rec, sessions: store}
}

// newCatalogFixture builds the full default catalog with the given embedder kind.
func newCatalogFixture(t *testing.T, kind string) fixture {
	t.Helper()
	cfg := &config.Config{
		Embedder: config.EmbedderConfig{Kind: kind, Dimension: embedding.DefaultDimension},
	}
	l := &mockLogger{}
	rec := &mockRecorder{}
	uc, err := Bootstrap(context.Background(), cfg, l, rec)
	require.NoError(t, err)
	return fixture{uc: uc, l: l, rec: rec, sessions: uc.sessions}
}

func emptyIndex() *vectorindex.Index {
	return vectorindex.New()
}
