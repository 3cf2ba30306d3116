package usecase

import (
	"errors"

	"intent-router/internal/catalog"
	"intent-router/internal/classifier"
	"intent-router/internal/metrics"
	"intent-router/internal/segment"
	"intent-router/internal/session"
	"intent-router/internal/slot"
	"intent-router/internal/vectorindex"
	"intent-router/pkg/embedding"
	"intent-router/pkg/log"
)

// Recorder receives classification outcomes. metrics.Exporter implements it.
type Recorder interface {
	RecordClassification(c metrics.Classification)
	SetActiveSessions(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordClassification(metrics.Classification) {}
func (nopRecorder) SetActiveSessions(int)                       {}

// Deps is everything the pipeline is built from. Catalog, Embedder and Index
// are shared read-only; Sessions is the only mutable state.
type Deps struct {
	Logger    log.Logger
	Catalog   *catalog.Catalog
	Embedder  embedding.Embedder
	Index     *vectorindex.Index
	Slots     *slot.Extractor
	Segmenter *segment.Segmenter
	Sessions  *session.Store
	Recorder  Recorder // optional
}

// implUseCase is the private implementation of classifier.UseCase.
type implUseCase struct {
	l         log.Logger
	catalog   *catalog.Catalog
	embedder  embedding.Embedder
	index     *vectorindex.Index
	slots     *slot.Extractor
	segmenter *segment.Segmenter
	sessions  *session.Store
	rec       Recorder
}

var _ classifier.UseCase = (*implUseCase)(nil)

// New wires the pipeline. Slots and Segmenter default to their standard
// tables when nil.
func New(d Deps) (*implUseCase, error) {
	switch {
	case d.Logger == nil:
		return nil, errors.New("logger is required")
	case d.Catalog == nil:
		return nil, errors.New("catalog is required")
	case d.Embedder == nil:
		return nil, errors.New("embedder is required")
	case d.Index == nil:
		return nil, errors.New("index is required")
	case d.Sessions == nil:
		return nil, errors.New("session store is required")
	}

	uc := &implUseCase{
		l:         d.Logger,
		catalog:   d.Catalog,
		embedder:  d.Embedder,
		index:     d.Index,
		slots:     d.Slots,
		segmenter: d.Segmenter,
		sessions:  d.Sessions,
		rec:       d.Recorder,
	}
	if uc.slots == nil {
		uc.slots = slot.New()
	}
	if uc.segmenter == nil {
		uc.segmenter = segment.New()
	}
	if uc.rec == nil {
		uc.rec = nopRecorder{}
	}
	return uc, nil
}
