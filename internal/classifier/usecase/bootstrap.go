package usecase

import (
	"context"
	"fmt"

	"intent-router/config"
	"intent-router/internal/catalog"
	"intent-router/internal/session"
	"intent-router/internal/vectorindex"
	"intent-router/pkg/embedding"
	"intent-router/pkg/log"
)

// Bootstrap builds catalog, embedder, index and session store from config.
// The host calls it once and shares the result.
func Bootstrap(ctx context.Context, cfg *config.Config, l log.Logger, rec Recorder) (*implUseCase, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBootstrap, err)
	}

	emb, err := embedding.New(cfg.Embedder.Kind, cfg.Embedder.Dimension)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBootstrap, err)
	}

	idx, err := vectorindex.Build(cat, emb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBootstrap, err)
	}

	uc, err := New(Deps{
		Logger:   l,
		Catalog:  cat,
		Embedder: emb,
		Index:    idx,
		Sessions: session.New(l, cfg.Session.IdleTTL, cfg.Session.SweepInterval),
		Recorder: rec,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBootstrap, err)
	}

	l.Infof(ctx, LogMsgPipelineReady, cat.Len(), idx.Len(), emb.Kind(), emb.Dimension())
	return uc, nil
}

// RunSessionSweep expires idle sessions until ctx is done.
func (uc *implUseCase) RunSessionSweep(ctx context.Context) {
	uc.sessions.Run(ctx)
}
