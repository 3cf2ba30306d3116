package usecase

import (
	"context"
	"slices"

	"intent-router/internal/classifier"
)

func (uc *implUseCase) Health(ctx context.Context) classifier.Health {
	return classifier.Health{
		Status:      "healthy",
		IntentCount: uc.catalog.Len(),
		VectorCount: uc.index.Len(),
		Dimension:   uc.embedder.Dimension(),
		Embedder:    uc.embedder.Kind(),
		Sessions:    uc.sessions.Len(),
		Features:    slices.Clone(features),
	}
}
