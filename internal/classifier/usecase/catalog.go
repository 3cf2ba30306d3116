package usecase

import (
	"context"
	"fmt"

	"intent-router/internal/catalog"
	"intent-router/internal/classifier"
	"intent-router/internal/slot"
)

func (uc *implUseCase) ListIntents(ctx context.Context) (classifier.IntentList, error) {
	if err := ctx.Err(); err != nil {
		return classifier.IntentList{}, err
	}
	return classifier.IntentList{
		Intents:    uc.catalog.All(),
		Categories: uc.catalog.Categories(),
		ByCategory: uc.catalog.ByCategory(),
	}, nil
}

// IntentDetail returns the catalog entry with the slots the intent collects.
func (uc *implUseCase) IntentDetail(ctx context.Context, name string) (classifier.IntentDetail, error) {
	if err := ctx.Err(); err != nil {
		return classifier.IntentDetail{}, err
	}

	in, ok := uc.catalog.ByName(name)
	if !ok {
		return classifier.IntentDetail{}, fmt.Errorf("%s: %w: %s", LogPrefixIntentDetail, classifier.ErrIntentNotFound, name)
	}

	defs := uc.slots.Definitions(name)
	specs := make([]classifier.SlotSpec, len(defs))
	for i, d := range defs {
		specs[i] = classifier.SlotSpec{Name: d.Name, Type: d.Type, Prompt: slot.Prompt(d.Name)}
	}

	return classifier.IntentDetail{
		Intent:      in,
		Description: catalog.Describe(in.Name),
		Slots:       specs,
	}, nil
}
