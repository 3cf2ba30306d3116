package usecase

import (
	"context"

	"intent-router/internal/classifier"
)

// ExtractSlots runs slot extraction alone. An empty intent extracts only the
// common slots.
func (uc *implUseCase) ExtractSlots(ctx context.Context, utterance, intent string) (classifier.SlotReport, error) {
	if err := ctx.Err(); err != nil {
		return classifier.SlotReport{}, err
	}
	if intent == "" {
		intent = SlotIntentGeneral
	}

	slots := uc.slots.Extract(utterance, intent)
	return classifier.SlotReport{
		Intent:   intent,
		Slots:    slots,
		Required: uc.slots.MissingRequired(intent, nil),
		Missing:  uc.slots.MissingRequired(intent, slots),
	}, nil
}
