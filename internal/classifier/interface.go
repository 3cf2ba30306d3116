package classifier

import (
	"context"

	"intent-router/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Classification
	Classify(ctx context.Context, input ClassifyInput) (Result, error)
	Candidates(ctx context.Context, utterance string, k int) ([]model.Candidate, error)
	DetectMultiIntent(ctx context.Context, utterance string) (MultiIntentReport, error)
	ExtractSlots(ctx context.Context, utterance, intent string) (SlotReport, error)

	// Disambiguation
	Disambiguate(ctx context.Context, utterance string) (DisambiguationReport, error)
	ResolveDisambiguation(ctx context.Context, input ResolveInput) (Resolution, error)

	// Catalog
	ListIntents(ctx context.Context) (IntentList, error)
	IntentDetail(ctx context.Context, name string) (IntentDetail, error)

	// Session
	SessionContext(ctx context.Context, sessionID string, turns int) (SessionContext, error)
	NextPending(ctx context.Context, sessionID string) (PendingIntent, bool, error)
	ClearSession(ctx context.Context, sessionID string) error

	Health(ctx context.Context) Health
}
