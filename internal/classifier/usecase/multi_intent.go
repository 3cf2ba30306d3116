package usecase

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"intent-router/internal/classifier"
)

// classifySegments runs base classification on every segment in parallel.
// Results keep segment order.
func (uc *implUseCase) classifySegments(ctx context.Context, segments []string) ([]classifier.SubIntent, error) {
	subs := make([]classifier.SubIntent, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	for i, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			subs[i] = uc.classifyBase(seg).subIntent(seg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return subs, nil
}

// DetectMultiIntent reports the sub-intents of a compound utterance without
// touching any session.
func (uc *implUseCase) DetectMultiIntent(ctx context.Context, utterance string) (classifier.MultiIntentReport, error) {
	if err := ctx.Err(); err != nil {
		return classifier.MultiIntentReport{}, err
	}

	report := classifier.MultiIntentReport{Utterance: utterance}

	if !uc.segmenter.HasMultiple(utterance) {
		sub := uc.classifyBase(utterance).subIntent(utterance)
		report.Intents = []classifier.SubIntent{sub}
		report.SuggestedOrder = []string{sub.Intent}
		report.CombinedResponsePossible = true
		report.UniqueAgents = []string{sub.Agent}
		return report, nil
	}

	subs, err := uc.classifySegments(ctx, uc.segmenter.Segment(utterance))
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixDetectMultiIntent, err)
		return classifier.MultiIntentReport{}, err
	}

	ordered := slices.Clone(subs)
	slices.SortStableFunc(ordered, func(a, b classifier.SubIntent) int {
		return a.Priority - b.Priority
	})

	agents := make([]string, len(subs))
	for i, s := range subs {
		agents[i] = s.Agent
	}

	report.HasMultiple = len(subs) > 1
	report.Intents = subs
	report.SuggestedOrder = subIntentNames(ordered)
	report.UniqueAgents = uniqueInOrder(agents)
	report.CombinedResponsePossible = len(report.UniqueAgents) == 1
	return report, nil
}
