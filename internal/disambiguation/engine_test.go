package disambiguation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/model"
)

func cand(intent string, score float64) model.Candidate {
	return model.Candidate{Intent: intent, Agent: intent + "Agent", Score: score}
}

func TestOffer(t *testing.T) {
	tests := []struct {
		name       string
		candidates []model.Candidate
		wantNeeded bool
		wantReason string
		wantLen    int
	}{
		{name: "no candidates", wantReason: model.ReasonSingleCandidate},
		{name: "single candidate", candidates: []model.Candidate{cand("claims", 0.2)}, wantReason: model.ReasonSingleCandidate},
		{
			name:       "clear winner",
			candidates: []model.Candidate{cand("pharmacy", 0.9), cand("claims", 0.5)},
			wantReason: model.ReasonClearWinner,
		},
		{
			name:       "gap within margin is ambiguous",
			candidates: []model.Candidate{cand("pharmacy", 0.5), cand("claims", 0.375)},
			wantNeeded: true,
			wantReason: model.ReasonAmbiguous,
			wantLen:    2,
		},
		{
			name: "options capped at three",
			candidates: []model.Candidate{
				cand("copay", 0.41), cand("coinsurance", 0.4), cand("deductible", 0.39), cand("hsa", 0.38),
			},
			wantNeeded: true,
			wantReason: model.ReasonAmbiguous,
			wantLen:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := Offer(tt.candidates, "some text")
			assert.Equal(t, tt.wantNeeded, offer.Needed)
			assert.Equal(t, tt.wantReason, offer.Reason)
			assert.Len(t, offer.Options, tt.wantLen)
			if !offer.Needed {
				assert.Empty(t, offer.Prompt)
				assert.Empty(t, offer.OriginalUtterance)
			}
		})
	}
}

func TestOffer_TwoWayPrompt(t *testing.T) {
	offer := Offer([]model.Candidate{cand("pharmacy", 0.5), cand("claims", 0.45)}, "refill claim")

	require.True(t, offer.Needed)
	assert.Equal(t,
		"I want to make sure I help you correctly. Are you asking about prescription or medication refills or claim status or submission?",
		offer.Prompt)
	assert.Equal(t, 0.05, offer.Gap)
	assert.Equal(t, "refill claim", offer.OriginalUtterance)
	assert.Equal(t, model.DisambiguationOption{
		Rank: 1, Intent: "pharmacy", Description: "prescription or medication refills", Agent: "pharmacyAgent",
	}, offer.Options[0])
}

func TestOffer_ThreeWayPromptFallsBackToName(t *testing.T) {
	offer := Offer([]model.Candidate{
		cand("copay", 0.4), cand("gymFitness", 0.39), cand("vision", 0.3),
	}, "x")

	require.True(t, offer.Needed)
	assert.Equal(t,
		"I want to make sure I understand. Are you asking about copay amounts, gymFitness, or vision coverage?",
		offer.Prompt)
	assert.Equal(t, 2, offer.Options[1].Rank)
	assert.Equal(t, "gymFitness", offer.Options[1].Description)
}

func TestResolve(t *testing.T) {
	candidates := []model.Candidate{cand("copay", 0.4), cand("coinsurance", 0.39), cand("deductible", 0.38), cand("hsa", 0.3)}

	got, err := Resolve(candidates, 2)
	require.NoError(t, err)
	assert.Equal(t, "coinsurance", got.Intent)

	for _, selected := range []int{0, -1, 4} {
		_, err := Resolve(candidates, selected)
		assert.ErrorIs(t, err, ErrInvalidSelection, "selected %d", selected)
	}

	_, err = Resolve(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
