// Package disambiguation decides when a ranked candidate list is too close to
// act on and builds the clarification question offered to the user.
package disambiguation

import (
	"fmt"
	"math"

	"intent-router/internal/catalog"
	"intent-router/internal/model"
)

const (
	// Margin is the largest top-two score gap that still counts as ambiguous.
	Margin     = 0.15
	MaxOptions = 3
)

const (
	twoWayPrompt   = "I want to make sure I help you correctly. Are you asking about %s or %s?"
	threeWayPrompt = "I want to make sure I understand. Are you asking about %s, %s, or %s?"
)

// Offer expects candidates sorted by descending score.
func Offer(candidates []model.Candidate, utterance string) model.DisambiguationOffer {
	if len(candidates) < 2 {
		return model.DisambiguationOffer{Reason: model.ReasonSingleCandidate}
	}

	gap := candidates[0].Score - candidates[1].Score
	offer := model.DisambiguationOffer{Gap: math.Round(gap*1000) / 1000}
	if gap > Margin {
		offer.Reason = model.ReasonClearWinner
		return offer
	}

	offer.Needed = true
	offer.Reason = model.ReasonAmbiguous
	offer.Options = Options(candidates)
	offer.Prompt = prompt(offer.Options)
	offer.OriginalUtterance = utterance
	return offer
}

// Options numbers the first MaxOptions candidates from 1.
func Options(candidates []model.Candidate) []model.DisambiguationOption {
	n := min(len(candidates), MaxOptions)
	options := make([]model.DisambiguationOption, n)
	for i, c := range candidates[:n] {
		options[i] = model.DisambiguationOption{
			Rank:        i + 1,
			Intent:      c.Intent,
			Description: catalog.Describe(c.Intent),
			Agent:       c.Agent,
		}
	}
	return options
}

func prompt(options []model.DisambiguationOption) string {
	if len(options) == 2 {
		return fmt.Sprintf(twoWayPrompt, options[0].Description, options[1].Description)
	}
	return fmt.Sprintf(threeWayPrompt, options[0].Description, options[1].Description, options[2].Description)
}

// Resolve returns the candidate behind a 1-based option number.
func Resolve(candidates []model.Candidate, selected int) (model.Candidate, error) {
	n := min(len(candidates), MaxOptions)
	if n == 0 {
		return model.Candidate{}, fmt.Errorf("%w: no options available", ErrInvalidSelection)
	}
	if selected < 1 || selected > n {
		return model.Candidate{}, fmt.Errorf("%w: option %d, valid range 1..%d", ErrInvalidSelection, selected, n)
	}
	return candidates[selected-1], nil
}
