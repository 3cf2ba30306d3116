package usecase

import (
	"context"
	"sort"

	"intent-router/internal/model"
)

// Candidates ranks intents by their mean score over the CandidatePool nearest
// training phrases.
func (uc *implUseCase) Candidates(ctx context.Context, utterance string, k int) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.candidates(utterance, k), nil
}

func (uc *implUseCase) candidates(utterance string, k int) []model.Candidate {
	if k <= 0 {
		return []model.Candidate{}
	}

	hits := uc.index.Search(uc.embedder.Embed(utterance), CandidatePool)

	type agg struct {
		entry model.VectorEntry
		sum   float64
		n     int
	}
	var order []string
	byIntent := make(map[string]*agg)
	for _, h := range hits {
		a, ok := byIntent[h.Entry.IntentName]
		if !ok {
			a = &agg{entry: h.Entry}
			byIntent[h.Entry.IntentName] = a
			order = append(order, h.Entry.IntentName)
		}
		a.sum += h.Score
		a.n++
	}

	type ranked struct {
		entry model.VectorEntry
		avg   float64
	}
	rows := make([]ranked, len(order))
	for i, name := range order {
		a := byIntent[name]
		rows[i] = ranked{entry: a.entry, avg: a.sum / float64(a.n)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].avg > rows[j].avg
	})

	n := min(k, len(rows))
	out := make([]model.Candidate, n)
	for i, r := range rows[:n] {
		out[i] = model.Candidate{
			Intent:   r.entry.IntentName,
			IntentID: r.entry.IntentID,
			Agent:    r.entry.Agent,
			Category: r.entry.Category,
			Score:    round3(r.avg),
		}
	}
	return out
}
