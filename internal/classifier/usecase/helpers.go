package usecase

import (
	"math"
	"slices"
)

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func sessionOrDefault(id, def string) string {
	if id == "" {
		return def
	}
	return id
}

// uniqueInOrder drops repeats, keeping first occurrences.
func uniqueInOrder(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !slices.Contains(out, it) {
			out = append(out, it)
		}
	}
	return out
}
