package slot

import (
	"regexp"

	"intent-router/internal/model"
)

// Definition describes one slot: its name, type and the patterns tried in
// order. The first capture group of the first matching pattern is the value.
type Definition struct {
	Name       string
	Type       model.SlotType
	Confidence float64
	Patterns   []*regexp.Regexp
}

// Confidence assigned to slots by origin.
const (
	IntentSlotConfidence = 0.9
)

func def(name string, typ model.SlotType, patterns ...string) Definition {
	return defWithConfidence(name, typ, IntentSlotConfidence, patterns...)
}

func defWithConfidence(name string, typ model.SlotType, confidence float64, patterns ...string) Definition {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return Definition{Name: name, Type: typ, Confidence: confidence, Patterns: compiled}
}

// match returns the first capture group of the first pattern that matches.
func (d Definition) match(utterance string) (string, bool) {
	for _, re := range d.Patterns {
		m := re.FindStringSubmatch(utterance)
		if len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}
