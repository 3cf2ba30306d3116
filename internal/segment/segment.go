// Package segment detects compound utterances and splits them into
// sub-utterances on conjunction cues.
package segment

import (
	"regexp"
	"strings"
)

// MinWords is the shortest segment kept after splitting.
const MinWords = 2

// Segmenter is immutable and safe for concurrent use.
type Segmenter struct {
	cues  []*regexp.Regexp
	rules []Rule
}

// New returns a Segmenter with the default cues and rules.
func New() *Segmenter {
	return NewSegmenter(DefaultCues(), DefaultRules())
}

func NewSegmenter(cues []*regexp.Regexp, rules []Rule) *Segmenter {
	return &Segmenter{
		cues:  append([]*regexp.Regexp(nil), cues...),
		rules: append([]Rule(nil), rules...),
	}
}

// HasMultiple reports whether any cue appears in the utterance.
func (s *Segmenter) HasMultiple(utterance string) bool {
	for _, c := range s.cues {
		if c.MatchString(utterance) {
			return true
		}
	}
	return false
}

// Segment folds the rules over the utterance. Empty pieces are dropped after
// every pass; pieces shorter than MinWords are dropped at the end.
func (s *Segmenter) Segment(utterance string) []string {
	segments := []string{utterance}
	for _, r := range s.rules {
		next := make([]string, 0, len(segments))
		for _, seg := range segments {
			for _, part := range r.split(seg) {
				if part = strings.TrimSpace(part); part != "" {
					next = append(next, part)
				}
			}
		}
		segments = next
	}

	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if len(strings.Fields(seg)) >= MinWords {
			out = append(out, seg)
		}
	}
	return out
}

// Rules returns the rule names in application order.
func (s *Segmenter) Rules() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.Name
	}
	return names
}
