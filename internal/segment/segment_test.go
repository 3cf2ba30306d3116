package segment

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMultiple(t *testing.T) {
	s := New()

	tests := []struct {
		utterance string
		want      bool
	}{
		{"Check my claim CLM-12345 and also tell me my deductible", true},
		{"BTW what is my copay", true},
		{"First refill my meds", true},
		{"What is my deductible", false},
		{"I need to refill my prescription", false},
		{"Find a band near me", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, s.HasMultiple(tt.utterance))
		})
	}
}

func TestSegment(t *testing.T) {
	s := New()

	tests := []struct {
		name      string
		utterance string
		want      []string
	}{
		{
			name:      "and also",
			utterance: "Check my claim CLM-12345 and also tell me my deductible",
			want:      []string{"Check my claim CLM-12345", "tell me my deductible"},
		},
		{
			name:      "and before I keeps the pronoun",
			utterance: "I filed a claim and I need help and I want a card",
			want:      []string{"I filed a claim", "I need help", "I want a card"},
		},
		{
			name:      "sentence boundary keeps the capital",
			utterance: "Refill my prescription. What is my copay",
			want:      []string{"Refill my prescription", "What is my copay"},
		},
		{
			name:      "several passes",
			utterance: "check claim also check copay plus find a doctor",
			want:      []string{"check claim", "check copay", "find a doctor"},
		},
		{
			name:      "case insensitive",
			utterance: "Check claims BTW check copay",
			want:      []string{"Check claims", "check copay"},
		},
		{
			name:      "short pieces dropped",
			utterance: "Refill also copay please",
			want:      []string{"copay please"},
		},
		{
			name:      "no split",
			utterance: "What is my deductible",
			want:      []string{"What is my deductible"},
		},
		{
			name:      "single word",
			utterance: "hello",
			want:      []string{},
		},
		{
			name:      "empty",
			utterance: "   ",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Segment(tt.utterance))
		})
	}
}

func TestSegment_RuleOrderMatters(t *testing.T) {
	andAlso := rule("and-also", `\s+and also\s+`)
	also := rule("also", `\s+also\s+`)
	utterance := "check claims and also check deductible"

	ordered := NewSegmenter(nil, []Rule{andAlso, also})
	assert.Equal(t, []string{"check claims", "check deductible"}, ordered.Segment(utterance))

	reversed := NewSegmenter(nil, []Rule{also, andAlso})
	assert.Equal(t, []string{"check claims and", "check deductible"}, reversed.Segment(utterance))
}

func TestDefaultRulesOrder(t *testing.T) {
	want := []string{
		"and-also", "also", "and-i", "plus", "as-well-as",
		"sentence", "oh-and", "btw", "by-the-way",
	}
	assert.Equal(t, want, New().Rules())
}

func TestNewSegmenter_CopiesInput(t *testing.T) {
	cues := []*regexp.Regexp{regexp.MustCompile(`(?i)\bplus\b`)}
	rules := []Rule{rule("plus", `\s+plus\s+`)}
	s := NewSegmenter(cues, rules)

	cues[0] = regexp.MustCompile(`never`)
	rules[0] = rule("never", `never`)

	require.True(t, s.HasMultiple("claims plus copay"))
	assert.Equal(t, []string{"plus"}, s.Rules())
}
