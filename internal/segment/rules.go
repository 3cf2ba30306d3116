package segment

import "regexp"

// Rule is one split pass. With KeepGroup set the text of capture group 1 is
// not consumed: it becomes the head of the following segment and scanning
// resumes there.
type Rule struct {
	Name      string
	Pattern   *regexp.Regexp
	KeepGroup bool
}

func rule(name, pattern string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(`(?i)` + pattern)}
}

func keepRule(name, pattern string) Rule {
	r := rule(name, pattern)
	r.KeepGroup = true
	return r
}

// DefaultCues signal that an utterance may carry more than one request.
func DefaultCues() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:and also|and|also|plus|as well as|additionally|another thing|one more thing)\b`),
		regexp.MustCompile(`(?i)\b(?:oh and|btw|by the way|while I'm here|while you're at it)\b`),
		regexp.MustCompile(`(?i)\b(?:first|second|third|lastly|finally|next)\b`),
	}
}

// DefaultRules are applied in this order; each pass re-splits every segment
// the previous pass produced.
func DefaultRules() []Rule {
	return []Rule{
		rule("and-also", `\s+and also\s+`),
		rule("also", `\s+also\s+`),
		keepRule("and-i", `\s+and\s+(I\s+)`),
		rule("plus", `\s+plus\s+`),
		rule("as-well-as", `\s+as well as\s+`),
		keepRule("sentence", `\.\s+([A-Z])`),
		rule("oh-and", `\s+oh and\s+`),
		rule("btw", `\s+btw\s+`),
		rule("by-the-way", `\s+by the way\s+`),
	}
}

// split cuts s at every match of the rule.
func (r Rule) split(s string) []string {
	var parts []string
	start, pos := 0, 0
	for pos <= len(s) {
		m := r.Pattern.FindStringSubmatchIndex(s[pos:])
		if m == nil {
			break
		}
		cut, next := pos+m[0], pos+m[1]
		if r.KeepGroup && len(m) > 3 && m[2] >= 0 {
			next = pos + m[2]
		}
		parts = append(parts, s[start:cut])
		start, pos = next, next
	}
	return append(parts, s[start:])
}
