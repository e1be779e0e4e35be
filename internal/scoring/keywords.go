package scoring

import (
	"regexp"
	"strings"
)

// KeywordMatcher decides whether a keyword is present in a text block. The
// projects factor depends only on the [0,1] output contract, so the matching
// technique is a swappable strategy rather than a hardcoded heuristic.
type KeywordMatcher interface {
	Match(text, keyword string) bool
}

// SubstringMatcher matches keywords by case-insensitive substring containment.
// Short tokens (<= 2 characters, e.g. R, C, Go's "go" aside) are matched on
// word boundaries to avoid false positives inside unrelated words.
type SubstringMatcher struct{}

// Match reports whether keyword occurs in text.
func (SubstringMatcher) Match(text, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	text = strings.ToLower(text)

	if len(keyword) <= 2 {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			return false
		}
		return pattern.MatchString(text)
	}

	return strings.Contains(text, keyword)
}
