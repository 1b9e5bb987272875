// classifier/internal/classifier/policy_rules.go
package classifier

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"golang.org/x/text/unicode/norm"
)

// realPolicyIndicators are institutional names and policy-document
// vocabulary that signal authentic government text, in both languages.
var realPolicyIndicators = []string{
	"government of nepal", "ministry of", "department of", "office of the prime minister",
	"federal parliament", "supreme court", "nepal law commission", "nepal rastra bank",
	"national planning commission", "council of ministers", "election commission",
	"act", "regulation", "policy", "notification", "circular", "directive", "guidelines",
	"cabinet", "budget", "fiscal year", "infrastructure development", "unesco funding",
	"सरकारले", "मन्त्रालय", "आर्थिक वर्ष", "बजेट", "घोषणा", "नीति", "कार्यक्रम",
}

// fakeIndicators are urgency and virality phrases typical of forwarded
// misinformation, in both languages.
var fakeIndicators = []string{
	"urgent!", "breaking news!", "secret", "leaked", "confidential", "exclusive",
	"forward this", "share this", "hurry up", "limited time", "expires today",
	"click this link", "send citizenship number", "share immediately",
	"before government deletes", "share before deleted", "no paperwork needed",
	"तत्काल!", "गोप्य जानकारी", "सेयर गर्नुहोस्", "पठाउनुहोस्", "डिलिट हुनु अघि",
}

// notPolicyIndicators are topical vocabulary for sports, weather,
// entertainment, and routine business news, in both languages.
var notPolicyIndicators = []string{
	"cricket team", "football", "weather", "rainfall", "shopping mall", "bollywood",
	"restaurant", "bank launches", "mobile app", "gordon ramsay", "entertainment",
	"युट्यूबमा", "क्रिकेट", "मौसम", "भ्यू", "गीत", "फुटबल", "बसपार्क",
}

// indicatorSet counts how many of a fixed pattern list occur in a text.
// Matching is substring-based, one count per distinct pattern regardless
// of repetition. The Aho-Corasick automaton is built once at init and is
// safe for concurrent Match calls.
type indicatorSet struct {
	patterns []string
	matcher  *ahocorasick.Matcher
}

func newIndicatorSet(patterns []string) *indicatorSet {
	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		normalized[i] = normalizeText(p)
	}
	return &indicatorSet{
		patterns: normalized,
		matcher:  ahocorasick.NewStringMatcher(normalized),
	}
}

// Count returns the number of distinct patterns present in the normalized
// text. The input must already be normalized with normalizeText.
func (s *indicatorSet) Count(normalizedText string) int {
	if normalizedText == "" {
		return 0
	}
	return len(s.matcher.Match([]byte(normalizedText)))
}

var (
	realIndicatorSet      = newIndicatorSet(realPolicyIndicators)
	fakeIndicatorSet      = newIndicatorSet(fakeIndicators)
	notPolicyIndicatorSet = newIndicatorSet(notPolicyIndicators)
)

// indicatorCounts holds the pattern hit counts for one input text.
type indicatorCounts struct {
	real      int
	fake      int
	notPolicy int
}

// countIndicators matches the raw text against all three indicator lists.
func countIndicators(text string) indicatorCounts {
	lower := normalizeText(text)
	return indicatorCounts{
		real:      realIndicatorSet.Count(lower),
		fake:      fakeIndicatorSet.Count(lower),
		notPolicy: notPolicyIndicatorSet.Count(lower),
	}
}

// normalizeText lowercases and NFC-normalizes so composed and decomposed
// Devanagari forms compare equal during substring matching.
func normalizeText(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}
