package corpus

import (
	"sort"
	"strings"
	"unicode/utf8"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"golang.org/x/text/unicode/norm"

	"github.com/niticheck/classifier/internal/domain"
)

// Similarity scoring weights. Keyword hits dominate, word overlap is the
// secondary signal, and the length penalty nudges same-sized texts up.
const (
	keywordWeight     = 2.0
	textWeight        = 5.0
	DefaultLimit      = 5
	minRankedWordRune = 3 // tokens this short are treated as stop-words
)

// Corpus is the immutable reference dataset plus the keyword automaton
// built over every example's tagged keywords. Safe for concurrent use:
// nothing is mutated after New returns.
type Corpus struct {
	examples []domain.LabeledExample
	matcher  *ahocorasick.Matcher
	keywords []string                 // all normalized keywords, automaton order
	kwToIdx  map[string][]kwMapping   // keyword -> example mappings
	words    []map[string]struct{}    // per-example ranked word sets
	runeLens []int                    // per-example text lengths in runes
	stats    domain.DatasetStats
}

type kwMapping struct {
	exampleIndex int
	keywordIndex int
}

// New builds the corpus from the compiled-in example table.
func New() *Corpus {
	return newFromExamples(policyExamples)
}

func newFromExamples(examples []domain.LabeledExample) *Corpus {
	c := &Corpus{
		examples: examples,
		kwToIdx:  make(map[string][]kwMapping),
		words:    make([]map[string]struct{}, len(examples)),
		runeLens: make([]int, len(examples)),
	}

	c.keywords = make([]string, 0, len(examples)*DefaultLimit)
	for i := range examples {
		ex := &examples[i]
		for ki, kw := range ex.Keywords {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			c.keywords = append(c.keywords, normalized)
			c.kwToIdx[normalized] = append(c.kwToIdx[normalized], kwMapping{
				exampleIndex: i,
				keywordIndex: ki,
			})
		}

		// Normalize example text the same way FindSimilar normalizes input
		// so composed and decomposed Devanagari forms compare equal.
		normalizedText := normalizeText(ex.Text)
		c.words[i] = rankedWordSet(normalizedText)
		c.runeLens[i] = utf8.RuneCountInString(normalizedText)

		switch ex.Label {
		case domain.LabelReal:
			c.stats.Real++
		case domain.LabelFake:
			c.stats.Fake++
		case domain.LabelNotPolicy:
			c.stats.NotPolicy++
		}
	}
	c.stats.Total = len(examples)

	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}

	return c
}

// Size returns the number of examples in the corpus.
func (c *Corpus) Size() int {
	return len(c.examples)
}

// Stats returns the fixed per-label counts of the corpus.
func (c *Corpus) Stats() domain.DatasetStats {
	return c.stats
}

// Languages returns the distinct example languages in corpus order.
func (c *Corpus) Languages() []string {
	return distinct(c.examples, func(e domain.LabeledExample) string { return e.Language })
}

// Categories returns the distinct example categories in corpus order.
func (c *Corpus) Categories() []string {
	return distinct(c.examples, func(e domain.LabeledExample) string { return e.Category })
}

func distinct(examples []domain.LabeledExample, key func(domain.LabeledExample) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range examples {
		k := key(e)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// FindSimilar ranks every corpus example against the input text and returns
// the top limit results, highest similarity first. Ties keep corpus order.
// Pure function of the input: identical text always yields identical order.
func (c *Corpus) FindSimilar(text string, limit int) []domain.SimilarityResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	input := normalizeText(text)
	inputWords := rankedWordSet(input)
	inputRunes := utf8.RuneCountInString(input)

	keywordHits := c.countKeywordHits(input)

	results := make([]domain.SimilarityResult, len(c.examples))
	for i := range c.examples {
		keywordScore := keywordWeight * float64(keywordHits[i])
		textScore := textWeight * jaccard(inputWords, c.words[i])
		penalty := lengthPenalty(inputRunes, c.runeLens[i])

		similarity := keywordScore + textScore - penalty
		if similarity < 0 {
			similarity = 0
		}

		results[i] = domain.SimilarityResult{
			Example:    c.examples[i],
			Similarity: similarity,
		}
	}

	// Stable sort preserves corpus order for equal scores.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Similarity > results[b].Similarity
	})

	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// countKeywordHits runs the automaton once over the input and returns, per
// example, how many of its distinct keywords occur as substrings.
func (c *Corpus) countKeywordHits(input string) []int {
	counts := make([]int, len(c.examples))
	if c.matcher == nil || input == "" {
		return counts
	}

	seen := make(map[kwMapping]bool)
	for _, hit := range c.matcher.Match([]byte(input)) {
		if hit >= len(c.keywords) {
			continue
		}
		for _, m := range c.kwToIdx[c.keywords[hit]] {
			if seen[m] {
				continue
			}
			seen[m] = true
			counts[m.exampleIndex]++
		}
	}
	return counts
}

// jaccard computes |intersection| / |union| of two word sets.
// Returns 0 when the union is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// lengthPenalty penalizes examples of very different length from the input.
// Defined as 0 when both lengths are 0; otherwise |a-b| / max(a, b), which
// is 1 whenever exactly one side is empty.
func lengthPenalty(a, b int) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	longer := a
	if b > longer {
		longer = b
	}
	return float64(diff) / float64(longer)
}

// rankedWordSet lowercases the text, splits it on whitespace, and keeps
// tokens longer than three runes. The length filter discards most
// stop-words in both supported languages without a stop-word list.
func rankedWordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(w) <= minRankedWordRune {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// normalizeText lowercases input and applies NFC so composed and decomposed
// Devanagari forms compare equal during substring and word matching.
func normalizeText(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

func normalizeKeyword(kw string) string {
	return normalizeText(strings.TrimSpace(kw))
}
