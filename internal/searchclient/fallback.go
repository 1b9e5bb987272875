package searchclient

import (
	"net/url"
	"strings"
)

const (
	quickQueryMaxChars  = 50
	firstSentenceMax    = 60
	quickDescriptionMax = 60
)

// fallbackGuidance is returned when the model response cannot be parsed.
func fallbackGuidance(text string) *Guidance {
	query := extractKeywords(text)
	return &Guidance{
		SearchQuery: query,
		AlternativeQueries: []string{
			"Nepal government policy announcement",
			"Nepal ministry official statement",
			"Nepal policy gazette notification",
		},
		Strategies:   fallbackStrategies(),
		Sources:      fallbackSources(),
		Analysis:     "Advanced analysis temporarily unavailable. Please verify through official channels.",
		Verification: "Check official Nepal government websites and trusted news sources.",
		Context:      "For Nepal policy verification, always consult government websites ending in .gov.np",
		RedFlags:     "Be cautious of urgent messages asking for immediate action or personal information.",
		Fallback:     true,
	}
}

func fallbackStrategies() []Strategy {
	return []Strategy{
		{
			Platform:     "Google News",
			Query:        "Nepal government policy announcement site:kathmandupost.com OR site:myrepublica.nagariknetwork.com",
			Instructions: "Search for recent news about Nepal government policies from trusted sources",
		},
		{
			Platform:     "Kathmandu Post Search",
			Query:        "government policy Nepal ministry",
			Instructions: "Go to kathmandupost.com, use their search function and check the Politics/National section",
		},
		{
			Platform:     "PM Office Website",
			Query:        "policy decision statement",
			Instructions: "Visit opmcm.gov.np and check Press Releases and Government Decisions sections",
		},
	}
}

func fallbackSources() []Source {
	return []Source{
		{
			Title:       "Office of the Prime Minister and Council of Ministers",
			URL:         "https://www.opmcm.gov.np",
			Domain:      "opmcm.gov.np",
			Summary:     "Official announcements and policy decisions from PM office",
			SearchTips:  "Check Press Releases, Statements, and Government Decisions sections",
			Relevance:   "High",
			Credibility: "Official Government Source",
		},
		{
			Title:       "Ministry of Finance, Nepal",
			URL:         "https://www.mof.gov.np",
			Domain:      "mof.gov.np",
			Summary:     "Official source for budget, financial policies, and economic announcements",
			SearchTips:  "Check Press Releases, Budget Documents, and Policy sections",
			Relevance:   "High",
			Credibility: "Official Government Source",
		},
		{
			Title:       "The Kathmandu Post",
			URL:         "https://kathmandupost.com",
			Domain:      "kathmandupost.com",
			Summary:     "Leading English daily newspaper in Nepal",
			SearchTips:  "Use search function and check National/Politics sections",
			Relevance:   "High",
			Credibility: "Established Media Outlet",
		},
	}
}

// extractKeywords builds a crude search query from the analyzed text.
func extractKeywords(text string) string {
	keywords := []string{"government", "nepal", "policy", "ministry", "official", "announcement"}
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		seen[kw] = true
	}

	added := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if added >= 5 {
			break
		}
		if len(word) <= 3 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		added++
	}
	return strings.Join(keywords, " ")
}

// quickSearchLinks builds prebuilt search URLs from the analyzed text,
// preferring its first sentence when short enough.
func quickSearchLinks(searchQuery, originalText string) []QuickLink {
	query := strings.TrimSpace(originalText)
	switch {
	case query == "":
		query = strings.TrimSpace(searchQuery)
	case len([]rune(query)) > quickQueryMaxChars:
		sentence := strings.TrimSpace(splitFirstSentence(query))
		if n := len([]rune(sentence)); n > 0 && n <= firstSentenceMax {
			query = sentence
		} else {
			query = strings.TrimSpace(string([]rune(query)[:quickQueryMaxChars]))
		}
	}
	if query == "" {
		query = "Nepal policy verification"
	}
	query = strings.Join(strings.Fields(query), " ")

	encoded := url.QueryEscape(query)
	encodedNews := url.QueryEscape(query + " Nepal")

	desc := query
	if len([]rune(desc)) > quickDescriptionMax {
		desc = string([]rune(desc)[:quickDescriptionMax]) + "..."
	}

	return []QuickLink{
		{
			Title:       "Google Search",
			URL:         "https://www.google.com/search?q=" + encoded,
			Description: "Search Google: " + desc,
		},
		{
			Title:       "Google News Search",
			URL:         "https://news.google.com/search?q=" + encodedNews + "&hl=en-US&gl=US&ceid=US:en",
			Description: "Search news: " + desc,
		},
		{
			Title:       "Kathmandu Post Search",
			URL:         "https://kathmandupost.com/search?q=" + encoded,
			Description: "Search Kathmandu Post: " + desc,
		},
		{
			Title:       "Republica Search",
			URL:         "https://myrepublica.nagariknetwork.com/search?q=" + encoded,
			Description: "Search Republica: " + desc,
		},
	}
}

// splitFirstSentence returns the text up to the first sentence terminator.
func splitFirstSentence(text string) string {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return text[:i]
	}
	return text
}
