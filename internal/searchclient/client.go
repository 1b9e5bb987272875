// Package searchclient builds verification guidance for analyzed texts by
// asking a generative model for search strategies, official sources, and
// red flags. Responses are advisory; classification never depends on them.
package searchclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/telemetry"
)

// ErrDisabled is returned when the search collaborator is not configured.
var ErrDisabled = errors.New("advanced search is not enabled")

// promptTextLimit bounds how much of the analyzed text is sent upstream.
const promptTextLimit = 500

// Strategy describes how to search one platform for corroborating coverage.
type Strategy struct {
	Platform     string `json:"platform"`
	Query        string `json:"query"`
	Instructions string `json:"instructions"`
}

// Source is one website worth checking during verification.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Summary     string `json:"summary"`
	SearchTips  string `json:"searchTips"`
	Relevance   string `json:"relevance"`
	Credibility string `json:"credibility"`
}

// QuickLink is a prebuilt search URL for immediate use.
type QuickLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Guidance is the full verification package returned to callers.
type Guidance struct {
	SearchQuery        string      `json:"searchQuery"`
	AlternativeQueries []string    `json:"alternativeQueries"`
	Strategies         []Strategy  `json:"searchStrategies"`
	Sources            []Source    `json:"sources"`
	QuickLinks         []QuickLink `json:"quickSearchLinks"`
	Analysis           string      `json:"analysis"`
	Verification       string      `json:"verification"`
	Context            string      `json:"context"`
	RedFlags           string      `json:"redFlags"`
	Fallback           bool        `json:"fallback,omitempty"`
}

// Config holds search client settings.
type Config struct {
	APIKey            string
	Model             string
	MaxTokens         int
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
}

// Client talks to the Anthropic API with client-side rate limiting.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// New creates a search client. Returns ErrDisabled when no API key is set.
func New(cfg Config, log logger.Logger, tp *telemetry.Provider) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		limiter:   rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
		logger:    log,
		telemetry: tp,
	}, nil
}

// Search requests verification guidance for the given text and its
// classification. A malformed model response degrades to fallback guidance
// rather than an error; only transport and rate-limit failures propagate.
func (c *Client) Search(ctx context.Context, text, classification string) (*Guidance, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildSearchPrompt(text, classification))),
		},
	})
	if c.telemetry != nil {
		c.telemetry.RecordSearch(err)
	}
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	responseText := ""
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	guidance, parseErr := parseGuidance(responseText)
	if parseErr != nil {
		c.logger.Warn("search response unparseable, using fallback guidance",
			logger.Error(parseErr),
			logger.Int("response_len", len(responseText)),
		)
		guidance = fallbackGuidance(text)
	}

	guidance.QuickLinks = quickSearchLinks(guidance.SearchQuery, text)

	c.logger.Info("advanced search complete",
		logger.String("model", c.model),
		logger.Bool("fallback", guidance.Fallback),
		logger.Int("sources", len(guidance.Sources)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return guidance, nil
}

func buildSearchPrompt(text, classification string) string {
	short := text
	if runes := []rune(short); len(runes) > promptTextLimit {
		short = string(runes[:promptTextLimit]) + "..."
	}

	return fmt.Sprintf(`You are an AI assistant helping to verify policy information for Nepal.

POLICY TEXT TO ANALYZE:
%q

CURRENT CLASSIFICATION: %s

TASK: Create specific search strategies and provide detailed guidance for finding related news about this policy. Provide copy-pasteable search queries, concrete verification steps, and real working URLs for official Nepal government sources (for example https://www.mof.gov.np for the Ministry of Finance). Never use placeholder text.

Respond with JSON only (no markdown) using this structure:
{
  "searchQuery": "Primary search terms for Google",
  "alternativeQueries": ["...", "..."],
  "searchStrategies": [{"platform": "Google News", "query": "...", "instructions": "..."}],
  "sources": [{"title": "...", "url": "...", "domain": "...", "summary": "...", "searchTips": "...", "relevance": "High", "credibility": "..."}],
  "analysis": "Your analysis of the policy and its likely authenticity",
  "verification": "Step-by-step verification process",
  "context": "Background context about this policy area in Nepal",
  "redFlags": "Specific warning signs to look for in this type of policy"
}`, short, classification)
}

// parseGuidance extracts the JSON object from the model response, tolerating
// markdown fences and surrounding prose.
func parseGuidance(responseText string) (*Guidance, error) {
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	start := strings.Index(responseText, "{")
	end := strings.LastIndex(responseText, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in response")
	}

	var guidance Guidance
	if err := json.Unmarshal([]byte(responseText[start:end+1]), &guidance); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	if guidance.SearchQuery == "" {
		guidance.SearchQuery = "Nepal policy verification"
	}
	if len(guidance.Sources) == 0 {
		guidance.Sources = fallbackSources()
	}
	return &guidance, nil
}
