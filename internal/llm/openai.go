// Package llm writes an optional narrative paragraph for the report using
// the OpenAI chat API. The dashboard is fully functional without it.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"photocast/internal/dashboard"
	"photocast/internal/logger"
)

const requestTimeout = 60 * time.Second

// OpenAIClient handles OpenAI API interactions
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const systemPrompt = `You are a field assistant for landscape and aurora photographers.
Given computed conditions, write a short plan for tonight's shoot in 2-3
paragraphs of plain prose. Be concrete about timing and gear. Do not repeat
raw numbers the reader already has; interpret them. No markdown headings.`

// GenerateNarrative asks the model for a short field-note paragraph based on
// the computed summary.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, s *dashboard.Summary) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	prompt := buildPrompt(s)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   1000,
			Temperature: 0.4,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	narrative := strings.TrimSpace(resp.Choices[0].Message.Content)
	logger.Debug("Generated narrative", map[string]interface{}{
		"chars": len(narrative),
		"model": c.model,
	})

	return narrative, nil
}

// buildPrompt flattens the summary into a compact textual briefing.
func buildPrompt(s *dashboard.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s (lat %.2f, lon %.2f), time %s UTC\n",
		s.City, s.Location.Latitude, s.Location.Longitude, s.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Score: %.1f/10 (%s), phase: %s\n", s.Score.Value, s.Score.Verdict, s.Window.PhaseNow)
	fmt.Fprintf(&b, "Weather: %.1fC, cloud %.0f%%, visibility %.1fkm, wind %.1fkm/h, precipitation %s\n",
		s.Weather.Temperature, s.Weather.CloudCoverPct, s.Weather.VisibilityKm,
		s.Weather.WindSpeedKmh, s.Weather.Precipitation)
	fmt.Fprintf(&b, "Aurora probability: %d%% (%s)\n",
		s.Aurora.ProbabilityPct, strings.Join(s.Aurora.ContributingFactors, "; "))
	fmt.Fprintf(&b, "Golden hours UTC: morning %s-%s, evening %s-%s\n",
		s.Window.MorningGoldenStart.Format("15:04"), s.Window.MorningGoldenEnd.Format("15:04"),
		s.Window.EveningGoldenStart.Format("15:04"), s.Window.EveningGoldenEnd.Format("15:04"))

	for _, alert := range s.Alerts {
		fmt.Fprintf(&b, "Alert [%s]: %s\n", alert.Severity, alert.Title)
	}
	if s.Outlook != nil {
		for _, h := range s.Outlook.BestHours {
			fmt.Fprintf(&b, "Good hour: %s UTC score %.1f\n", h.Time.Format("15:04"), h.Score.Value)
		}
	}

	return b.String()
}
