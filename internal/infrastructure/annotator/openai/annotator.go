// Package openai provides an Annotator implementation using OpenAI chat
// completions.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/ersonp/nerbench/internal/domain/entities"
	"github.com/ersonp/nerbench/internal/infrastructure/config"
)

const annotationPrompt = `You are a named-entity annotator for historical documents. Identify every named entity in the given text.

For each entity report:
- text: the exact substring from the input, character for character
- start: character offset where the substring begins (0-based)
- end: character offset one past the last character
- type: one of LOC (places, rivers, forts), PER (people), ORG (companies, institutions), MISC (nationalities, events, treaties)
- confidence: how confident you are (0.0-1.0)

Offsets are character positions into the input text and must satisfy text == input[start:end].

Return ONLY a valid JSON array, no other text.

Example:
Input: "Fort Garry stood near the Red River."
Output: [
  {"text": "Fort Garry", "start": 0, "end": 10, "type": "LOC", "confidence": 0.98},
  {"text": "Red River", "start": 26, "end": 35, "type": "LOC", "confidence": 0.95}
]`

// Annotator implements ports.Annotator using OpenAI. Calls go through a
// circuit breaker so a failing API does not hammer every remaining snippet,
// and through a rate limiter to stay inside the account's request budget.
type Annotator struct {
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewAnnotator creates a new OpenAI annotator.
func NewAnnotator(cfg config.AnnotatorConfig) (*Annotator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openai-annotator",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Annotator{
		client:  openai.NewClient(cfg.APIKey),
		model:   model,
		breaker: breaker,
		limiter: limiter,
	}, nil
}

// Annotate labels the text via a chat completion and parses the returned
// entity array. Entities whose reported offsets do not reproduce their text
// are repaired by searching for the substring; unrepairable ones are kept
// as-is since the evaluation core tolerates bad offsets.
func (a *Annotator) Annotate(ctx context.Context, text string) ([]entities.Entity, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limit: %w", err)
		}
	}

	result, err := a.breaker.Execute(func() (interface{}, error) {
		return a.complete(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return result.([]entities.Entity), nil
}

func (a *Annotator) complete(ctx context.Context, text string) ([]entities.Entity, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: annotationPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var raw []rawEntity
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parsing entities JSON: %w (response: %s)", err, content)
	}

	detected := make([]entities.Entity, 0, len(raw))
	for _, r := range raw {
		detected = append(detected, repairOffsets(text, entities.Entity{
			Text:       r.Text,
			Start:      r.Start,
			End:        r.End,
			Type:       entities.EntityType(r.Type),
			Confidence: r.Confidence,
		}))
	}
	return detected, nil
}

// rawEntity is the JSON structure for annotated entities.
type rawEntity struct {
	Text       string  `json:"text"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// repairOffsets fixes entities whose offsets do not reproduce their text.
// LLMs frequently miscount characters; the substring is usually right even
// when the offsets are not.
func repairOffsets(text string, e entities.Entity) entities.Entity {
	if e.Text == "" {
		return e
	}
	if e.Start >= 0 && e.End <= len(text) && e.Start < e.End && text[e.Start:e.End] == e.Text {
		return e
	}
	if idx := strings.Index(text, e.Text); idx >= 0 {
		e.Start = idx
		e.End = idx + len(e.Text)
	}
	return e
}

// cleanJSONResponse removes markdown code blocks if present.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
