package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	apperrors "portfolio-rebalancer/internal/errors"
	"portfolio-rebalancer/pkg/utils"
)

const systemPrompt = `You are a financial NLP assistant specialized in entity sentiment extraction.
Extract companies (by ticker) and GICS sectors mentioned in the article, with the sentiment the article expresses toward each.
Rules:
- Company: extract only when the ticker is unambiguous, name it by ticker.
- Sector: extract only when the exact sector term appears in the text.
- Each entity appears exactly once; aggregate repeated mentions to a final sentiment.
Respond with JSON: {"entities": [{"name": "TICKER", "type": "Company", "sentiment": "Positive"}]}
Allowed types: Company, Sector. Allowed sentiments: Positive, Negative, Neutral.`

// OpenAIExtractor implements Extractor using the OpenAI chat completions
// API in JSON mode.
type OpenAIExtractor struct {
	client *openai.Client
	model  string
	retry  utils.RetryConfig
	logger zerolog.Logger
}

// NewOpenAIExtractor creates an extractor for the given API key and model.
func NewOpenAIExtractor(apiKey, model string, maxAttempts int, logger zerolog.Logger) *OpenAIExtractor {
	retry := utils.DefaultRetryConfig()
	if maxAttempts > 0 {
		retry.MaxAttempts = maxAttempts
	}
	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
		retry:  retry,
		logger: logger,
	}
}

// Extract sends the article to the model and parses the entity list from
// its JSON response. Transient API failures are retried with backoff.
func (e *OpenAIExtractor) Extract(ctx context.Context, articleText string) ([]Entity, error) {
	raw, err := utils.RetryWithResult(ctx, e.retry, func() (string, error) {
		return e.complete(ctx, articleText)
	})
	if err != nil {
		return nil, apperrors.NewExtractionError("completion", err)
	}

	entities, err := parseEntities(raw)
	if err != nil {
		return nil, apperrors.NewExtractionError("parse", err)
	}

	e.logger.Debug().Int("entities", len(entities)).Msg("Extracted entity sentiments")
	return entities, nil
}

func (e *OpenAIExtractor) complete(ctx context.Context, articleText string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Extract entities and sentiments from the following article. Return the result in JSON format.\n\n" + articleText},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseEntities decodes the model response. The contract allows either a
// bare entity array or an object wrapping one; entities with unknown types
// are dropped and unknown sentiments normalize to Neutral.
func parseEntities(raw string) ([]Entity, error) {
	raw = strings.TrimSpace(raw)

	var decoded []Entity
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		var wrapper struct {
			Entities []Entity `json:"entities"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		decoded = wrapper.Entities
	}

	out := make([]Entity, 0, len(decoded))
	for _, entity := range decoded {
		if entity.Name == "" {
			continue
		}
		switch entity.Type {
		case EntityCompany, EntitySector:
		default:
			continue
		}
		switch entity.Sentiment {
		case SentimentPositive, SentimentNegative, SentimentNeutral:
		default:
			entity.Sentiment = SentimentNeutral
		}
		out = append(out, entity)
	}
	return out, nil
}
