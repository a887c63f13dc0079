package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultModel = shared.ResponsesModel("gpt-5.1")

	// completion calls get blind retries; embedding calls do not.
	maxAttempts = 3
)

// ErrMissingAPIKey is returned when no OpenAI API key was configured.
// The pipeline treats this as a fatal startup error.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Client is a thin wrapper around the OpenAI Responses API implementing
// domain.Completer with a bounded immediate-retry policy.
type Client struct {
	client *openai.Client
	model  shared.ResponsesModel
	log    *slog.Logger
}

func NewClient(apiKey, model string, log *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if log == nil {
		log = slog.Default()
	}
	m := defaultModel
	if model != "" {
		m = shared.ResponsesModel(model)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &client, model: m, log: log}, nil
}

// Complete sends the assembled prompt and returns the model's text output.
// Up to three attempts with immediate retry; the final error is returned to
// the caller, which applies its documented fallback.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
			Model: c.model,
			Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
		})
		if err != nil {
			lastErr = err
			c.log.Debug("completion attempt failed", "attempt", attempt, "error", err)
			continue
		}
		output := resp.OutputText()
		if output == "" {
			lastErr = errors.New("model returned an empty response")
			continue
		}
		return output, nil
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", maxAttempts, lastErr)
}
