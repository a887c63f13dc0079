package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultEmbeddingModel = openai.EmbeddingModelTextEmbedding3Small

// OpenAIEmbedder embeds text through the hosted OpenAI embeddings endpoint,
// one request per text. Failures are not retried here; the caller falls back
// to the offline embedders instead.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	dimension int
}

func NewOpenAIEmbedder(apiKey, model string) *OpenAIEmbedder {
	m := defaultEmbeddingModel
	if model != "" {
		m = openai.EmbeddingModel(model)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIEmbedder{client: &client, model: m}
}

func (e *OpenAIEmbedder) Name() string { return "openai" }

// Prepare is not required for remote embedding; the dimension is learned
// lazily from the first returned vector.
func (e *OpenAIEmbedder) Prepare(_ []string) error { return nil }

func (e *OpenAIEmbedder) Dimension() int { return e.dimension }

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, errors.New("openai embeddings: empty response")
	}
	vec := resp.Data[0].Embedding
	if e.dimension == 0 {
		e.dimension = len(vec)
	}
	return vec, nil
}
