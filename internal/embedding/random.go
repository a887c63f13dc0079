package embedding

import (
	"context"
	"math/rand"
)

// RandomEmbedder is the last-resort embedder. Its vectors carry no semantic
// signal; it exists so that index construction never blocks the pipeline even
// when both the hosted model and the TF-IDF fallback are unusable.
type RandomEmbedder struct {
	rng *rand.Rand
}

func NewRandomEmbedder(seed int64) *RandomEmbedder {
	return &RandomEmbedder{rng: rand.New(rand.NewSource(seed))}
}

func (e *RandomEmbedder) Name() string { return "random" }

func (e *RandomEmbedder) Prepare(_ []string) error { return nil }

func (e *RandomEmbedder) Dimension() int { return FallbackDimension }

func (e *RandomEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	vec := make([]float64, FallbackDimension)
	for i := range vec {
		vec[i] = e.rng.Float64()
	}
	return vec, nil
}
