package embedding

import (
	"context"
	"log/slog"
	"time"

	"alimgen/internal/domain"
)

// Service embeds whole corpora with a hosted model when available and a
// deterministic offline fallback when not. It never fails: in the worst case
// the vectors are random and similarity scores are meaningless, which is
// logged rather than hidden.
type Service struct {
	remote domain.Embedder
	log    *slog.Logger
}

// NewService wraps the optional remote embedder. Passing nil disables the
// hosted path entirely and goes straight to TF-IDF.
func NewService(remote domain.Embedder, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{remote: remote, log: log}
}

// ForCorpus embeds every text in input order and returns the embedder that
// produced the vectors, so that queries against the resulting index are
// embedded in the same vector space. A single remote failure abandons the
// whole batch; there is no per-item fallback.
func (s *Service) ForCorpus(ctx context.Context, texts []string) (domain.Embedder, [][]float64) {
	if s.remote != nil {
		vectors, err := embedAll(ctx, s.remote, texts)
		if err == nil {
			return s.remote, vectors
		}
		s.log.Warn("remote embedding failed, falling back to tf-idf", "error", err)
	}

	tfidf := NewTFIDFEmbedder()
	if err := tfidf.Prepare(texts); err == nil {
		vectors, err := embedAll(ctx, tfidf, texts)
		if err == nil {
			return tfidf, vectors
		}
		s.log.Warn("tf-idf embedding failed", "error", err)
	} else {
		s.log.Warn("tf-idf prepare failed", "error", err)
	}

	s.log.Warn("using random vectors; similarity scores will be meaningless")
	random := NewRandomEmbedder(time.Now().UnixNano())
	vectors, _ := embedAll(ctx, random, texts)
	return random, vectors
}

func embedAll(ctx context.Context, embedder domain.Embedder, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}
