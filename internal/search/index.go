package search

import (
	"context"
	"fmt"
	"log/slog"

	"alimgen/internal/domain"
	"alimgen/internal/embedding"
	"alimgen/internal/vectorstore"
)

// Index pairs a corpus with the embedder its vectors were produced by. It is
// built once and read-only afterwards; corpus changes require a rebuild.
type Index struct {
	embedder domain.Embedder
	store    vectorstore.Storage
	size     int
	log      *slog.Logger
}

// Build embeds the corpus through the embedding service and loads the store.
// The embedder chosen for the corpus (remote or fallback) is kept so queries
// are embedded in the same vector space.
func Build(ctx context.Context, texts []string, svc *embedding.Service, store vectorstore.Storage, log *slog.Logger) (*Index, error) {
	return BuildMasked(ctx, texts, texts, svc, store, log)
}

// BuildMasked indexes texts while embedding the provided masked variants at
// the same positions. The template corpus uses this to compute similarity
// over structure and wording rather than the literal placeholder names.
func BuildMasked(ctx context.Context, texts, masked []string, svc *embedding.Service, store vectorstore.Storage, log *slog.Logger) (*Index, error) {
	if log == nil {
		log = slog.Default()
	}
	if len(texts) == 0 {
		return &Index{log: log}, nil
	}
	if len(masked) != len(texts) {
		return nil, fmt.Errorf("masked corpus size %d does not match texts %d", len(masked), len(texts))
	}
	embedder, vectors := svc.ForCorpus(ctx, masked)
	if err := store.Init(embedder.Dimension()); err != nil {
		return nil, fmt.Errorf("init vector store: %w", err)
	}
	if err := store.Upsert(texts, vectors); err != nil {
		return nil, fmt.Errorf("load vector store: %w", err)
	}
	return &Index{embedder: embedder, store: store, size: len(texts), log: log}, nil
}

// Size reports the number of indexed texts.
func (ix *Index) Size() int {
	if ix == nil {
		return 0
	}
	return ix.size
}

// Search returns up to topK corpus texts by descending similarity to the
// query. An absent or empty index yields no results, as does a query that
// cannot be embedded; neither is an error for the caller.
func (ix *Index) Search(ctx context.Context, query string, topK int) []domain.SearchResult {
	if ix == nil || ix.size == 0 {
		return nil
	}
	vec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		ix.log.Warn("query embedding failed", "embedder", ix.embedder.Name(), "error", err)
		return nil
	}
	results, err := ix.store.Search(vec, topK)
	if err != nil {
		ix.log.Warn("vector search failed", "error", err)
		return nil
	}
	return results
}
