package vectorstore

import (
	"alimgen/internal/domain"
	"alimgen/internal/vectorstore/memory"
	"alimgen/internal/vectorstore/qdrant"
)

// Storage stores (text, vector) pairs and supports similarity search.
// Implementations must return results in non-increasing score order with ties
// broken by insertion order.
type Storage interface {
	Init(dimension int) error
	Upsert(texts []string, vectors [][]float64) error
	Search(vector []float64, topK int) ([]domain.SearchResult, error)
	Clear() error
}

// NewMemoryStore returns the default in-memory brute-force store.
func NewMemoryStore() Storage { return memory.NewStorage() }

// QdrantConfig carries connection details for a Qdrant backend.
type QdrantConfig = qdrant.Config

// NewQdrantStore returns a store backed by a Qdrant collection.
func NewQdrantStore(cfg QdrantConfig) Storage { return qdrant.NewStorage(cfg) }
