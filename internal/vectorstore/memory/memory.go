package memory

import (
	"errors"
	"math"
	"sort"
	"sync"

	"alimgen/internal/domain"
)

// Storage is an in-memory vector store using brute-force inner-product search
// over L2-normalized vectors, which equals cosine similarity. Exact search is
// fine at the corpus sizes this system targets.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	texts     []string
}

func NewStorage() *Storage { return &Storage{} }

func (s *Storage) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.texts = nil
	return nil
}

// Upsert stores normalized copies of the vectors. Insertion order is
// preserved and used as the tie-break during search.
func (s *Storage) Upsert(texts []string, vectors [][]float64) error {
	if len(texts) != len(vectors) {
		return errors.New("texts and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	for i := range vectors {
		s.vectors = append(s.vectors, normalize(vectors[i]))
	}
	s.texts = append(s.texts, texts...)
	return nil
}

func (s *Storage) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 5
	}
	query := normalize(vector)
	idxs := make([]int, len(s.vectors))
	scores := make([]float64, len(s.vectors))
	for i := range s.vectors {
		idxs[i] = i
		scores[i] = dot(s.vectors[i], query)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return scores[idxs[a]] > scores[idxs[b]] })
	if topK > len(idxs) {
		topK = len(idxs)
	}
	results := make([]domain.SearchResult, 0, topK)
	for i := 0; i < topK; i++ {
		j := idxs[i]
		results = append(results, domain.SearchResult{Text: s.texts[j], Score: scores[j]})
	}
	return results, nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = nil
	s.texts = nil
	return nil
}

func normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
