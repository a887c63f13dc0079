package embedding

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
)

const (
	// FallbackDimension is the fixed vector size of the offline embedders.
	FallbackDimension = 384

	maxVocabulary = 1000
)

// TFIDFEmbedder is the deterministic fallback used when the hosted embedding
// model is unavailable. It builds a vocabulary of the most frequent tokens in
// the prepared corpus and emits fixed-size TF-IDF vectors. Same corpus, same
// order, same vectors.
type TFIDFEmbedder struct {
	vocabulary map[string]int
	idf        map[string]float64
	prepared   bool
}

func NewTFIDFEmbedder() *TFIDFEmbedder {
	return &TFIDFEmbedder{}
}

func (e *TFIDFEmbedder) Name() string { return "tfidf" }

func (e *TFIDFEmbedder) Dimension() int { return FallbackDimension }

// Prepare builds the vocabulary from up to 1000 most frequent tokens across
// the corpus, ranked by total count with first-appearance order as tie-break.
func (e *TFIDFEmbedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for tf-idf prepare")
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	df := make(map[string]int)
	pos := 0
	for _, text := range corpus {
		tokens := tokenize(text)
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := firstSeen[tok]; !ok {
				firstSeen[tok] = pos
				pos++
			}
			counts[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}
	if len(counts) == 0 {
		return errors.New("no tokens found in corpus")
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}

	n := float64(len(corpus))
	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make(map[string]float64, len(terms))
	for i, term := range terms {
		e.vocabulary[term] = i
		e.idf[term] = math.Log(n / (1 + float64(df[term])))
	}
	e.prepared = true
	return nil
}

// Embed returns a fixed 384-dimensional TF-IDF vector. Tokens outside the
// vocabulary, or with a vocabulary index beyond the dimension, stay at zero.
func (e *TFIDFEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("tf-idf embedder not prepared")
	}
	vec := make([]float64, FallbackDimension)
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec, nil
	}
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	total := float64(len(tokens))
	for tok, count := range tf {
		idx, ok := e.vocabulary[tok]
		if !ok || idx >= FallbackDimension {
			continue
		}
		vec[idx] = (float64(count) / total) * e.idf[tok]
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
