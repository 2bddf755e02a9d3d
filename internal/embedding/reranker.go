package embedding

import (
	"context"
	"fmt"
	"math"
)

// relevanceScale maps cosine similarity onto the score range a cross-encoder
// typically produces, so the downstream sigmoid normalization spreads usefully.
const relevanceScale = 8.0

// SimilarityReranker scores passages by embedding similarity to the query.
// It stands in for an external cross-encoder service in the CLI and tests.
type SimilarityReranker struct {
	embedder *Hashing
}

// NewSimilarityReranker creates a reranker backed by the given embedder.
func NewSimilarityReranker(embedder *Hashing) *SimilarityReranker {
	return &SimilarityReranker{embedder: embedder}
}

// Rerank returns one relevance score per passage, in input order. Cosine
// similarity in [0, 1] is mapped to [-relevanceScale, +relevanceScale].
func (r *SimilarityReranker) Rerank(ctx context.Context, query string, passages []string) ([]float64, error) {
	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scores := make([]float64, len(passages))
	for i, passage := range passages {
		vec, err := r.embedder.Embed(ctx, passage)
		if err != nil {
			return nil, fmt.Errorf("failed to embed passage %d: %w", i, err)
		}
		scores[i] = (2*cosine(queryVec, vec) - 1) * relevanceScale
	}
	return scores, nil
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
