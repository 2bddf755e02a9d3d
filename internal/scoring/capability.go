// Package scoring implements the individual scoring components of the hybrid
// resume-job matching engine: keyword/BM25, semantic, evidence, reranking,
// and the combiner that folds them into a final calibrated score.
package scoring

import "context"

// Embedder is the externally supplied embedding capability. Implementations
// must be deterministic for identical text and model version, and safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Reranker is the externally supplied cross-encoder capability. It returns
// one relevance score per passage, in the same order as the input.
type Reranker interface {
	Rerank(ctx context.Context, query string, passages []string) ([]float64, error)
}
