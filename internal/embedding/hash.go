// Package embedding provides local, deterministic embedding and reranking
// capabilities for use when no external model service is configured, such as
// in the CLI and in tests. The vectors are feature-hashed bag-of-words
// representations: purely lexical, but deterministic and dependency-free.
package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// DefaultDim is the vector dimension used when none is specified.
const DefaultDim = 256

var tokenPattern = regexp.MustCompile(`\b[a-z0-9]{2,}\b`)

// Hashing is a feature-hashing embedder: token counts are accumulated into a
// fixed-dimension vector by hash bucket and L2-normalized. Deterministic for
// identical text; safe for concurrent use.
type Hashing struct {
	dim int
}

// NewHashing creates a Hashing embedder with the given dimension, or
// DefaultDim when dim is not positive.
func NewHashing(dim int) *Hashing {
	if dim <= 0 {
		dim = DefaultDim
	}
	return &Hashing{dim: dim}
}

// Dim returns the vector dimension.
func (h *Hashing) Dim() int {
	return h.dim
}

// Embed produces the normalized feature-hash vector for the text. Text with
// no tokens embeds to the zero vector.
func (h *Hashing) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, h.dim)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		hasher := fnv.New32a()
		hasher.Write([]byte(token))
		vec[int(hasher.Sum32())%h.dim]++
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
