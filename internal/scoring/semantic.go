package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Section weights for semantic scoring. When a section is absent, the
// remaining weights are renormalized over the parts that are present; the
// whole-resume part is always present as the fallback.
const (
	semanticWholeWeight      = 0.4
	semanticExperienceWeight = 0.4
	semanticProjectsWeight   = 0.2

	// semanticMaxRunes bounds the text sent to the embedder per part.
	semanticMaxRunes = 10000
)

// ScoreSemantic computes section-weighted embedding similarity between the
// resume and the job text, rescaling cosine similarity from [-1, 1] to
// [0, 100]. Embedder failure is fatal and surfaces as an UnavailableError.
func ScoreSemantic(ctx context.Context, resume *types.Document, jobText string, embedder Embedder) (float64, error) {
	jobVec, err := embed(ctx, embedder, jobText)
	if err != nil {
		return 0, err
	}

	type part struct {
		text   string
		weight float64
	}
	parts := []part{{resume.Clean, semanticWholeWeight}}
	if text, ok := resume.Section(types.SectionExperience); ok {
		parts = append(parts, part{text, semanticExperienceWeight})
	}
	if text, ok := resume.Section(types.SectionProjects); ok {
		parts = append(parts, part{text, semanticProjectsWeight})
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, p := range parts {
		vec, err := embed(ctx, embedder, p.text)
		if err != nil {
			return 0, err
		}
		sim, err := cosine(vec, jobVec)
		if err != nil {
			return 0, &UnavailableError{Component: "embedder", Cause: err}
		}
		weightedSum += p.weight * rescaleCosine(sim)
		totalWeight += p.weight
	}

	if totalWeight == 0 {
		return 0, nil
	}
	return round1(clamp(weightedSum/totalWeight, 0, 100)), nil
}

func embed(ctx context.Context, embedder Embedder, text string) ([]float64, error) {
	vec, err := embedder.Embed(ctx, headRunes(text, semanticMaxRunes))
	if err != nil {
		return nil, &UnavailableError{Component: "embedder", Cause: err}
	}
	return vec, nil
}

// rescaleCosine maps cosine similarity from [-1, 1] to [0, 100].
func rescaleCosine(sim float64) float64 {
	return (sim + 1) / 2 * 100
}

// cosine computes cosine similarity between two vectors. Zero-norm vectors
// yield zero similarity rather than NaN.
func cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func headRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
