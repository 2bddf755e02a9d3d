package scoring

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Passage selection and aggregation policy for cross-encoder reranking.
const (
	rerankTopK            = 5
	rerankMaxPassages     = 20
	rerankMinPassageChars = 20
	rerankChunkRunes      = 200
	rerankSigmoidSlope    = 0.3
)

// SelectPassages draws candidate passages from the EXPERIENCE and PROJECTS
// sections, falling back to fixed-size whole-resume chunks when both are
// absent. Very short lines (section labels, dates) are skipped.
func SelectPassages(resume *types.Document) []string {
	var passages []string
	for _, name := range []string{types.SectionExperience, types.SectionProjects} {
		text, ok := resume.Section(name)
		if !ok {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if len(line) > rerankMinPassageChars {
				passages = append(passages, line)
			}
		}
	}

	if len(passages) == 0 {
		passages = chunkText(resume.Clean, rerankChunkRunes)
	}

	if len(passages) > rerankMaxPassages {
		passages = passages[:rerankMaxPassages]
	}
	return passages
}

// ScoreRerank delegates relevance scoring of the selected passages to the
// cross-encoder capability, then aggregates the mean of the top K scores and
// squashes it to 0-100. Capability failure surfaces as an UnavailableError.
func ScoreRerank(ctx context.Context, jobText string, resume *types.Document, reranker Reranker) (float64, error) {
	passages := SelectPassages(resume)
	if len(passages) == 0 {
		return 0, nil
	}

	scores, err := reranker.Rerank(ctx, jobText, passages)
	if err != nil {
		return 0, &UnavailableError{Component: "reranker", Cause: err}
	}
	if len(scores) == 0 {
		return 0, nil
	}

	sorted := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if len(sorted) > rerankTopK {
		sorted = sorted[:rerankTopK]
	}

	mean := 0.0
	for _, s := range sorted {
		mean += s
	}
	mean /= float64(len(sorted))

	squashed := 100 / (1 + math.Exp(-rerankSigmoidSlope*mean))
	return round1(clamp(squashed, 0, 100)), nil
}

func chunkText(text string, size int) []string {
	var chunks []string
	runes := []rune(text)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if len(chunk) > rerankMinPassageChars {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
