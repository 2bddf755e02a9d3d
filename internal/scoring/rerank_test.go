package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

// stubReranker records its inputs and returns canned scores.
type stubReranker struct {
	scores   []float64
	err      error
	passages []string
}

func (s *stubReranker) Rerank(_ context.Context, _ string, passages []string) ([]float64, error) {
	s.passages = passages
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func TestSelectPassages_FromSections(t *testing.T) {
	resume := &types.Document{
		Clean: "ignored when sections exist",
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: "Built the payments platform end to end\n2021\nShipped the fraud detection pipeline"},
			{Name: types.SectionProjects, Text: "Wrote an open source CLI for log analysis"},
		},
	}

	passages := SelectPassages(resume)

	// Short lines (the bare year) are skipped.
	assert.Equal(t, []string{
		"Built the payments platform end to end",
		"Shipped the fraud detection pipeline",
		"Wrote an open source CLI for log analysis",
	}, passages)
}

func TestSelectPassages_FallbackChunksWholeText(t *testing.T) {
	resume := &types.Document{Clean: strings.Repeat("engineer with broad production experience ", 20)}

	passages := SelectPassages(resume)

	require.NotEmpty(t, passages)
	for _, p := range passages {
		assert.LessOrEqual(t, len([]rune(p)), rerankChunkRunes)
	}
}

func TestSelectPassages_CappedAtMax(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("Delivered production feature number %02d on schedule", i))
	}
	resume := &types.Document{
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: strings.Join(lines, "\n")},
		},
	}

	passages := SelectPassages(resume)

	assert.Len(t, passages, rerankMaxPassages)
}

func TestScoreRerank_TopKMean(t *testing.T) {
	resume := &types.Document{
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: "Built the payments platform\nShipped the fraud pipeline\nMigrated the data warehouse"},
		},
	}
	reranker := &stubReranker{scores: []float64{2, 4, 6}}

	score, err := ScoreRerank(context.Background(), "job", resume, reranker)

	require.NoError(t, err)
	// mean(2,4,6)=4; 100/(1+e^(-0.3*4)) = 76.85... -> 76.9
	assert.Equal(t, 76.9, score)
}

func TestScoreRerank_OnlyTopKAggregated(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("Delivered production feature number %02d on schedule", i))
	}
	resume := &types.Document{
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: strings.Join(lines, "\n")},
		},
	}
	// Five strong passages and five weak ones: the weak tail must not dilute.
	reranker := &stubReranker{scores: []float64{10, 10, 10, 10, 10, -10, -10, -10, -10, -10}}

	score, err := ScoreRerank(context.Background(), "job", resume, reranker)

	require.NoError(t, err)
	// mean of top 5 = 10; 100/(1+e^-3) = 95.25... -> 95.3
	assert.Equal(t, 95.3, score)
}

func TestScoreRerank_NoPassages(t *testing.T) {
	reranker := &stubReranker{scores: []float64{1}}

	score, err := ScoreRerank(context.Background(), "job", &types.Document{Clean: "short"}, reranker)

	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.Nil(t, reranker.passages, "reranker must not be called without passages")
}

func TestScoreRerank_RerankerFailure(t *testing.T) {
	resume := &types.Document{
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: "Built the payments platform end to end"},
		},
	}
	reranker := &stubReranker{err: errors.New("model offline")}

	_, err := ScoreRerank(context.Background(), "job", resume, reranker)

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "reranker", unavailable.Component)
}
