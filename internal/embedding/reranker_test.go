package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityReranker_ScoresInInputOrder(t *testing.T) {
	reranker := NewSimilarityReranker(NewHashing(DefaultDim))

	scores, err := reranker.Rerank(context.Background(), "python backend engineer", []string{
		"built python backend services",
		"decorated wedding cakes",
	})

	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Greater(t, scores[0], scores[1])
}

func TestSimilarityReranker_ScoreRange(t *testing.T) {
	reranker := NewSimilarityReranker(NewHashing(DefaultDim))

	scores, err := reranker.Rerank(context.Background(), "python engineer", []string{
		"python engineer",
		"",
	})

	require.NoError(t, err)
	// An identical passage hits the top of the range; an empty passage has
	// zero cosine and lands at the bottom.
	assert.InDelta(t, relevanceScale, scores[0], 1e-9)
	assert.InDelta(t, -relevanceScale, scores[1], 1e-9)
}

func TestSimilarityReranker_EmptyPassages(t *testing.T) {
	reranker := NewSimilarityReranker(NewHashing(DefaultDim))

	scores, err := reranker.Rerank(context.Background(), "python engineer", nil)

	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestSimilarityReranker_Deterministic(t *testing.T) {
	reranker := NewSimilarityReranker(NewHashing(DefaultDim))
	passages := []string{"built python services", "managed cloud infrastructure"}

	first, err := reranker.Rerank(context.Background(), "python engineer", passages)
	require.NoError(t, err)
	second, err := reranker.Rerank(context.Background(), "python engineer", passages)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
