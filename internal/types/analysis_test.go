package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "classic", want: ModeClassic},
		{input: "premium", want: ModePremium},
		{input: "Classic", want: ModeClassic},
		{input: "PREMIUM", want: ModePremium},
		{input: "deluxe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{
		ResumeText: "Python developer with experience",
		JobText:    "Required: Python and React",
		Mode:       ModeClassic,
	}
	assert.NoError(t, valid.Validate())

	short := valid
	short.ResumeText = "too short"
	assert.Error(t, short.Validate())

	missing := valid
	missing.JobText = ""
	assert.Error(t, missing.Validate())

	badMode := valid
	badMode.Mode = "deluxe"
	assert.Error(t, badMode.Validate())
}

func TestScoreBreakdown_JSONKeepsZeroComponents(t *testing.T) {
	// A component that scored 0 must still appear in serialized output; a
	// zero keyword or BM25 score is a result, not an absent field.
	data, err := json.Marshal(ScoreBreakdown{
		SemanticScore: 42.5,
		FinalScore:    23.4,
	})

	assert.NoError(t, err)
	assert.Contains(t, string(data), `"keyword_score":0`)
	assert.Contains(t, string(data), `"bm25_score":0`)
	assert.Contains(t, string(data), `"rerank_score":0`)
}

func TestAnalyzeRequest_Validate_MinIsTenCharacters(t *testing.T) {
	req := AnalyzeRequest{
		ResumeText: strings.Repeat("a", 10),
		JobText:    strings.Repeat("b", 10),
		Mode:       ModePremium,
	}

	assert.NoError(t, req.Validate())
}
