package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.Document{
		Clean: "Python developer with cloud experience",
		Sections: []types.Section{
			{Name: types.SectionExperience, Text: "built services"},
			{Name: types.SectionSkills, Text: "python, aws"},
		},
	}

	p.PrintDocument("RESUME", doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "EXPERIENCE")
	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Truncated: false")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument("RESUME", nil)

	assert.Empty(t, buf.String())
}

func TestPrintDocument_NoSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument("JOB", &types.Document{Clean: "plain text"})

	assert.Contains(t, buf.String(), "none detected")
}

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(types.RequirementSet{
		MustHave:  types.NewSkillSet("python", "react"),
		Preferred: types.NewSkillSet(),
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED REQUIREMENTS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "react")
	assert.Contains(t, output, "(none)")
}

func TestPrintAnalysis_Classic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Mode:  types.ModeClassic,
		Score: 72.5,
		Breakdown: types.ScoreBreakdown{
			KeywordScore:  80,
			SemanticScore: 65,
			EvidenceScore: 40,
			RawScore:      72.5,
			FinalScore:    72.5,
		},
		TopMatches: []string{"python", "react"},
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH ANALYSIS")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "Keyword")
	assert.Contains(t, output, "python")
	assert.NotContains(t, output, "BM25")
	assert.NotContains(t, output, "Calibrated")
}

func TestPrintAnalysis_PremiumWithCap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Mode:  types.ModePremium,
		Score: 38.9,
		Breakdown: types.ScoreBreakdown{
			BM25Score:            55,
			RerankScore:          60,
			SemanticScore:        50,
			EvidenceScore:        30,
			RawScore:             51.3,
			CapApplied:           true,
			MustHavePenalty:      12,
			MissingMustHaveCount: 1,
			CalibratedScore:      38.9,
			FinalScore:           38.9,
		},
		MissingKeywords: []string{"aws"},
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "BM25")
	assert.Contains(t, output, "Rerank")
	assert.Contains(t, output, "Cap applied")
	assert.Contains(t, output, "penalty 12")
	assert.Contains(t, output, "Calibrated: 38.9")
	assert.Contains(t, output, "aws")
	assert.NotContains(t, output, "Keyword")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestWriteSkillList_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Mode:       types.ModeClassic,
		TopMatches: []string{"one", "two", "three", "four", "five", "six", "seven"},
	}

	p.PrintAnalysis(result)

	assert.Contains(t, buf.String(), "... and 2 more")
}
