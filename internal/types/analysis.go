package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Mode selects which scoring pipeline an analysis uses.
type Mode string

const (
	// ModeClassic is the weighted keyword + semantic + evidence pipeline.
	ModeClassic Mode = "classic"
	// ModePremium is the BM25 + semantic + rerank + evidence pipeline with
	// sigmoid calibration.
	ModePremium Mode = "premium"
)

// ParseMode converts a mode name into a Mode, accepting any letter case.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClassic, ModePremium:
		return Mode(s), nil
	case "Classic", "CLASSIC":
		return ModeClassic, nil
	case "Premium", "PREMIUM":
		return ModePremium, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeClassic, ModePremium)
	}
}

// AnalyzeRequest represents a single resume-job matching request.
// Oversized text is not rejected here; it is truncated during cleaning and
// reported via the Truncated flag on the result.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=10"`
	JobText    string `json:"job_text" validate:"required,min=10"`
	Mode       Mode   `json:"mode" validate:"required,oneof=classic premium"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScoreBreakdown holds every sub-score that contributed to a final score.
// Component scores are 0-100. Constructed once per analysis and never mutated
// after return.
type ScoreBreakdown struct {
	KeywordScore    float64 `json:"keyword_score"`
	BM25Score       float64 `json:"bm25_score"`
	SemanticScore   float64 `json:"semantic_score"`
	EvidenceScore   float64 `json:"evidence_score"`
	RerankScore     float64 `json:"rerank_score"`
	RawScore        float64 `json:"raw_score"`
	Constrained     float64 `json:"constrained_score"`
	CalibratedScore float64 `json:"calibrated_score,omitempty"`
	FinalScore      float64 `json:"final_score"`

	CapApplied           bool `json:"cap_applied"`
	MustHavePenalty      int  `json:"must_have_penalty"`
	MissingMustHaveCount int  `json:"missing_must_have_count"`
}

// AnalysisResult is the complete outcome of one analysis request.
type AnalysisResult struct {
	ID    uuid.UUID `json:"id"`
	Mode  Mode      `json:"mode"`
	Score float64   `json:"score"`

	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	MustHaveMissing  []string `json:"must_have_missing"`
	PreferredMissing []string `json:"preferred_missing"`
	TopMatches       []string `json:"top_matches"`
	MissingKeywords  []string `json:"missing_keywords"`

	Breakdown ScoreBreakdown `json:"score_breakdown"`
	Truncated bool           `json:"truncated"`
}
