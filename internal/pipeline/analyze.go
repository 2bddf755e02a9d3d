// Package pipeline provides the high-level orchestration for resume-job
// match analysis: cleaning, segmentation, requirement extraction, concurrent
// scorer execution, and score combination.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/requirements"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

// topListLimit bounds the matched/missing keyword lists on the result.
const topListLimit = 10

// Analyzer runs complete analysis requests. The dictionary and capabilities
// are injected at construction time, loaded once per process, and read-only
// thereafter; Analyzer is safe for concurrent use.
type Analyzer struct {
	dict     *skills.Dictionary
	embedder scoring.Embedder
	reranker scoring.Reranker
}

// New creates an Analyzer. The dictionary and embedder are required; the
// reranker may be nil when only Classic mode will be used.
func New(dict *skills.Dictionary, embedder scoring.Embedder, reranker scoring.Reranker) (*Analyzer, error) {
	if dict == nil {
		return nil, fmt.Errorf("skill dictionary is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder capability is required")
	}
	return &Analyzer{dict: dict, embedder: embedder, reranker: reranker}, nil
}

// Analyze scores a resume against a job description using the requested
// pipeline. The computation is pure: identical inputs and deterministic
// capabilities produce an identical ScoreBreakdown.
func (a *Analyzer) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &InvalidInputError{Message: err.Error()}
	}
	if req.Mode == types.ModePremium && a.reranker == nil {
		return nil, &scoring.UnavailableError{Component: "reranker", Cause: errors.New("no reranker configured")}
	}

	resumeClean, resumeTruncated := textproc.Clean(req.ResumeText)
	jobClean, jobTruncated := textproc.Clean(req.JobText)
	if resumeClean == "" {
		return nil, &InvalidInputError{Field: "resume_text", Message: "empty after cleaning"}
	}
	if jobClean == "" {
		return nil, &InvalidInputError{Field: "job_text", Message: "empty after cleaning"}
	}

	resumeDoc := textproc.Segment(resumeClean, resumeTruncated)
	jobDoc := textproc.Segment(jobClean, jobTruncated)

	reqs := requirements.Extract(jobDoc, a.dict)
	resumeSkills := a.dict.Match(resumeClean)
	jobSkills := a.dict.Match(jobClean)

	missingMustHave := reqs.MustHave.Subtract(resumeSkills)

	// Scorers are independent: each reads its slice of the documents and
	// writes only its own slot. The combiner below is the sole
	// synchronization point.
	var (
		keywordRes    scoring.KeywordResult
		bm25Score     float64
		semanticScore float64
		evidenceScore float64
		rerankScore   float64
	)

	g, gctx := errgroup.WithContext(ctx)

	if req.Mode == types.ModeClassic {
		g.Go(func() error {
			keywordRes = scoring.ScoreKeywords(resumeClean, jobClean, resumeSkills, jobSkills, reqs)
			return nil
		})
	} else {
		g.Go(func() error {
			bm25Score = scoring.ScoreBM25(resumeClean, jobClean)
			return nil
		})
		g.Go(func() error {
			score, err := scoring.ScoreRerank(gctx, jobClean, resumeDoc, a.reranker)
			if err != nil {
				return err
			}
			rerankScore = score
			return nil
		})
	}

	g.Go(func() error {
		score, err := scoring.ScoreSemantic(gctx, resumeDoc, jobClean, a.embedder)
		if err != nil {
			return err
		}
		semanticScore = score
		return nil
	})
	g.Go(func() error {
		evidenceScore = scoring.ScoreEvidence(resumeClean, a.dict)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined scoring.Combined
	breakdown := types.ScoreBreakdown{
		SemanticScore:        semanticScore,
		EvidenceScore:        evidenceScore,
		MissingMustHaveCount: len(missingMustHave),
	}

	if req.Mode == types.ModeClassic {
		combined = scoring.CombineClassic(keywordRes.Score, semanticScore, evidenceScore, len(missingMustHave))
		breakdown.KeywordScore = keywordRes.Score
	} else {
		combined = scoring.CombinePremium(bm25Score, semanticScore, rerankScore, evidenceScore, len(missingMustHave))
		breakdown.BM25Score = bm25Score
		breakdown.RerankScore = rerankScore
		breakdown.CalibratedScore = combined.Calibrated
	}

	breakdown.RawScore = combined.Raw
	breakdown.Constrained = combined.Constrained
	breakdown.FinalScore = combined.Final
	breakdown.CapApplied = combined.CapApplied
	breakdown.MustHavePenalty = combined.Penalty

	return a.buildResult(req.Mode, breakdown, resumeSkills, jobSkills, reqs, resumeTruncated || jobTruncated), nil
}

// buildResult assembles the explainable result lists: matched and missing
// skills, with must-have and preferred misses reported separately, and the
// prioritized top-matches/missing-keywords lists.
func (a *Analyzer) buildResult(
	mode types.Mode,
	breakdown types.ScoreBreakdown,
	resumeSkills, jobSkills types.SkillSet,
	reqs types.RequirementSet,
	truncated bool,
) *types.AnalysisResult {
	matched := resumeSkills.Intersect(jobSkills)
	missing := jobSkills.Subtract(resumeSkills)
	missingMustHave := reqs.MustHave.Subtract(resumeSkills)
	missingPreferred := reqs.Preferred.Subtract(resumeSkills)

	topMatches := prioritized(
		matched.Intersect(reqs.MustHave),
		matched.Intersect(reqs.Preferred),
		matched.Subtract(reqs.MustHave).Subtract(reqs.Preferred),
	)
	missingKeywords := prioritized(
		missingMustHave,
		missingPreferred,
		missing.Subtract(reqs.MustHave).Subtract(reqs.Preferred),
	)

	return &types.AnalysisResult{
		ID:               uuid.New(),
		Mode:             mode,
		Score:            breakdown.FinalScore,
		MatchedSkills:    matched.Sorted(),
		MissingSkills:    missing.Sorted(),
		MustHaveMissing:  missingMustHave.Sorted(),
		PreferredMissing: missingPreferred.Sorted(),
		TopMatches:       topMatches,
		MissingKeywords:  missingKeywords,
		Breakdown:        breakdown,
		Truncated:        truncated,
	}
}

// prioritized concatenates skill groups in priority order, each group sorted
// longest-name first, truncated to the display limit.
func prioritized(groups ...types.SkillSet) []string {
	out := make([]string, 0, topListLimit)
	for _, group := range groups {
		out = append(out, group.RankedByLength()...)
	}
	if len(out) > topListLimit {
		out = out[:topListLimit]
	}
	return out
}
