package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Category weights for weighted-recall keyword scoring.
const (
	mustHaveWeight  = 2.0
	preferredWeight = 1.0
	otherWeight     = 0.5
)

// Jaccard adjustment constants: broad lexical overlap beyond the curated
// dictionary moves the keyword score by up to ±10 points.
const (
	jaccardBaseline  = 0.05
	jaccardScale     = 100.0
	jaccardMaxAdjust = 10.0
)

var keywordTokenPattern = regexp.MustCompile(`\b[a-z0-9]{3,}\b`)

var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"from": true, "as": true, "is": true, "was": true, "are": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "should": true, "could": true, "may": true, "might": true,
	"must": true, "can": true,
}

// KeywordResult is the outcome of Classic keyword scoring.
type KeywordResult struct {
	Score            float64
	Matched          types.SkillSet
	MissingMustHave  types.SkillSet
	MissingPreferred types.SkillSet
}

// ScoreKeywords computes the Classic weighted-recall keyword score. Each job
// skill contributes its category weight (must-have 2.0, preferred 1.0, other
// 0.5); the matched weight fraction is scaled to 0-100, then adjusted by up
// to ±10 points from Jaccard token overlap between the two texts.
func ScoreKeywords(resumeText, jobText string, resumeSkills, jobSkills types.SkillSet, reqs types.RequirementSet) KeywordResult {
	otherSkills := jobSkills.Subtract(reqs.MustHave).Subtract(reqs.Preferred)

	score := categoryScore(resumeSkills, reqs.MustHave, mustHaveWeight) +
		categoryScore(resumeSkills, reqs.Preferred, preferredWeight) +
		categoryScore(resumeSkills, otherSkills, otherWeight)

	maxPossible := 0.0
	if len(reqs.MustHave) > 0 {
		maxPossible += mustHaveWeight
	}
	if len(reqs.Preferred) > 0 {
		maxPossible += preferredWeight
	}
	if len(otherSkills) > 0 {
		maxPossible += otherWeight
	}

	k := 0.0
	if maxPossible > 0 {
		k = 100 * (score / maxPossible)
	}

	k = clamp(k+jaccardAdjustment(resumeText, jobText), 0, 100)

	return KeywordResult{
		Score:            round1(k),
		Matched:          resumeSkills.Intersect(jobSkills),
		MissingMustHave:  reqs.MustHave.Subtract(resumeSkills),
		MissingPreferred: reqs.Preferred.Subtract(resumeSkills),
	}
}

// categoryScore is the weighted recall of one requirement category. An empty
// category contributes nothing (and is excluded from the denominator by the
// caller), so no division-by-zero is possible.
func categoryScore(resumeSkills, category types.SkillSet, weight float64) float64 {
	if len(category) == 0 {
		return 0
	}
	matched := len(resumeSkills.Intersect(category))
	return weight * float64(matched) / float64(len(category))
}

// jaccardAdjustment rewards lexical overlap beyond curated skills and
// penalizes very low overlap, clipped to [-10, +10].
func jaccardAdjustment(resumeText, jobText string) float64 {
	resumeTokens := contentTokens(resumeText)
	jobTokens := contentTokens(jobText)
	if len(jobTokens) == 0 {
		return clamp((0-jaccardBaseline)*jaccardScale, -jaccardMaxAdjust, jaccardMaxAdjust)
	}

	intersection := 0
	union := len(jobTokens)
	for token := range resumeTokens {
		if jobTokens[token] {
			intersection++
		} else {
			union++
		}
	}

	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}
	return clamp((jaccard-jaccardBaseline)*jaccardScale, -jaccardMaxAdjust, jaccardMaxAdjust)
}

func contentTokens(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range keywordTokenPattern.FindAllString(strings.ToLower(text), -1) {
		if !stopwords[token] {
			tokens[token] = true
		}
	}
	return tokens
}
