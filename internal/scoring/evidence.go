package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
)

// Evidence scoring rewards skills substantiated by action-verb context and
// quantified impact, as opposed to mere keyword presence.
const (
	evidenceVerbWindow  = 6
	contextHitCap       = 6
	metricHitCap        = 4
	evidenceHitValue    = 10
	contextContribution = contextHitCap * evidenceHitValue
	metricContribution  = metricHitCap * evidenceHitValue
)

var actionVerbs = map[string]bool{
	"built": true, "developed": true, "implemented": true, "designed": true,
	"optimized": true, "deployed": true, "migrated": true, "improved": true,
	"created": true, "architected": true, "engineered": true, "delivered": true,
	"launched": true, "scaled": true, "enhanced": true, "led": true,
}

// metricPatterns detect quantifiable-impact statements: percentages,
// currency, latency, user counts, multipliers, impact phrases, large numbers.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\s*(?:ms|milliseconds|seconds|minutes|hours)`),
	regexp.MustCompile(`\d+(?:\.\d+)?\s*[kmb]?\s*(?:users|clients|customers|requests|downloads)`),
	regexp.MustCompile(`\d+x\s*(?:faster|improvement|increase)`),
	regexp.MustCompile(`(?:reduced|increased|improved|decreased)\s+by\s+\d+`),
	regexp.MustCompile(`\d+\s*(?:million|billion|thousand)`),
}

// ScoreEvidence counts context hits (a dictionary skill with an action verb
// within ±6 tokens, each skill counted once) and metric hits (each pattern
// family counted once), contributing min(60, context×10) + min(40, metric×10).
func ScoreEvidence(resumeText string, dict *skills.Dictionary) float64 {
	tokens := skills.Tokenize(resumeText)

	verbAt := make([]bool, len(tokens))
	for i, token := range tokens {
		verbAt[i] = actionVerbs[token]
	}

	withContext := make(map[string]bool)
	for _, span := range dict.MatchSpans(tokens) {
		if withContext[span.Canonical] {
			continue
		}
		lo := span.Start - evidenceVerbWindow
		if lo < 0 {
			lo = 0
		}
		hi := span.End + evidenceVerbWindow
		if hi > len(tokens) {
			hi = len(tokens)
		}
		for i := lo; i < hi; i++ {
			if verbAt[i] {
				withContext[span.Canonical] = true
				break
			}
		}
	}

	contextHits := len(withContext)
	if contextHits > contextHitCap {
		contextHits = contextHitCap
	}

	lower := strings.ToLower(resumeText)
	metricHits := 0
	for _, pattern := range metricPatterns {
		if pattern.MatchString(lower) {
			metricHits++
		}
	}
	if metricHits > metricHitCap {
		metricHits = metricHitCap
	}

	score := float64(contextHits*evidenceHitValue + metricHits*evidenceHitValue)
	return clamp(score, 0, contextContribution+metricContribution)
}
