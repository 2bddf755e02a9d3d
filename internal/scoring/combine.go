package scoring

import "math"

// Final score weights for the two pipelines.
const (
	classicKeywordWeight  = 0.55
	classicSemanticWeight = 0.35
	classicEvidenceWeight = 0.10

	premiumBM25Weight     = 0.35
	premiumSemanticWeight = 0.35
	premiumRerankWeight   = 0.20
	premiumEvidenceWeight = 0.10
)

// Must-have cap and penalty: any missing mandatory requirement clamps the
// pre-penalty score to the cap, then subtracts a per-skill penalty.
const (
	MustHaveCap             = 70.0
	MustHavePenaltyPerSkill = 12
)

// Calibration sigmoid constants (Premium). The transform is recentered at 50
// so a constrained score of 50 maps to exactly 50.
const (
	calibrationSlope  = 0.08
	calibrationCenter = 50.0
)

// Combined is the outcome of folding component scores into a final score.
type Combined struct {
	Raw         float64
	Constrained float64
	Calibrated  float64
	Final       float64
	CapApplied  bool
	Penalty     int
}

// CombineClassic folds the Classic components (keyword 55%, semantic 35%,
// evidence 10%) and applies the must-have cap and penalty.
func CombineClassic(keyword, semantic, evidence float64, missingMustHave int) Combined {
	raw := classicKeywordWeight*keyword +
		classicSemanticWeight*semantic +
		classicEvidenceWeight*evidence

	c := applyConstraints(raw, missingMustHave)
	c.Final = round1(c.Constrained)
	return c
}

// CombinePremium folds the Premium components (BM25 35%, semantic 35%,
// rerank 20%, evidence 10%), applies the must-have cap and penalty, then
// calibrates the constrained score with the recentered sigmoid.
func CombinePremium(bm25, semantic, rerank, evidence float64, missingMustHave int) Combined {
	raw := premiumBM25Weight*bm25 +
		premiumSemanticWeight*semantic +
		premiumRerankWeight*rerank +
		premiumEvidenceWeight*evidence

	c := applyConstraints(raw, missingMustHave)
	c.Calibrated = Calibrate(c.Constrained)
	c.Final = c.Calibrated
	return c
}

// applyConstraints clamps the raw score to the must-have cap and subtracts
// the per-skill penalty, bounding the result to [0, 100].
func applyConstraints(raw float64, missingMustHave int) Combined {
	cap := 100.0
	capApplied := false
	if missingMustHave > 0 {
		cap = MustHaveCap
		capApplied = true
	}

	penalty := MustHavePenaltyPerSkill * missingMustHave
	constrained := clamp(math.Min(raw, cap)-float64(penalty), 0, 100)

	return Combined{
		Raw:         round1(raw),
		Constrained: round1(constrained),
		CapApplied:  capApplied,
		Penalty:     penalty,
	}
}

// Calibrate applies the recentered sigmoid transform that compresses extreme
// scores and stabilizes interpretability after the hard cap/penalty step.
func Calibrate(score float64) float64 {
	score = clamp(score, 0, 100)
	calibrated := 100 / (1 + math.Exp(-calibrationSlope*(score-calibrationCenter)))
	return round1(clamp(calibrated, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
