package scoring

import (
	"math"
	"regexp"
	"strings"
)

// BM25 parameters and squashing constants. These are contract values
// reproduced from the documented scoring formula, not tunables.
const (
	bm25K1            = 1.5
	bm25B             = 0.75
	bm25SigmoidSlope  = 0.1
	bm25SigmoidCenter = 5.0
)

var bm25TokenPattern = regexp.MustCompile(`\b[a-z0-9]{2,}\b`)

// ScoreBM25 ranks the resume against the job text treated as the query,
// over a two-document corpus {resume, job}, with standard k1/b document
// length normalization. Raw BM25 is unbounded, so the result is squashed to
// 0-100 with a fixed sigmoid. Empty token sets score 0.
func ScoreBM25(resumeText, jobText string) float64 {
	resumeTokens := bm25Tokenize(resumeText)
	jobTokens := bm25Tokenize(jobText)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	docs := [][]string{resumeTokens, jobTokens}

	// Document frequency per term across the two-document corpus.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, token := range doc {
			if !seen[token] {
				seen[token] = true
				df[token]++
			}
		}
	}

	tf := make(map[string]int, len(resumeTokens))
	for _, token := range resumeTokens {
		tf[token]++
	}

	avgdl := float64(len(resumeTokens)+len(jobTokens)) / 2.0
	dl := float64(len(resumeTokens))
	n := float64(len(docs))

	// Query term frequency: repeated query terms accumulate, as in the
	// standard Okapi formulation of a bag-of-words query.
	qtf := make(map[string]int, len(jobTokens))
	for _, token := range jobTokens {
		qtf[token]++
	}

	raw := 0.0
	for term, qcount := range qtf {
		freq := float64(tf[term])
		if freq == 0 {
			continue
		}
		idf := math.Log(1 + (n-float64(df[term])+0.5)/(float64(df[term])+0.5))
		norm := freq * (bm25K1 + 1) / (freq + bm25K1*(1-bm25B+bm25B*dl/avgdl))
		raw += float64(qcount) * idf * norm
	}

	squashed := 100 / (1 + math.Exp(-bm25SigmoidSlope*(raw-bm25SigmoidCenter)))
	return round1(clamp(squashed, 0, 100))
}

func bm25Tokenize(text string) []string {
	return bm25TokenPattern.FindAllString(strings.ToLower(text), -1)
}
