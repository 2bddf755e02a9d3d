package skills

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// edgePunct is trimmed from token boundaries. Inner punctuation is kept so
// tokens like "node.js", "c++", and "ci/cd" survive intact.
const edgePunct = ".,:;!?\"'`“”‘’()[]{}<>"

// Tokenize splits text into normalized tokens: lowercased, split on
// whitespace and list separators, with edge punctuation trimmed.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '|' || r == '•'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, edgePunct)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Span records one matched alias occurrence as a token range [Start, End).
type Span struct {
	Canonical string
	Start     int
	End       int
}

// Match returns the set of canonical skills whose aliases occur as contiguous
// token sequences in the text.
func (d *Dictionary) Match(text string) types.SkillSet {
	return d.MatchTokens(Tokenize(text))
}

// MatchTokens is Match over a pre-tokenized text.
func (d *Dictionary) MatchTokens(tokens []string) types.SkillSet {
	found := make(types.SkillSet)
	for _, span := range d.MatchSpans(tokens) {
		found[span.Canonical] = true
	}
	return found
}

// MatchSpans finds every alias occurrence in the token stream. Longer aliases
// are tried first and each matched span claims its token positions, so
// overlapping shorter aliases cannot double count the same tokens: one
// canonical skill per unique alias span.
func (d *Dictionary) MatchSpans(tokens []string) []Span {
	if len(tokens) == 0 {
		return nil
	}

	claimed := make([]bool, len(tokens))
	var spans []Span

	for _, entry := range d.index {
		n := len(entry.tokens)
		for i := 0; i+n <= len(tokens); i++ {
			if !matchesAt(tokens, claimed, entry.tokens, i) {
				continue
			}
			for j := i; j < i+n; j++ {
				claimed[j] = true
			}
			spans = append(spans, Span{Canonical: entry.canonical, Start: i, End: i + n})
			i += n - 1
		}
	}
	return spans
}

func matchesAt(tokens []string, claimed []bool, alias []string, pos int) bool {
	for j, want := range alias {
		if claimed[pos+j] || tokens[pos+j] != want {
			return false
		}
	}
	return true
}
