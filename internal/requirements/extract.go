// Package requirements extracts must-have and preferred skill requirements
// from job postings using cue-phrase detection.
package requirements

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

var mustHavePatterns = []*regexp.Regexp{
	regexp.MustCompile(`required`),
	regexp.MustCompile(`must\s+have`),
	regexp.MustCompile(`minimum\s+qualifications?`),
	regexp.MustCompile(`we\s+require`),
	regexp.MustCompile(`you\s+have`),
	regexp.MustCompile(`essential`),
}

var preferredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`preferred`),
	regexp.MustCompile(`bonus`),
	regexp.MustCompile(`nice\s+to\s+have`),
	regexp.MustCompile(`plus`),
}

// mustHaveFallbackChars bounds how much of the posting's opening text is
// treated as must-have material when no explicit cue line exists. Job intros
// usually front-load hard requirements.
const mustHaveFallbackChars = 500

// Extract scans a job document for requirement cues and classifies the skills
// found near them. A cue line and any bulleted list immediately following it
// contribute to that cue's pool. If a skill appears under both cue
// categories, must-have wins; the returned sets are disjoint.
func Extract(job *types.Document, dict *skills.Dictionary) types.RequirementSet {
	lines := strings.Split(job.Clean, "\n")

	var mustPool, preferredPool []string
	for i := 0; i < len(lines); i++ {
		lower := strings.ToLower(lines[i])
		var pool *[]string
		switch {
		case matchesAny(lower, mustHavePatterns):
			pool = &mustPool
		case matchesAny(lower, preferredPatterns):
			pool = &preferredPool
		default:
			continue
		}

		*pool = append(*pool, lines[i])
		for i+1 < len(lines) && isBulletLine(lines[i+1]) {
			next := strings.ToLower(lines[i+1])
			// A bullet carrying its own cue starts a new pool.
			if matchesAny(next, mustHavePatterns) || matchesAny(next, preferredPatterns) {
				break
			}
			i++
			*pool = append(*pool, lines[i])
		}
	}

	mustText := strings.Join(mustPool, " ")
	if mustText == "" {
		mustText = headOf(job.Clean, mustHaveFallbackChars)
	}

	mustHave := dict.Match(mustText)
	preferred := dict.Match(strings.Join(preferredPool, " "))
	for skill := range mustHave {
		delete(preferred, skill)
	}

	return types.RequirementSet{MustHave: mustHave, Preferred: preferred}
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "• ") ||
		strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "* ")
}

func headOf(text string, chars int) string {
	runes := []rune(text)
	if len(runes) <= chars {
		return text
	}
	return string(runes[:chars])
}
