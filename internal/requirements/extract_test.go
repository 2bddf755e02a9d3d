package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/textproc"
)

func testDict(t *testing.T) *skills.Dictionary {
	t.Helper()
	dict, err := skills.Default()
	require.NoError(t, err)
	return dict
}

func extractFrom(t *testing.T, jobText string) (mustHave, preferred []string) {
	t.Helper()
	clean, _ := textproc.Clean(jobText)
	doc := textproc.Segment(clean, false)
	reqs := Extract(doc, testDict(t))
	return reqs.MustHave.Sorted(), reqs.Preferred.Sorted()
}

func TestExtract_MustHaveCues(t *testing.T) {
	mustHave, _ := extractFrom(t, "Required: Python, React, AWS\nWe build web products.")

	assert.Equal(t, []string{"aws", "python", "react"}, mustHave)
}

func TestExtract_PreferredCues(t *testing.T) {
	mustHave, preferred := extractFrom(t, "Required: Python\nNice to have: Docker and Kubernetes\nGraphQL is a plus")

	assert.Contains(t, mustHave, "python")
	assert.Contains(t, preferred, "docker")
	assert.Contains(t, preferred, "kubernetes")
	assert.Contains(t, preferred, "graphql")
}

func TestExtract_MustHaveWinsOverPreferred(t *testing.T) {
	mustHave, preferred := extractFrom(t, "Required: Python\nPreferred: Python, Docker")

	assert.Contains(t, mustHave, "python")
	assert.NotContains(t, preferred, "python")
	assert.Contains(t, preferred, "docker")
}

func TestExtract_DisjointSets(t *testing.T) {
	clean, _ := textproc.Clean("Required: Python, Go\nBonus: Go, Rust")
	doc := textproc.Segment(clean, false)

	reqs := Extract(doc, testDict(t))

	for skill := range reqs.Preferred {
		assert.False(t, reqs.MustHave.Has(skill), "skill %q must not be in both sets", skill)
	}
}

func TestExtract_BulletListUnderCue(t *testing.T) {
	job := "Minimum qualifications:\n• Python\n• React\nAbout the team: we ship weekly."

	mustHave, _ := extractFrom(t, job)

	assert.Contains(t, mustHave, "python")
	assert.Contains(t, mustHave, "react")
}

func TestExtract_BulletWithOwnCueStartsNewPool(t *testing.T) {
	job := "Minimum qualifications:\n• Python\n• Kubernetes is nice to have"

	mustHave, preferred := extractFrom(t, job)

	assert.Contains(t, mustHave, "python")
	assert.Contains(t, preferred, "kubernetes")
	assert.NotContains(t, mustHave, "kubernetes")
}

func TestExtract_FallbackToOpeningText(t *testing.T) {
	// No explicit cue line: the posting's opening text is treated as the
	// must-have pool.
	mustHave, _ := extractFrom(t, "We are looking for a Python engineer to build data pipelines.")

	assert.Contains(t, mustHave, "python")
}

func TestExtract_NoSkillsFound(t *testing.T) {
	mustHave, preferred := extractFrom(t, "Required: excellent communication and a positive attitude.")

	assert.Empty(t, mustHave)
	assert.Empty(t, preferred)
}
