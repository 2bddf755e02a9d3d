package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestSegment_BasicSections(t *testing.T) {
	text := "Jane Doe\nBackend Engineer\nEXPERIENCE\nBuilt services at Acme\nScaled the billing system\nPROJECTS\nSide project in Go"

	doc := Segment(text, false)

	exp, ok := doc.Section(types.SectionExperience)
	require.True(t, ok)
	assert.Equal(t, "Built services at Acme\nScaled the billing system", exp)

	proj, ok := doc.Section(types.SectionProjects)
	require.True(t, ok)
	assert.Equal(t, "Side project in Go", proj)

	// Preamble before the first header belongs to no section; the whole
	// cleaned text is the fallback.
	assert.Contains(t, doc.Clean, "Jane Doe")
	assert.False(t, doc.HasSection(types.SectionEducation))
}

func TestSegment_HeaderVariants(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Technical Skills", types.SectionSkills},
		{"WORK EXPERIENCE", types.SectionExperience},
		{"Professional Experience:", types.SectionExperience},
		{"Personal Projects", types.SectionProjects},
		{"Education", types.SectionEducation},
		{"Certifications", types.SectionCertifications},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			doc := Segment(tt.header+"\nsome content here", false)
			text, ok := doc.Section(tt.want)
			require.True(t, ok)
			assert.Equal(t, "some content here", text)
		})
	}
}

func TestSegment_InlineHeaderContent(t *testing.T) {
	doc := Segment("Skills: Python, Go, Kubernetes", false)

	text, ok := doc.Section(types.SectionSkills)
	require.True(t, ok)
	assert.Equal(t, "Python, Go, Kubernetes", text)
}

func TestSegment_HeaderLookalikeIsNotHeader(t *testing.T) {
	doc := Segment("EXPERIENCE\nExperience with Python is required", false)

	text, ok := doc.Section(types.SectionExperience)
	require.True(t, ok)
	assert.Equal(t, "Experience with Python is required", text)
	assert.Len(t, doc.Sections, 1)
}

func TestSegment_RepeatedHeaderConcatenates(t *testing.T) {
	doc := Segment("EXPERIENCE\nFirst role\nEDUCATION\nBS CS\nEXPERIENCE\nSecond role", false)

	text, ok := doc.Section(types.SectionExperience)
	require.True(t, ok)
	assert.Contains(t, text, "First role")
	assert.Contains(t, text, "Second role")
}

func TestSegment_NoHeaders(t *testing.T) {
	doc := Segment("Just a plain paragraph about a Python developer", false)

	assert.Empty(t, doc.Sections)
	assert.Equal(t, "Just a plain paragraph about a Python developer", doc.Clean)
}

func TestSegment_TruncatedFlagPropagates(t *testing.T) {
	doc := Segment("EXPERIENCE\nBuilt things", true)

	assert.True(t, doc.Truncated)
}
