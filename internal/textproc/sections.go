package textproc

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionPattern recognizes a section header line: one of the known variants,
// case-insensitive, on its own line or followed by a colon. Group 1 captures
// any inline content after the colon ("Skills: Python, Go").
type sectionPattern struct {
	name string
	re   *regexp.Regexp
}

var sectionPatterns = []sectionPattern{
	{types.SectionSkills, headerPattern(`skills?|technical\s+skills?|core\s+skills?|competencies`)},
	{types.SectionExperience, headerPattern(`experience|work\s+experience|employment|professional\s+experience|career`)},
	{types.SectionProjects, headerPattern(`projects?|personal\s+projects?|side\s+projects?|portfolio`)},
	{types.SectionEducation, headerPattern(`education|academic|qualifications?|degrees?`)},
	{types.SectionCertifications, headerPattern(`certifications?|certificates?|licenses?|credentials?`)},
}

func headerPattern(variants string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + variants + `)\s*(?::\s*(.*))?$`)
}

// Segment splits cleaned text into a Document with recognized sections.
// Text before the first recognized header has no section of its own; the
// whole cleaned text serves as the fallback for scorers that need it.
func Segment(cleanText string, truncated bool) *types.Document {
	doc := &types.Document{Clean: cleanText, Truncated: truncated}
	if cleanText == "" {
		return doc
	}

	current := ""
	var content []string

	flush := func() {
		if current == "" || len(content) == 0 {
			content = nil
			return
		}
		text := strings.Join(content, "\n")
		appendSection(doc, current, text)
		content = nil
	}

	for _, line := range strings.Split(cleanText, "\n") {
		name, inline, ok := matchHeader(line)
		if !ok {
			if current != "" {
				content = append(content, line)
			}
			continue
		}
		flush()
		current = name
		if inline != "" {
			content = append(content, inline)
		}
	}
	flush()

	return doc
}

// matchHeader reports whether a line is a recognized section header, along
// with any inline content following the colon.
func matchHeader(line string) (name, inline string, ok bool) {
	for _, p := range sectionPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return p.name, strings.TrimSpace(m[1]), true
	}
	return "", "", false
}

// appendSection adds text to a section, concatenating when the same header
// appears more than once in the document.
func appendSection(doc *types.Document, name, text string) {
	for i := range doc.Sections {
		if doc.Sections[i].Name == name {
			doc.Sections[i].Text += "\n" + text
			return
		}
	}
	doc.Sections = append(doc.Sections, types.Section{Name: name, Text: text})
}
