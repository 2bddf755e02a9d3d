// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// Recognized resume section names, in canonical form.
const (
	SectionSkills         = "SKILLS"
	SectionExperience     = "EXPERIENCE"
	SectionProjects       = "PROJECTS"
	SectionEducation      = "EDUCATION"
	SectionCertifications = "CERTIFICATIONS"
)

// Section is a named slice of a document's cleaned text.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Document represents a cleaned, section-segmented text document.
// Sections appear in encounter order; absent sections are omitted entirely.
// A Document is immutable once built.
type Document struct {
	Clean     string    `json:"clean"`
	Sections  []Section `json:"sections,omitempty"`
	Truncated bool      `json:"truncated"`
}

// Section returns the text of the named section and whether it is present.
func (d *Document) Section(name string) (string, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s.Text, true
		}
	}
	return "", false
}

// HasSection reports whether the named section was detected.
func (d *Document) HasSection(name string) bool {
	_, ok := d.Section(name)
	return ok
}
