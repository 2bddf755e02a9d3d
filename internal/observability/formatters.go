// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a summary of a segmented document.
func (p *Printer) PrintDocument(title string, doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Length:    %d chars\n", len(doc.Clean)))
	sb.WriteString(fmt.Sprintf("Truncated: %v\n", doc.Truncated))

	if len(doc.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range doc.Sections {
			sb.WriteString(fmt.Sprintf("  • %s (%d chars)\n", section.Name, len(section.Text)))
		}
	} else {
		sb.WriteString("Sections:  none detected (whole-document fallback)\n")
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirements outputs the extracted must-have and preferred skills.
func (p *Printer) PrintRequirements(reqs types.RequirementSet) {
	var sb strings.Builder

	sb.WriteString("Must-have:\n")
	writeSkillList(&sb, reqs.MustHave.Sorted())
	sb.WriteString("\nPreferred:\n")
	writeSkillList(&sb, reqs.Preferred.Sorted())

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the final score with its full breakdown.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:        %s\n", result.Mode))
	sb.WriteString(fmt.Sprintf("Final score: %.1f / 100\n\n", result.Score))

	b := result.Breakdown
	if result.Mode == types.ModeClassic {
		sb.WriteString(fmt.Sprintf("Keyword:   %5.1f\n", b.KeywordScore))
	} else {
		sb.WriteString(fmt.Sprintf("BM25:      %5.1f\n", b.BM25Score))
		sb.WriteString(fmt.Sprintf("Rerank:    %5.1f\n", b.RerankScore))
	}
	sb.WriteString(fmt.Sprintf("Semantic:  %5.1f\n", b.SemanticScore))
	sb.WriteString(fmt.Sprintf("Evidence:  %5.1f\n", b.EvidenceScore))
	sb.WriteString(fmt.Sprintf("Raw:       %5.1f\n", b.RawScore))

	if b.CapApplied {
		sb.WriteString(fmt.Sprintf("Cap applied (%d must-have missing, penalty %d)\n",
			b.MissingMustHaveCount, b.MustHavePenalty))
	}
	if result.Mode == types.ModePremium {
		sb.WriteString(fmt.Sprintf("Calibrated: %.1f\n", b.CalibratedScore))
	}
	if result.Truncated {
		sb.WriteString("Input was truncated before scoring\n")
	}

	if len(result.TopMatches) > 0 {
		sb.WriteString("\nTop matches:\n")
		writeSkillList(&sb, result.TopMatches)
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		writeSkillList(&sb, result.MissingKeywords)
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, skills []string) {
	if len(skills) == 0 {
		sb.WriteString("  (none)\n")
		return
	}

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}
