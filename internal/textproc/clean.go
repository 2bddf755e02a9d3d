// Package textproc provides text normalization and section segmentation for
// resumes and job postings.
package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxFieldBytes caps the size of a single input field. Longer input is
// truncated before any further processing and the truncation is reported to
// the caller.
const MaxFieldBytes = 50 * 1024

// boilerplateMaxLen and boilerplateMinRepeats identify page headers/footers
// left behind by PDF extraction: short lines repeated verbatim.
const (
	boilerplateMaxLen     = 80
	boilerplateMinRepeats = 3
	boilerplateMinLines   = 10
)

var (
	bulletGlyphs   = regexp.MustCompile(`[•·▪▫‣⁃]\s*`)
	dashGlyphs     = regexp.MustCompile(`[–—]\s*`)
	hyphenWrap     = regexp.MustCompile(`(\w+)-[ \t]*\n\s*(\w+)`)
	intraLineSpace = regexp.MustCompile(`[ \t]+`)
	blockTags      = regexp.MustCompile(`(?i)<(?:br|/p|/li|/div|/h[1-6]|/tr|/ul|/ol)[^>]*>`)
)

// Clean normalizes raw resume or job text: strips HTML if present, truncates
// oversized input, standardizes bullet and dash glyphs, de-hyphenates
// line-wrapped words, collapses whitespace, and drops repeated boilerplate
// lines. Returns the cleaned text and whether truncation occurred.
func Clean(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	if looksLikeHTML(text) {
		if extracted, err := stripHTML(text); err == nil {
			text = extracted
		}
	}

	truncated := false
	if len(text) > MaxFieldBytes {
		text = truncateToRuneBoundary(text, MaxFieldBytes)
		truncated = true
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = bulletGlyphs.ReplaceAllString(text, "• ")
	text = dashGlyphs.ReplaceAllString(text, "- ")

	// De-hyphenate line wraps, e.g. "devel-\nop" -> "develop".
	text = hyphenWrap.ReplaceAllString(text, "$1$2")

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(intraLineSpace.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > boilerplateMinLines {
		lines = dropBoilerplate(lines)
	}

	return strings.Join(lines, "\n"), truncated
}

// dropBoilerplate removes short lines that repeat verbatim across the
// document, which are almost always page headers or footers.
func dropBoilerplate(lines []string) []string {
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		counts[line]++
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if counts[line] >= boilerplateMinRepeats && len(line) < boilerplateMaxLen {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// looksLikeHTML reports whether the input appears to be an HTML fragment
// rather than plain text. Job postings are frequently pasted with markup.
func looksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range []string{"<html", "<body", "<div", "<p>", "<br", "<ul", "<li>"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// stripHTML extracts the visible text from HTML content, preserving line
// structure at block boundaries so section headers stay on their own lines.
func stripHTML(content string) (string, error) {
	content = blockTags.ReplaceAllString(content, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	doc.Find("script,style,noscript").Remove()
	return doc.Text(), nil
}

// truncateToRuneBoundary cuts text at the byte limit without splitting a rune.
func truncateToRuneBoundary(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
