package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	releaseNoteHeaderPattern = regexp.MustCompile(`(?i)^\s*(#{1,6}\s*)?release\s*notes?\s*$`)
	sectionHeaderPattern     = regexp.MustCompile(`^ {0,3}#{1,6}(\s|$)`)
	notApplicablePattern     = regexp.MustCompile(`(?i)^\s*-?\s*n/?a\s*$`)
	sameAsPattern            = regexp.MustCompile(`(?i)^\s*-?\s*same\s?as\s+#?([0-9]+)\s*$`)
	noteTextPattern          = regexp.MustCompile(`^\s*-?\s*(.*)$`)
)

// lineKind classifies a line inside a release-note section.
// Kinds are checked in declaration order; the first match wins.
type lineKind int

const (
	lineSectionEnd lineKind = iota
	lineNotApplicable
	lineSameAs
	lineText
	lineOther
)

// SectionScan is the outcome of scanning a pull request body.
type SectionScan struct {
	Text          string   // Last candidate text line; empty if none
	SameAs        []string // Referenced pull requests, in order of appearance
	Found         bool     // A release-note section header was present
	NotApplicable bool     // The section declared N/A
}

// Produces reports whether the scan yields a release entry.
func (s SectionScan) Produces() bool {
	return s.Found && !s.NotApplicable
}

// ScanReleaseNotes finds the first release-note section in body and
// extracts its note text and same-as references.
//
// An N/A line ends the scan and discards anything matched before it.
// The last candidate text line wins.
func ScanReleaseNotes(body []string) SectionScan {
	start := -1
	for i, line := range body {
		if releaseNoteHeaderPattern.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return SectionScan{}
	}

	scan := SectionScan{Found: true}
	for _, line := range body[start:] {
		kind, value := classifyLine(line)
		switch kind {
		case lineSectionEnd:
			return scan
		case lineNotApplicable:
			return SectionScan{Found: true, NotApplicable: true}
		case lineSameAs:
			scan.SameAs = append(scan.SameAs, value)
		case lineText:
			scan.Text = value
		case lineOther:
		}
	}
	return scan
}

// classifyLine returns the kind of line and its captured value: the
// referenced pull request for lineSameAs, the note text for lineText.
func classifyLine(line string) (lineKind, string) {
	if sectionHeaderPattern.MatchString(line) {
		return lineSectionEnd, ""
	}
	if notApplicablePattern.MatchString(line) {
		return lineNotApplicable, ""
	}
	if m := sameAsPattern.FindStringSubmatch(line); m != nil {
		return lineSameAs, m[1]
	}
	if text, ok := noteText(line); ok {
		return lineText, text
	}
	return lineOther, ""
}

func noteText(line string) (string, bool) {
	m := noteTextPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(m[1])
	if text == "" || text == "-" {
		return "", false
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}
	return text, true
}

// SplitLines splits a pull request body into lines, dropping the carriage
// return of CRLF line endings. An empty body has no lines.
func SplitLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
