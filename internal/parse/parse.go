// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse recovers structured course records from extracted transcript
// text. It classifies one line at a time against a small set of patterns,
// gated by the current transcript section, and assembles finalized records
// into a ledger in document order.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/degree-certify/internal/classify"
	"github.com/pdiddy/degree-certify/pkg/types"
)

// Line patterns, in classifier priority order. A line matching none of them
// is ignored without error: transcript layouts vary within tolerance.
var (
	// semesterPattern matches a 4-digit year followed by a term name.
	// "Sprng" is a known rendering misspelling, normalized to Spring.
	semesterPattern = regexp.MustCompile(`^\s*(\d{4})\s+(Fall|Spring|Sprng)`)

	// coursePattern matches the fixed course-line grammar: department,
	// number, title, attempted credits, earned credits, grade, quality
	// points. Grade T is the reserved transfer marker.
	coursePattern = regexp.MustCompile(`([A-Z]{3}\s+\d+)\s+(.+?)\s+(\d\.\d{2})\s+(\d\.\d{2})\s+([A-F][+-]?|T)\s+(\d+\.\d{3})`)

	// Identity patterns are anchored to line start: fields like
	// "Program Name:" must not satisfy the name match.
	namePattern = regexp.MustCompile(`^Name:\s+(.+)`)
	idPattern   = regexp.MustCompile(`^Student ID:\s+(\d+)`)
)

// topicMarker introduces the continuation line refining a special-topics title.
const topicMarker = "Course Topic:"

// Parser holds the per-transcript mutable context: current section, current
// semester, the special-topics buffer, the extracted identity, and the
// in-progress ledger. Create one per transcript and discard it after Finish.
type Parser struct {
	rules    classify.Rules
	section  Section
	semester string
	pending  pendingBuffer
	identity types.Identity
	records  []types.CourseRecord
}

// New creates a parser for one transcript under the given program rules.
func New(rules classify.Rules) *Parser {
	return &Parser{rules: rules}
}

// Section returns the current section, for diagnostics.
func (p *Parser) Section() Section {
	return p.section
}

// ScanIdentity scans whole-page text for the student name and ID. First
// match wins; later pages never overwrite an established field. Identity
// extraction is independent of the course-parsing state machine.
func (p *Parser) ScanIdentity(pageText string) {
	if p.identity.Complete() {
		return
	}
	for _, line := range strings.Split(pageText, "\n") {
		if p.identity.Name == "" {
			if m := namePattern.FindStringSubmatch(line); m != nil {
				p.identity.Name = strings.TrimSpace(m[1])
			}
		}
		if p.identity.ID == "" {
			if m := idPattern.FindStringSubmatch(line); m != nil {
				p.identity.ID = strings.TrimSpace(m[1])
			}
		}
		if p.identity.Complete() {
			return
		}
	}
}

// ProcessPage feeds one page's column lines through the parser, left column
// then right, matching the transcript's visual reading order.
func (p *Parser) ProcessPage(lines []string) {
	for _, line := range lines {
		p.ProcessLine(line)
	}
}

// ProcessLine advances the section state machine and, when the section
// admits it, classifies the line as a semester header, course record, or
// continuation. Lines in PreRecord carry no certification-relevant
// information and are discarded.
func (p *Parser) ProcessLine(line string) {
	next := p.section.Next(line)
	if next != p.section {
		p.section = next
		return
	}

	switch p.section {
	case SectionPreRecord:
		return
	case SectionTransfer:
		p.processTransferLine(line)
	case SectionGraduate:
		p.processGraduateLine(line)
	}
}

// processTransferLine accepts course-record lines as transfer credits. All
// other lines in the transfer section, including its "Transfer" pseudo
// semester header, are inert.
func (p *Parser) processTransferLine(line string) {
	m := coursePattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	rec := p.buildRecord(m)
	rec.Grade = types.TransferGrade
	if p.rules.IsWhitelistedElective(rec.Code) {
		rec.Title = p.rules.PlaceholderTitle()
	}
	p.records = append(p.records, rec)
}

// processGraduateLine applies the classifier patterns in priority order:
// semester header, course record, continuation.
func (p *Parser) processGraduateLine(line string) {
	if m := semesterPattern.FindStringSubmatch(line); m != nil {
		p.flushPending()
		year := m[1][len(m[1])-2:]
		term := "S"
		if m[2] == "Fall" {
			term = "F"
		}
		p.semester = term + year
		return
	}

	if m := coursePattern.FindStringSubmatch(line); m != nil {
		// A buffer is never carried across two course lines.
		p.flushPending()
		rec := p.buildRecord(m)
		if p.rules.IsWhitelistedElective(rec.Code) {
			// Provisional until a possible continuation line refines the title.
			rec.Title = p.rules.PlaceholderTitle()
			p.pending.Hold(rec)
			return
		}
		p.records = append(p.records, rec)
		return
	}

	if idx := strings.Index(line, topicMarker); idx >= 0 {
		// Meaningful only with a pending buffer; otherwise the topic cannot
		// be unambiguously attributed and the line is ignored.
		rec, ok := p.pending.Take()
		if !ok {
			return
		}
		topic := strings.TrimSpace(line[idx+len(topicMarker):])
		rec.Title = "Special Topics: " + topic
		p.records = append(p.records, rec)
	}
}

// buildRecord converts a course-pattern match into a record with the current
// semester and its policy classification.
func (p *Parser) buildRecord(m []string) types.CourseRecord {
	code := normalizeCode(m[1])
	earned, _ := strconv.ParseFloat(m[4], 64)
	return types.CourseRecord{
		Semester:       p.semester,
		Code:           code,
		Title:          strings.TrimSpace(m[2]),
		CreditsEarned:  earned,
		Grade:          m[5],
		Classification: p.rules.Classify(code),
	}
}

// flushPending finalizes any buffered record as-is.
func (p *Parser) flushPending() {
	if rec, ok := p.pending.Take(); ok {
		p.records = append(p.records, rec)
	}
}

// Finish flushes the buffer and returns the completed ledger. A pending
// record at document end is finalized with its placeholder title, never
// silently dropped.
func (p *Parser) Finish() types.Ledger {
	p.flushPending()
	return types.Ledger{
		Identity: p.identity,
		Records:  p.records,
	}
}

// normalizeCode collapses internal whitespace in a matched course code to a
// single space ("PHY  543" → "PHY 543").
func normalizeCode(code string) string {
	return strings.Join(strings.Fields(code), " ")
}
