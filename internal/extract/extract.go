// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract obtains per-page transcript text from input files. The
// parser consumes, per page, an ordered sequence of plain-text lines per
// visual column plus the whole-page text; this package produces that shape
// from pluggable backends (pdftotext, pre-extracted text files) without the
// core ever performing layout analysis itself.
package extract

import (
	"fmt"
	"strings"
)

// Page holds the extracted text of one transcript page.
type Page struct {
	// Columns are the ordered line sequences per visual column, left first.
	Columns [][]string

	// Text is the whole-page text, used for identity extraction.
	Text string
}

// Lines returns the page's column lines concatenated left-then-right.
func (p Page) Lines() []string {
	var lines []string
	for _, col := range p.Columns {
		lines = append(lines, col...)
	}
	return lines
}

// Extractor produces per-page text for one transcript file. Different
// backends (pdftotext, plain text fixtures) implement this interface.
type Extractor interface {
	// Extract reads the transcript at path and returns its pages in order.
	Extract(path string) ([]Page, error)
}

// New returns the extractor for the named backend.
func New(backend string) (Extractor, error) {
	switch backend {
	case "pdftotext", "":
		return NewPdftotextExtractor()
	case "text":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported extraction backend %q: use pdftotext or text", backend)
	}
}

// pageBreak separates pages in pdftotext output and in text fixtures.
const pageBreak = "\f"

// splitPages breaks extracted text into per-page chunks on form feeds,
// dropping a trailing empty page.
func splitPages(text string) []string {
	pages := strings.Split(text, pageBreak)
	if n := len(pages); n > 0 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}

// buildPage splits one page's layout-preserving text into left and right
// column line sequences. Transcripts use a two-column layout; the boundary
// is the midpoint of the widest line. Blank lines are dropped.
func buildPage(pageText string) Page {
	rawLines := strings.Split(pageText, "\n")

	widest := 0
	for _, line := range rawLines {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	split := widest / 2

	var left, right []string
	for _, line := range rawLines {
		runes := []rune(line)
		var l, r string
		if len(runes) <= split {
			l = string(runes)
		} else {
			l = string(runes[:split])
			r = string(runes[split:])
		}
		if l = strings.TrimRight(l, " \t"); strings.TrimSpace(l) != "" {
			left = append(left, l)
		}
		if r = strings.TrimRight(r, " \t"); strings.TrimSpace(r) != "" {
			right = append(right, strings.TrimLeft(r, " \t"))
		}
	}

	return Page{
		Columns: [][]string{left, right},
		Text:    pageText,
	}
}
