// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"
)

// TextExtractor reads pre-extracted transcript text from a plain file.
// Pages are separated by form feeds. The lines are taken as already
// column-ordered (left column then right), so no geometric splitting is
// applied; this backend serves fixtures and upstream tools that have
// already linearized the layout.
type TextExtractor struct{}

// Extract reads the text file at path and returns its pages.
func (e *TextExtractor) Extract(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript text %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("transcript text %s is empty", path)
	}

	var pages []Page
	for _, pageText := range splitPages(string(data)) {
		var lines []string
		for _, line := range strings.Split(pageText, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, Page{
			Columns: [][]string{lines},
			Text:    pageText,
		})
	}
	return pages, nil
}
