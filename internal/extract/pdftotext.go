// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os/exec"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdout *bytes.Buffer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdout *bytes.Buffer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// PdftotextExtractor extracts transcript text by running the pdftotext
// binary in layout-preserving mode. Page breaks arrive as form feeds.
type PdftotextExtractor struct {
	exec executor
}

// NewPdftotextExtractor creates a pdftotext-backed extractor. It verifies
// the binary exists on PATH before returning.
func NewPdftotextExtractor() (*PdftotextExtractor, error) {
	return newPdftotextExtractor(defaultExec)
}

func newPdftotextExtractor(exec executor) (*PdftotextExtractor, error) {
	if _, err := exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextExtractor{exec: exec}, nil
}

// Extract runs pdftotext on the PDF at path and returns its pages. The
// -layout flag keeps the two-column geometry so column splitting can work
// on character positions.
func (e *PdftotextExtractor) Extract(path string) ([]Page, error) {
	var out bytes.Buffer
	args := []string{"-layout", "-enc", "UTF-8", path, "-"}
	if err := e.exec.RunPiped(binPdftotext, args, &out); err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced empty output for %s", binPdftotext, path)
	}

	var pages []Page
	for _, pageText := range splitPages(out.String()) {
		pages = append(pages, buildPage(pageText))
	}
	return pages, nil
}
