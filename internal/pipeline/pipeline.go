// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the per-transcript certification flow: extract text,
// parse the ledger, evaluate the policy, write the report artifact, and
// append the summary row. Transcripts are independent; one bad transcript
// never aborts the batch.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/degree-certify/internal/certify"
	"github.com/pdiddy/degree-certify/internal/classify"
	"github.com/pdiddy/degree-certify/internal/extract"
	"github.com/pdiddy/degree-certify/internal/parse"
	"github.com/pdiddy/degree-certify/internal/report"
	"github.com/pdiddy/degree-certify/internal/summary"
	"github.com/pdiddy/degree-certify/pkg/types"
)

// Result holds one transcript's full outcome.
type Result struct {
	Path          string
	Ledger        types.Ledger
	Certification types.CertificationResult
	ReportPath    string
}

// BatchResult holds the outcome of a batch certification run.
type BatchResult struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the number of transcripts processed.
func (r BatchResult) Total() int {
	return r.Passed + r.Failed + r.Skipped
}

// HasSkips reports whether any transcripts were skipped with a diagnostic.
func (r BatchResult) HasSkips() bool {
	return r.Skipped > 0
}

// Pipeline wires the stages for one batch run. The summary store is
// optional; with a nil store no summary rows are appended.
type Pipeline struct {
	extractor extract.Extractor
	rules     classify.Rules
	cfg       types.Config
	store     *summary.Store
}

// New creates a pipeline over the given extractor, configuration, and
// optional summary store.
func New(extractor extract.Extractor, cfg types.Config, store *summary.Store) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		rules:     classify.NewRules(cfg.Program),
		cfg:       cfg,
		store:     store,
	}
}

// ParseLedger extracts and parses one transcript into a ledger without
// evaluating it. Used by both ProcessTranscript and ledger inspection.
func (p *Pipeline) ParseLedger(path string) (types.Ledger, error) {
	pages, err := p.extractor.Extract(path)
	if err != nil {
		return types.Ledger{}, fmt.Errorf("extracting %s: %w", path, err)
	}

	parser := parse.New(p.rules)
	for _, page := range pages {
		parser.ScanIdentity(page.Text)
		parser.ProcessPage(page.Lines())
	}
	return parser.Finish(), nil
}

// ProcessTranscript runs one transcript end to end: parse, evaluate, write
// the report artifact, render the terminal report to w, and append the
// summary row. A missing identity or an empty ledger is an error; the
// transcript is skipped, not certified.
func (p *Pipeline) ProcessTranscript(ctx context.Context, path string, w io.Writer) (*Result, error) {
	ledger, err := p.ParseLedger(path)
	if err != nil {
		return nil, err
	}

	if !ledger.Identity.Complete() {
		return nil, fmt.Errorf("student name or ID not found in %s", path)
	}
	if len(ledger.Records) == 0 {
		return nil, fmt.Errorf("no usable records in %s: graduate record marker never reached", path)
	}

	result := certify.Evaluate(ledger, p.cfg.Policy)

	reportPath, err := report.WriteFile(ledger.Identity, ledger, result, p.cfg.Report)
	if err != nil {
		return nil, err
	}

	report.Render(w, ledger.Identity, ledger, result)
	fmt.Fprintf(w, "Report saved to: %s\n", reportPath)

	if p.store != nil {
		if err := p.store.Append(ctx, summary.NewRow(ledger.Identity, result)); err != nil {
			return nil, err
		}
	}

	return &Result{
		Path:          path,
		Ledger:        ledger,
		Certification: result,
		ReportPath:    reportPath,
	}, nil
}

// ProcessBatch processes each transcript in order, printing per-transcript
// status to w and returning a summary. Per-transcript errors are local: the
// diagnostic is printed and the batch continues.
func (p *Pipeline) ProcessBatch(ctx context.Context, paths []string, w io.Writer) BatchResult {
	var batch BatchResult
	for _, path := range paths {
		fmt.Fprintf(w, "processing: %s\n", path)
		res, err := p.ProcessTranscript(ctx, path, w)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", path, err)
			batch.Skipped++
			continue
		}
		if res.Certification.Passed() {
			batch.Passed++
		} else {
			batch.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d passed, %d failed, %d skipped (total: %d)\n",
		batch.Passed, batch.Failed, batch.Skipped, batch.Total())
	return batch
}
