// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/degree-certify/internal/extract"
	"github.com/pdiddy/degree-certify/internal/pipeline"
	"github.com/pdiddy/degree-certify/internal/summary"
)

var certifyCmd = &cobra.Command{
	Use:   "certify <transcript> [transcripts...]",
	Short: "Parse transcripts and evaluate degree certification",
	Long: `Certify runs the full pipeline on each transcript: text extraction,
ledger parsing, policy evaluation, a per-student report artifact, and a
row in the persistent certification summary.

A transcript that cannot be extracted, has no student identity, or yields
no graduate records is skipped with a diagnostic; the batch continues.
The exit status reflects whether the run completed, not whether any
individual transcript certified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCertify,
}

func runCertify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Extraction.Backend = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Report.OutputDir = v
		cfg.Summary.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("prepared-by"); v != "" {
		cfg.Report.PreparedBy = v
	}

	extractor, err := extract.New(cfg.Extraction.Backend)
	if err != nil {
		return err
	}

	var store *summary.Store
	if noSummary, _ := cmd.Flags().GetBool("no-summary"); !noSummary {
		store, err = summary.NewStore(cfg.Summary)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	p := pipeline.New(extractor, cfg, store)
	batch := p.ProcessBatch(context.Background(), args, os.Stdout)

	if batch.HasSkips() {
		fmt.Fprintf(os.Stderr, "warning: %d transcript(s) skipped\n", batch.Skipped)
	}
	return nil
}

func init() {
	certifyCmd.Flags().String("backend", "", "extraction backend: pdftotext or text")
	certifyCmd.Flags().String("output-dir", "", "directory for reports and the summary store")
	certifyCmd.Flags().String("prepared-by", "", "name printed in the report header")
	certifyCmd.Flags().Bool("no-summary", false, "skip appending rows to the summary store")

	rootCmd.AddCommand(certifyCmd)
}
