// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/degree-certify/internal/extract"
	"github.com/pdiddy/degree-certify/internal/pipeline"
	"github.com/pdiddy/degree-certify/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <transcript>",
	Short: "Parse a transcript and print its course ledger",
	Long: `Parse extracts and parses one transcript without evaluating it, printing
the recovered course ledger. Useful for checking what the parser sees
before certifying, or for debugging an unexpected verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Extraction.Backend = v
	}

	extractor, err := extract.New(cfg.Extraction.Backend)
	if err != nil {
		return err
	}

	p := pipeline.New(extractor, cfg, nil)
	ledger, err := p.ParseLedger(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		printLedger(ledger)
	case "yaml":
		data, err := yaml.Marshal(ledger)
		if err != nil {
			return fmt.Errorf("marshaling ledger: %w", err)
		}
		os.Stdout.Write(data)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ledger)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
	return nil
}

func printLedger(ledger types.Ledger) {
	fmt.Printf("Student: %s (%s)\n\n", ledger.Identity.Name, ledger.Identity.ID)

	if len(ledger.Records) == 0 {
		fmt.Println("No course records found.")
		return
	}

	fmt.Printf("%-8s  %-9s  %-40s  %7s  %-14s  %-5s\n",
		"Semester", "Code", "Title", "Credits", "Classification", "Grade")
	fmt.Println(strings.Repeat("-", 95))
	for _, rec := range ledger.Records {
		title := rec.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-8s  %-9s  %-40s  %7.2f  %-14s  %-5s\n",
			rec.Semester, rec.Code, title, rec.CreditsEarned,
			rec.Classification, rec.Grade)
	}
	fmt.Printf("\n%d records\n", len(ledger.Records))
}

func init() {
	parseCmd.Flags().String("backend", "", "extraction backend: pdftotext or text")
	parseCmd.Flags().String("format", "table", "output format: table, yaml, or json")

	rootCmd.AddCommand(parseCmd)
}
