// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/degree-certify/internal/summary"
	"github.com/pdiddy/degree-certify/pkg/types"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Inspect the cross-transcript certification summary",
	Long: `Summary manages the persistent certification summary built up across
certify runs. Rows accumulate per processed transcript; existing rows are
never rewritten.`,
}

// --- list subcommand ---

var summaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all summary rows",
	RunE:  runSummaryList,
}

func runSummaryList(cmd *cobra.Command, args []string) error {
	store, err := openSummaryStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No transcripts processed yet.")
		return nil
	}

	fmt.Printf("%-24s  %-10s  %5s  %8s  %6s  %6s  %s\n",
		"Student", "ID", "Core", "Research", "400-Lv", "Total", "Certification")
	fmt.Println(strings.Repeat("-", 90))
	for _, r := range rows {
		name := r.StudentName
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Printf("%-24s  %-10s  %5.0f  %8.0f  %6.0f  %6.0f  %s\n",
			name, r.StudentID, r.CoreCredits, r.ResearchApplied,
			r.Level4xxCredits, r.TotalCredits, r.Verdict)
	}
	fmt.Printf("\n%d transcripts\n", len(rows))
	return nil
}

// --- export subcommand ---

var summaryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the summary to certification_summary.csv",
	RunE:  runSummaryExport,
}

func runSummaryExport(cmd *cobra.Command, args []string) error {
	store, err := openSummaryStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := summaryConfig(cmd)
	path := filepath.Join(cfg.OutputDir, "certification_summary.csv")
	if err := store.ExportCSV(context.Background(), path); err != nil {
		return err
	}
	fmt.Printf("Summary CSV saved to: %s\n", path)
	return nil
}

// --- shared helpers ---

func summaryConfig(cmd *cobra.Command) types.SummaryConfig {
	cfg := loadConfig().Summary
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	return cfg
}

func openSummaryStore(cmd *cobra.Command) (*summary.Store, error) {
	return summary.NewStore(summaryConfig(cmd))
}

func init() {
	summaryCmd.PersistentFlags().String("output-dir", "", "directory holding the summary store")

	summaryCmd.AddCommand(summaryListCmd)
	summaryCmd.AddCommand(summaryExportCmd)

	rootCmd.AddCommand(summaryCmd)
}
