// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ExportCSV writes every summary row to a CSV file at path, one row per
// processed transcript.
func (s *Store) ExportCSV(ctx context.Context, path string) error {
	rows, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("listing summary for export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary export %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{
		"Student Name", "Student ID", "Core Credits", "Research Applied",
		"400-Level Credits", "Total Credits", "Certification", "Evaluated At",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.StudentName,
			r.StudentID,
			formatNumber(r.CoreCredits),
			formatNumber(r.ResearchApplied),
			formatNumber(r.Level4xxCredits),
			formatNumber(r.TotalCredits),
			r.Verdict,
			r.EvaluatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
