// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders per-transcript certification artifacts: a delimited
// text file for the records office and a terminal table for the operator.
// Reports are produced for every transcript regardless of verdict.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/degree-certify/pkg/types"
)

// classOrder fixes the report grouping: Core first, then Elective, Research,
// Invalid.
var classOrder = map[types.Classification]int{
	types.ClassCore:     0,
	types.ClassElective: 1,
	types.ClassResearch: 2,
	types.ClassInvalid:  3,
}

// SortedRecords returns a copy of the ledger records ordered by
// classification, then semester, then code. Presentation order only; the
// evaluator's aggregates are order-independent.
func SortedRecords(records []types.CourseRecord) []types.CourseRecord {
	sorted := make([]types.CourseRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if classOrder[a.Classification] != classOrder[b.Classification] {
			return classOrder[a.Classification] < classOrder[b.Classification]
		}
		if a.Semester != b.Semester {
			return a.Semester < b.Semester
		}
		return a.Code < b.Code
	})
	return sorted
}

// Filename derives the report filename from the student identity: first
// initial plus cleaned last name, lowercased, plus the configured suffix
// (e.g. "jsmith_ms_phy_track.csv").
func Filename(identity types.Identity, suffix string) string {
	names := strings.Fields(strings.ToLower(identity.Name))
	if len(names) == 0 {
		return "unknown" + suffix
	}

	firstInitial := string([]rune(names[0])[0])

	// Strip punctuation (e.g. "Jr.", quoted nicknames) and keep the last
	// all-alphabetic token as the surname.
	lastName := names[len(names)-1]
	for i := len(names) - 1; i >= 0; i-- {
		cleaned := strings.TrimFunc(names[i], unicode.IsPunct)
		if cleaned != "" && isAlpha(cleaned) {
			lastName = cleaned
			break
		}
	}

	return firstInitial + lastName + suffix
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// StatusLine returns the human-readable status header for a verdict.
func StatusLine(verdict types.Verdict) string {
	switch verdict {
	case types.VerdictPassed:
		return "Certification PASSED"
	case types.VerdictFailedInvalid:
		return "Certification FAILED: contains unapproved external courses"
	default:
		return "Certification FAILED: requirements not met"
	}
}

func statusWord(met bool) string {
	if met {
		return "Verified"
	}
	return "Not Met"
}

// WriteFile writes the certification report to outputDir under the derived
// filename, creating the directory as needed. It returns the written path.
func WriteFile(identity types.Identity, ledger types.Ledger, result types.CertificationResult, cfg types.ReportConfig) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, Filename(identity, cfg.FilenameSuffix))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f, identity, ledger, result, cfg.PreparedBy); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}

// write emits the full artifact: header lines, status line, the sorted
// ledger with a totals row, a blank separator, and the itemized
// requirements table.
func write(w io.Writer, identity types.Identity, ledger types.Ledger, result types.CertificationResult, preparedBy string) error {
	cw := csv.NewWriter(w)

	header := [][]string{
		{"Prepared by", preparedBy},
		{"Student Name", identity.Name},
		// Quoted formula form so spreadsheet apps keep leading zeros.
		{"Student ID", fmt.Sprintf("=%q", identity.ID)},
		{"Status", StatusLine(result.Verdict)},
	}
	for _, row := range header {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"Semester", "Course Code", "Title", "Credits Earned", "Classification", "Grade"}); err != nil {
		return err
	}
	for _, rec := range SortedRecords(ledger.Records) {
		row := []string{
			rec.Semester,
			rec.Code,
			rec.Title,
			formatCredits(rec.CreditsEarned),
			string(rec.Classification),
			rec.Grade,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	totals := []string{"", "", "Total Credits Applied", formatCredits(result.TotalCredits), "", ""}
	if err := cw.Write(totals); err != nil {
		return err
	}

	if err := cw.Write([]string{}); err != nil {
		return err
	}

	for i, req := range result.Requirements {
		label := ""
		if i == 0 {
			label = "**Graduation Requirement**"
		}
		row := []string{label, req.Label, formatCredits(req.Value), statusWord(req.Met)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Render prints the course record and requirements tables to w in terminal
// form.
func Render(w io.Writer, identity types.Identity, ledger types.Ledger, result types.CertificationResult) {
	fmt.Fprintf(w, "%s - %s (%s)\n\n", StatusLine(result.Verdict), identity.Name, identity.ID)

	fmt.Fprintln(w, "Course Record:")
	fmt.Fprintf(w, "%-8s  %-9s  %-40s  %7s  %-14s  %-5s\n",
		"Semester", "Code", "Title", "Credits", "Classification", "Grade")
	fmt.Fprintln(w, strings.Repeat("-", 95))
	for _, rec := range SortedRecords(ledger.Records) {
		title := rec.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%-8s  %-9s  %-40s  %7s  %-14s  %-5s\n",
			rec.Semester, rec.Code, title, formatCredits(rec.CreditsEarned),
			rec.Classification, rec.Grade)
	}
	fmt.Fprintf(w, "%-8s  %-9s  %-40s  %7s\n\n",
		"", "", "Total Credits Applied", formatCredits(result.TotalCredits))

	fmt.Fprintln(w, "Graduation Requirements:")
	for _, req := range result.Requirements {
		fmt.Fprintf(w, "  %-36s  %7s  %s\n", req.Label, formatCredits(req.Value), statusWord(req.Met))
	}
	fmt.Fprintln(w)
}

// formatCredits renders whole credit values without decimals (18 rather
// than 18.00); fractional values keep two places (1.5 renders as 1.50).
func formatCredits(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
