// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/degree-certify/internal/extract"
	"github.com/pdiddy/degree-certify/internal/summary"
	"github.com/pdiddy/degree-certify/pkg/types"
)

// Transcript text fixtures. The text backend takes lines as already
// column-ordered, so the fixtures read top to bottom.

const identityHeader = `Academic Transcript
Name:      Jane Smith
Student ID:   10203040
`

// passingBody satisfies every requirement: 18 core, 6 elective, 6 research.
const passingBody = `--- Beginning of Graduate Record ---
2020 Fall
PHY 543   Quantum Mechanics I        3.00   3.00   A    12.000
PHY 561   Statistical Mechanics      3.00   3.00   A-   11.100
EAS 502   Directed Study             3.00   3.00   A    12.000
      Course Topic: Quantum Computing
2021 Spring
PHY 544   Quantum Mechanics II       3.00   3.00   B+   9.900
PHY 521   Electrodynamics            3.00   3.00   A    12.000
PHY 522   Advanced Electrodynamics   3.00   3.00   A    12.000
2021 Fall
PHY 581   Solid State Physics        3.00   3.00   A    12.000
EAS 520   Special Problems           3.00   3.00   A    12.000
2022 Spring
PHY 690   Masters Research           3.00   3.00   A    12.000
PHY 685   Thesis                     3.00   3.00   A    12.000
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testPipeline(t *testing.T, withStore bool) (*Pipeline, types.Config) {
	t.Helper()
	cfg := types.DefaultConfig()
	outDir := t.TempDir()
	cfg.Report.OutputDir = outDir
	cfg.Summary.OutputDir = outDir

	var store *summary.Store
	if withStore {
		var err error
		store, err = summary.NewStore(cfg.Summary)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
	}
	return New(&extract.TextExtractor{}, cfg, store), cfg
}

func TestProcessTranscriptPassing(t *testing.T) {
	p, cfg := testPipeline(t, true)
	path := writeFixture(t, identityHeader+passingBody)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictPassed, res.Certification.Verdict)
	assert.Equal(t, 18.0, res.Certification.CoreCredits)
	assert.Equal(t, 6.0, res.Certification.ResearchApplied)
	assert.Equal(t, 30.0, res.Certification.TotalCredits)
	assert.Equal(t, "Jane Smith", res.Ledger.Identity.Name)
	assert.Len(t, res.Ledger.Records, 10)

	// The continuation line refined the special-topics title.
	var topics string
	for _, rec := range res.Ledger.Records {
		if rec.Code == "EAS 502" {
			topics = rec.Title
		}
	}
	assert.Equal(t, "Special Topics: Quantum Computing", topics)

	// Report artifact exists under the derived filename.
	assert.Equal(t, filepath.Join(cfg.Report.OutputDir, "jsmith_ms_phy_track.csv"), res.ReportPath)
	_, err = os.Stat(res.ReportPath)
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Certification PASSED")
	assert.Contains(t, out.String(), "Report saved to:")
}

func TestProcessTranscriptWithTransfer(t *testing.T) {
	p, _ := testPipeline(t, false)
	body := `Transfer Credit from State University
MTH 573   Applied Mathematics        3.00   3.00   A    12.000
--- Beginning of Graduate Record ---
2020 Fall
PHY 543   Quantum Mechanics I        3.00   3.00   A    12.000
PHY 561   Statistical Mechanics      3.00   3.00   A    12.000
PHY 521   Electrodynamics            3.00   3.00   A    12.000
2021 Spring
PHY 544   Quantum Mechanics II       3.00   3.00   A    12.000
PHY 522   Advanced Electrodynamics   3.00   3.00   A    12.000
EAS 502   Directed Study             3.00   3.00   A    12.000
2021 Fall
PHY 581   Solid State Physics        3.00   3.00   A    12.000
PHY 690   Masters Research           3.00   3.00   A    12.000
PHY 685   Thesis                     3.00   3.00   A    12.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictPassed, res.Certification.Verdict)
	assert.Equal(t, 30.0, res.Certification.TotalCredits, "transfer elective counts toward the total")

	transfer := res.Ledger.Records[0]
	assert.Equal(t, "MTH 573", transfer.Code)
	assert.Equal(t, types.TransferGrade, transfer.Grade)
	assert.True(t, transfer.IsTransfer())
}

func TestProcessTranscriptExcessResearch(t *testing.T) {
	// 9 research credits: 6 applied toward the cap, all 9 in the total.
	p, _ := testPipeline(t, false)
	body := `--- Beginning of Graduate Record ---
2020 Fall
PHY 543   Quantum Mechanics I        3.00   3.00   A    12.000
PHY 561   Statistical Mechanics      3.00   3.00   A    12.000
PHY 521   Electrodynamics            3.00   3.00   A    12.000
2021 Spring
PHY 544   Quantum Mechanics II       3.00   3.00   A    12.000
PHY 522   Advanced Electrodynamics   3.00   3.00   A    12.000
PHY 581   Solid State Physics        3.00   3.00   A    12.000
2021 Fall
EAS 502   Directed Study             3.00   3.00   A    12.000
PHY 690   Masters Research           6.00   6.00   A    24.000
PHY 685   Thesis                     3.00   3.00   A    12.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictPassed, res.Certification.Verdict)
	assert.Equal(t, 9.0, res.Certification.ResearchCredits)
	assert.Equal(t, 6.0, res.Certification.ResearchApplied)
	assert.Equal(t, 30.0, res.Certification.TotalCredits)
}

func TestProcessTranscriptInsufficientCore(t *testing.T) {
	p, _ := testPipeline(t, false)
	body := `--- Beginning of Graduate Record ---
2020 Fall
PHY 543   Quantum Mechanics I        3.00   3.00   A    12.000
PHY 561   Statistical Mechanics      3.00   3.00   A    12.000
PHY 521   Electrodynamics            3.00   3.00   A    12.000
PHY 544   Quantum Mechanics II       3.00   3.00   A    12.000
2021 Spring
EAS 502   Directed Study             3.00   3.00   A    12.000
EAS 520   Special Problems           3.00   3.00   A    12.000
MTH 573   Applied Mathematics        6.00   6.00   A    24.000
PHY 690   Masters Research           6.00   6.00   A    24.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictFailed, res.Certification.Verdict)
	assert.Equal(t, 12.0, res.Certification.CoreCredits)
	assert.Contains(t, out.String(), "Certification FAILED: requirements not met")

	// The report artifact is written even for a failed transcript.
	_, err = os.Stat(res.ReportPath)
	assert.NoError(t, err)
}

func TestProcessTranscriptInvalidCourse(t *testing.T) {
	p, _ := testPipeline(t, false)
	body := passingBody + `2022 Fall
BIO 520   Cell Biology               3.00   3.00   A    12.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictFailedInvalid, res.Certification.Verdict)
	assert.Equal(t, 30.0, res.Certification.TotalCredits, "invalid course excluded from the total")
	assert.Contains(t, out.String(), "unapproved external courses")
}

func TestProcessTranscriptExcess400Level(t *testing.T) {
	p, _ := testPipeline(t, false)
	body := `--- Beginning of Graduate Record ---
2020 Fall
PHY 461   Advanced Mechanics         3.00   3.00   A    12.000
PHY 462   Advanced Optics            3.00   3.00   A    12.000
PHY 463   Advanced Laboratory        3.00   3.00   A    12.000
PHY 543   Quantum Mechanics I        3.00   3.00   A    12.000
2021 Spring
PHY 544   Quantum Mechanics II       3.00   3.00   A    12.000
PHY 561   Statistical Mechanics      3.00   3.00   A    12.000
EAS 502   Directed Study             3.00   3.00   A    12.000
EAS 520   Special Problems           3.00   3.00   A    12.000
2021 Fall
PHY 690   Masters Research           6.00   6.00   A    24.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	res, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictFailed, res.Certification.Verdict)
	assert.Equal(t, 9.0, res.Certification.Level4xxCredits)
	assert.Equal(t, 30.0, res.Certification.TotalCredits)
}

func TestProcessTranscriptMissingIdentity(t *testing.T) {
	p, _ := testPipeline(t, false)
	path := writeFixture(t, "Academic Transcript\n"+passingBody)

	var out strings.Builder
	_, err := p.ProcessTranscript(context.Background(), path, &out)
	assert.ErrorContains(t, err, "student name or ID not found")
}

func TestProcessTranscriptNoGraduateMarker(t *testing.T) {
	p, _ := testPipeline(t, false)
	body := `2016 Fall
PHY 101   Intro Physics              3.00   3.00   A    12.000
`
	path := writeFixture(t, identityHeader+body)

	var out strings.Builder
	_, err := p.ProcessTranscript(context.Background(), path, &out)
	assert.ErrorContains(t, err, "graduate record marker never reached")
}

func TestProcessTranscriptAppendsSummaryRow(t *testing.T) {
	p, cfg := testPipeline(t, true)
	path := writeFixture(t, identityHeader+passingBody)

	var out strings.Builder
	_, err := p.ProcessTranscript(context.Background(), path, &out)
	require.NoError(t, err)

	store, err := summary.NewStore(cfg.Summary)
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10203040", rows[0].StudentID)
	assert.Equal(t, "Passed", rows[0].Verdict)
}

func TestParseLedgerDoesNotEvaluate(t *testing.T) {
	p, cfg := testPipeline(t, false)
	path := writeFixture(t, identityHeader+passingBody)

	ledger, err := p.ParseLedger(path)
	require.NoError(t, err)
	assert.Len(t, ledger.Records, 10)

	// Inspection writes no artifact.
	_, err = os.Stat(filepath.Join(cfg.Report.OutputDir, "jsmith_ms_phy_track.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessBatch(t *testing.T) {
	p, _ := testPipeline(t, false)

	passing := writeFixture(t, identityHeader+passingBody)
	failing := writeFixture(t, identityHeader+passingBody+`2022 Fall
BIO 520   Cell Biology               3.00   3.00   A    12.000
`)
	skipped := writeFixture(t, "no identity, no marker\n")

	var out strings.Builder
	batch := p.ProcessBatch(context.Background(), []string{passing, failing, skipped}, &out)

	assert.Equal(t, 1, batch.Passed)
	assert.Equal(t, 1, batch.Failed)
	assert.Equal(t, 1, batch.Skipped)
	assert.Equal(t, 3, batch.Total())
	assert.True(t, batch.HasSkips())

	assert.Contains(t, out.String(), "skipped: "+skipped)
	assert.Contains(t, out.String(), "Batch summary: 1 passed, 1 failed, 1 skipped (total: 3)")
}
