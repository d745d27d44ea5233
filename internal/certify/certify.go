// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package certify evaluates a course ledger against the degree-certification
// policy. The evaluator is a pure aggregation pass: it never mutates input
// records and yields the same result for any permutation of the ledger.
package certify

import (
	"fmt"
	"time"

	"github.com/pdiddy/degree-certify/internal/classify"
	"github.com/pdiddy/degree-certify/pkg/types"
)

// Requirement labels as they appear in the itemized report.
const (
	LabelCore     = "≥%v Core Credits"
	LabelResearch = "≤%v Research Credits Applied"
	LabelLevel4xx = "≤%v 400-Level Credits Applied"
	LabelTotal    = "≥%v Total Credits"
	LabelInvalid  = "No Unapproved External Courses"
)

// counted reports whether a record participates in credit aggregation.
// Excluded: Invalid classification, unknown level, or level below 400.
func counted(rec types.CourseRecord) bool {
	if rec.Classification == types.ClassInvalid {
		return false
	}
	level, ok := classify.Level(rec.Code)
	return ok && level >= 400
}

// Evaluate aggregates the ledger and applies the policy thresholds. Output
// is always produced regardless of verdict: certification is advisory and
// never blocks report generation.
func Evaluate(ledger types.Ledger, policy types.PolicyConfig) types.CertificationResult {
	var result types.CertificationResult
	result.EvaluatedAt = time.Now().UTC()

	invalidCount := 0
	for _, rec := range ledger.Records {
		if rec.Classification == types.ClassInvalid {
			invalidCount++
		}
		if !counted(rec) {
			continue
		}

		result.TotalCredits += rec.CreditsEarned
		switch rec.Classification {
		case types.ClassCore:
			result.CoreCredits += rec.CreditsEarned
		case types.ClassResearch:
			result.ResearchCredits += rec.CreditsEarned
		}
		if level, ok := classify.Level(rec.Code); ok && level >= 400 && level < 500 {
			result.Level4xxCredits += rec.CreditsEarned
		}
	}

	// The cap bounds what research credit can satisfy; the 30-credit total
	// still counts the raw, uncapped research credits.
	result.ResearchApplied = min(policy.MaxResearchApplied, result.ResearchCredits)

	coreOK := result.CoreCredits >= policy.MinCoreCredits
	researchOK := result.ResearchApplied <= policy.MaxResearchApplied
	level4xxOK := result.Level4xxCredits <= policy.MaxLevel4xxCredits
	totalOK := result.TotalCredits >= policy.MinTotalCredits
	noInvalidOK := invalidCount == 0

	result.Requirements = []types.Requirement{
		{Label: labelf(LabelCore, policy.MinCoreCredits), Value: result.CoreCredits, Met: coreOK},
		{Label: labelf(LabelResearch, policy.MaxResearchApplied), Value: result.ResearchApplied, Met: researchOK},
		{Label: labelf(LabelLevel4xx, policy.MaxLevel4xxCredits), Value: result.Level4xxCredits, Met: level4xxOK},
		{Label: labelf(LabelTotal, policy.MinTotalCredits), Value: result.TotalCredits, Met: totalOK},
		{Label: LabelInvalid, Value: float64(invalidCount), Met: noInvalidOK},
	}

	switch {
	case !noInvalidOK:
		// Distinct failure category: an unapproved external course fails the
		// transcript even when every credit threshold is satisfied.
		result.Verdict = types.VerdictFailedInvalid
	case coreOK && researchOK && level4xxOK && totalOK:
		result.Verdict = types.VerdictPassed
	default:
		result.Verdict = types.VerdictFailed
	}

	return result
}

// labelf renders a requirement label with its configured threshold.
func labelf(format string, threshold float64) string {
	return fmt.Sprintf(format, threshold)
}
