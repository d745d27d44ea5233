// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Classification categorizes a course record under program policy.
type Classification string

const (
	ClassCore     Classification = "Core"
	ClassElective Classification = "Elective"
	ClassResearch Classification = "Research"
	ClassInvalid  Classification = "Invalid"
)

// TransferGrade is the reserved grade token marking a transfer credit.
// Transfer credits contribute earned credits but no quality points.
const TransferGrade = "T"

// CourseRecord is one finalized academic entry from a transcript.
type CourseRecord struct {
	// Semester is the short term code (e.g. "F23", "S24"). Empty when the
	// record precedes any semester header, as with transfer credits.
	Semester string `json:"semester" yaml:"semester"`

	// Code is the normalized "DEPT NUM" course code (e.g. "PHY 543").
	Code string `json:"code" yaml:"code"`

	// Title is the course title, possibly rewritten for special-topics or
	// transfer entries.
	Title string `json:"title" yaml:"title"`

	// CreditsEarned is the earned-credit value from the transcript line.
	CreditsEarned float64 `json:"credits_earned" yaml:"credits_earned"`

	// Grade is the letter grade token, or TransferGrade for transfer credits.
	Grade string `json:"grade" yaml:"grade"`

	// Classification is the policy outcome for the course code.
	Classification Classification `json:"classification" yaml:"classification"`
}

// IsTransfer reports whether the record is a transfer credit.
func (r CourseRecord) IsTransfer() bool {
	return r.Grade == TransferGrade
}

// Identity holds the student name and ID extracted from whole-page text.
type Identity struct {
	// Name is the student name as printed on the transcript.
	Name string `json:"name" yaml:"name"`

	// ID is the student ID digit string.
	ID string `json:"id" yaml:"id"`
}

// Complete reports whether both identity fields were found.
func (id Identity) Complete() bool {
	return id.Name != "" && id.ID != ""
}

// Ledger is the ordered collection of finalized course records plus the
// extracted identity for one transcript. Insertion order is document order.
type Ledger struct {
	Identity Identity       `json:"identity" yaml:"identity"`
	Records  []CourseRecord `json:"records" yaml:"records"`
}

// Verdict is the overall certification outcome.
type Verdict string

const (
	VerdictPassed Verdict = "Passed"
	VerdictFailed Verdict = "Failed"

	// VerdictFailedInvalid marks a transcript containing a non-whitelisted
	// external course. Reported distinctly even when every credit threshold
	// is independently satisfied.
	VerdictFailedInvalid Verdict = "Failed-Invalid"
)

// Requirement is one itemized row of the certification report: a label, the
// computed value, and whether the threshold was met.
type Requirement struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Met   bool    `json:"met" yaml:"met"`
}

// CertificationResult holds the derived aggregates and the policy outcome
// for one ledger. It is read-only: the evaluator never mutates input records.
type CertificationResult struct {
	// CoreCredits is the sum of earned credits over counted Core records.
	CoreCredits float64 `json:"core_credits" yaml:"core_credits"`

	// ResearchCredits is the uncapped sum over counted Research records.
	ResearchCredits float64 `json:"research_credits" yaml:"research_credits"`

	// ResearchApplied is min(cap, ResearchCredits). Excess research credit
	// exists in the record but cannot satisfy the total.
	ResearchApplied float64 `json:"research_applied" yaml:"research_applied"`

	// Level4xxCredits is the sum over counted records with level in [400,500).
	Level4xxCredits float64 `json:"level4xx_credits" yaml:"level4xx_credits"`

	// TotalCredits is the sum over all counted records, using uncapped
	// research credits.
	TotalCredits float64 `json:"total_credits" yaml:"total_credits"`

	// Requirements itemizes each named policy check in report order.
	Requirements []Requirement `json:"requirements" yaml:"requirements"`

	// Verdict is the AND of all checks, with Failed-Invalid taking precedence.
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// EvaluatedAt is when the evaluation ran.
	EvaluatedAt time.Time `json:"evaluated_at" yaml:"evaluated_at"`
}

// Passed reports whether every requirement was met.
func (r CertificationResult) Passed() bool {
	return r.Verdict == VerdictPassed
}
