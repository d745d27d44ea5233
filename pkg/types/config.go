// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProgramConfig holds the per-program classification rules. The defaults
// describe the MS Physics track; other programs override these in the
// config file without code changes.
type ProgramConfig struct {
	// HomeDepartment is the 3-letter prefix of the program's own courses
	// (e.g. "PHY"). Home-department courses classify as Core or Research.
	HomeDepartment string `json:"home_department" yaml:"home_department"`

	// ResearchCourses lists home-department codes that classify as Research
	// (e.g. "PHY 680").
	ResearchCourses []string `json:"research_courses" yaml:"research_courses"`

	// NonCoreElectives whitelists codes that classify as Elective. Any code
	// outside the home department and this list is Invalid.
	NonCoreElectives []string `json:"non_core_electives" yaml:"non_core_electives"`

	// PlaceholderTitle replaces the title of whitelisted elective records
	// until a continuation line refines it (e.g. "Special Topics in Physics").
	PlaceholderTitle string `json:"placeholder_title" yaml:"placeholder_title"`
}

// PolicyConfig holds the numeric certification thresholds.
type PolicyConfig struct {
	// MinCoreCredits is the minimum Core credit total (default 15).
	MinCoreCredits float64 `json:"min_core_credits" yaml:"min_core_credits"`

	// MaxResearchApplied caps how many Research credits may be applied
	// toward the total (default 6).
	MaxResearchApplied float64 `json:"max_research_applied" yaml:"max_research_applied"`

	// MaxLevel4xxCredits caps credits from 400-level courses (default 6).
	MaxLevel4xxCredits float64 `json:"max_level4xx_credits" yaml:"max_level4xx_credits"`

	// MinTotalCredits is the minimum counted credit total (default 30).
	MinTotalCredits float64 `json:"min_total_credits" yaml:"min_total_credits"`
}

// ExtractionConfig holds settings for the text-extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction tool: pdftotext or text.
	Backend string `json:"backend" yaml:"backend"`
}

// ReportConfig holds settings for per-transcript report artifacts.
type ReportConfig struct {
	// OutputDir is the directory for per-student report files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PreparedBy is printed in the report header.
	PreparedBy string `json:"prepared_by" yaml:"prepared_by"`

	// FilenameSuffix is appended to the derived student filename
	// (default "_ms_phy_track.csv").
	FilenameSuffix string `json:"filename_suffix" yaml:"filename_suffix"`
}

// SummaryConfig holds settings for the cross-transcript summary store.
type SummaryConfig struct {
	// OutputDir is the directory holding the summary database and its
	// CSV export.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Config groups all stage configurations for a certification run.
type Config struct {
	Program    ProgramConfig    `json:"program" yaml:"program"`
	Policy     PolicyConfig     `json:"policy" yaml:"policy"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Report     ReportConfig     `json:"report" yaml:"report"`
	Summary    SummaryConfig    `json:"summary" yaml:"summary"`
}

// DefaultConfig returns the MS Physics track defaults used when the config
// file omits a section.
func DefaultConfig() Config {
	return Config{
		Program: ProgramConfig{
			HomeDepartment:   "PHY",
			ResearchCourses:  []string{"PHY 680", "PHY 685", "PHY 690"},
			NonCoreElectives: []string{"PHY 510", "EAS 502", "EAS 520", "MTH 573"},
			PlaceholderTitle: "Special Topics in Physics",
		},
		Policy: PolicyConfig{
			MinCoreCredits:     15,
			MaxResearchApplied: 6,
			MaxLevel4xxCredits: 6,
			MinTotalCredits:    30,
		},
		Extraction: ExtractionConfig{
			Backend: "pdftotext",
		},
		Report: ReportConfig{
			OutputDir:      "output",
			PreparedBy:     "Robert Fisher",
			FilenameSuffix: "_ms_phy_track.csv",
		},
		Summary: SummaryConfig{
			OutputDir: "output",
		},
	}
}
