// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps course codes to policy classifications and levels.
// All functions are pure; the program rules arrive as configuration data.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/degree-certify/pkg/types"
)

// levelPattern matches the first standalone 3-digit run in a course code.
var levelPattern = regexp.MustCompile(`\b(\d{3})\b`)

// Rules is the compiled form of a ProgramConfig, with the code sets turned
// into maps for lookup.
type Rules struct {
	homeDepartment   string
	researchCourses  map[string]bool
	nonCoreElectives map[string]bool
	placeholderTitle string
}

// NewRules compiles a ProgramConfig into a Rules value.
func NewRules(cfg types.ProgramConfig) Rules {
	r := Rules{
		homeDepartment:   cfg.HomeDepartment,
		researchCourses:  make(map[string]bool, len(cfg.ResearchCourses)),
		nonCoreElectives: make(map[string]bool, len(cfg.NonCoreElectives)),
		placeholderTitle: cfg.PlaceholderTitle,
	}
	for _, code := range cfg.ResearchCourses {
		r.researchCourses[code] = true
	}
	for _, code := range cfg.NonCoreElectives {
		r.nonCoreElectives[code] = true
	}
	return r
}

// Classify maps a normalized course code to its classification:
// whitelisted codes are Elective, home-department codes are Research or
// Core, and everything else is Invalid.
func (r Rules) Classify(code string) types.Classification {
	if r.nonCoreElectives[code] {
		return types.ClassElective
	}
	if department(code) == r.homeDepartment {
		if r.researchCourses[code] {
			return types.ClassResearch
		}
		return types.ClassCore
	}
	return types.ClassInvalid
}

// IsWhitelistedElective reports whether the code is on the non-core-elective
// whitelist. Whitelisted records are provisional: they hold the placeholder
// title until a possible continuation line refines it.
func (r Rules) IsWhitelistedElective(code string) bool {
	return r.nonCoreElectives[code]
}

// PlaceholderTitle returns the title assigned to whitelisted elective
// records when first parsed.
func (r Rules) PlaceholderTitle() string {
	return r.placeholderTitle
}

// Level extracts the numeric course level from a code as the first 3-digit
// run (e.g. 543 in "PHY 543"). The second return value is false when the
// code contains no 3-digit run; such records are excluded from all credit
// totals but still appear in the ledger.
func Level(code string) (int, bool) {
	m := levelPattern.FindStringSubmatch(code)
	if m == nil {
		return 0, false
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return level, true
}

// department returns the department prefix of a "DEPT NUM" code.
func department(code string) string {
	if i := strings.IndexByte(code, ' '); i > 0 {
		return code[:i]
	}
	return code
}
