package classify

import (
	"testing"

	"github.com/pdiddy/degree-certify/pkg/types"
)

func testRules() Rules {
	return NewRules(types.ProgramConfig{
		HomeDepartment:   "PHY",
		ResearchCourses:  []string{"PHY 680", "PHY 685", "PHY 690"},
		NonCoreElectives: []string{"PHY 510", "EAS 502", "EAS 520", "MTH 573"},
		PlaceholderTitle: "Special Topics in Physics",
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code string
		want types.Classification
	}{
		{"PHY 543", types.ClassCore},
		{"PHY 561", types.ClassCore},
		{"PHY 680", types.ClassResearch},
		{"PHY 685", types.ClassResearch},
		{"PHY 690", types.ClassResearch},
		// Whitelist wins over the home-department rule.
		{"PHY 510", types.ClassElective},
		{"EAS 502", types.ClassElective},
		{"EAS 520", types.ClassElective},
		{"MTH 573", types.ClassElective},
		// Non-whitelisted external departments are invalid.
		{"BIO 520", types.ClassInvalid},
		{"MTH 574", types.ClassInvalid},
		{"EAS 530", types.ClassInvalid},
	}

	rules := testRules()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := rules.Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyOtherProgram(t *testing.T) {
	// The rules are configuration data; a chemistry program reuses the
	// classifier with its own sets.
	rules := NewRules(types.ProgramConfig{
		HomeDepartment:  "CHM",
		ResearchCourses: []string{"CHM 695"},
	})

	if got := rules.Classify("CHM 611"); got != types.ClassCore {
		t.Errorf("CHM 611 = %q, want Core", got)
	}
	if got := rules.Classify("CHM 695"); got != types.ClassResearch {
		t.Errorf("CHM 695 = %q, want Research", got)
	}
	if got := rules.Classify("PHY 543"); got != types.ClassInvalid {
		t.Errorf("PHY 543 = %q, want Invalid for a CHM program", got)
	}
}

func TestIsWhitelistedElective(t *testing.T) {
	rules := testRules()
	if !rules.IsWhitelistedElective("EAS 520") {
		t.Error("EAS 520 should be whitelisted")
	}
	if rules.IsWhitelistedElective("PHY 543") {
		t.Error("PHY 543 should not be whitelisted")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		code  string
		level int
		ok    bool
	}{
		{"PHY 543", 543, true},
		{"PHY 680", 680, true},
		{"EAS 502", 502, true},
		{"PHY 320", 320, true},
		{"PHY 54", 0, false},
		{"PHY", 0, false},
		{"", 0, false},
		// The first 3-digit run wins.
		{"PHY 499 801", 499, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			level, ok := Level(tt.code)
			if ok != tt.ok {
				t.Fatalf("Level(%q) ok = %v, want %v", tt.code, ok, tt.ok)
			}
			if level != tt.level {
				t.Errorf("Level(%q) = %d, want %d", tt.code, level, tt.level)
			}
		})
	}
}
