package report

import (
	"regexp"
	"strings"
	"testing"

	"bilan/pkg/assess"
	"bilan/pkg/scoring"
)

func intPtr(v int) *int { return &v }

func evaluatedItem(id, label string, d assess.Domain, mastery, friction int) assess.CompetencyItem {
	return assess.CompetencyItem{
		SkillID:    id,
		SkillLabel: label,
		Domain:     d,
		Status:     assess.StatusEvaluated,
		Mastery:    intPtr(mastery),
		Friction:   intPtr(friction),
	}
}

// mixedResult scores a profile with both strong and weak domains, one
// danger alert, and a conditional recommendation.
func mixedResult(t *testing.T) *scoring.Result {
	t.Helper()
	s := &assess.Snapshot{
		Items: map[assess.Domain][]assess.CompetencyItem{
			assess.Algebra: {
				evaluatedItem("alg-1", "Linear equations", assess.Algebra, 4, 0),
				evaluatedItem("alg-2", "Polynomials", assess.Algebra, 3, 0),
			},
			assess.Analysis: {
				evaluatedItem("an-1", "Limits", assess.Analysis, 1, 3),
				evaluatedItem("an-2", "Derivatives", assess.Analysis, 1, 2),
			},
			assess.Geometry: {
				evaluatedItem("g-1", "Vectors", assess.Geometry, 2, 1),
				evaluatedItem("g-2", "Transformations", assess.Geometry, 3, 0),
			},
		},
		ExamPrep: assess.ExamPrepSnapshot{
			MiniTestScore:   2, // weak automatisms danger alert
			CompletedInTime: true,
			Redaction:       3,
			Justifications:  3,
			Stress:          2,
			Feeling:         assess.FeelingWorried,
		},
		Methodology: assess.MethodologySnapshot{
			WeeklyWork:       "4h",
			MaxConcentration: assess.Concentration45Min,
		},
	}
	res, err := scoring.Evaluate(s, assess.DefaultPolicy())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return res
}

func testContext() Context {
	return Context{
		StudentName: "Lena",
		Track:       "general",
		Level:       "secondary",
		Stage:       "mock-exam",
		FreeText: []FreeTextAnswer{
			{Question: "What worries you most about the exam?", Answer: "Running out of time."},
		},
	}
}

func TestStudentReport(t *testing.T) {
	res := mixedResult(t)
	out := Student(res, testContext())

	for _, want := range []string{
		"# Your assessment results",
		"Hi Lena!",
		"Readiness score:",
		"The call:",
		"## Work on these first",
		"## Your next two weeks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("student report missing %q", want)
		}
	}
	if !regexp.MustCompile(`\*\*\d+/100\*\*`).MatchString(out) {
		t.Error("student report should show raw numeric indices")
	}
}

func TestStudentReportOmitsEmptySections(t *testing.T) {
	res := mixedResult(t)
	res.QuickWins = nil
	res.Alerts = nil
	out := Student(res, testContext())
	if strings.Contains(out, "## Quick wins") {
		t.Error("empty quick-wins section should be omitted")
	}
	if strings.Contains(out, "## Heads-up") {
		t.Error("empty alerts section should be omitted")
	}
}

func TestGuardianReportHasNoNumbers(t *testing.T) {
	res := mixedResult(t)
	out := Guardian(res, testContext())

	if m := regexp.MustCompile(`\d`).FindString(out); m != "" {
		t.Errorf("guardian report leaks a numeric value near %q",
			surrounding(out, m))
	}
}

func surrounding(s, needle string) string {
	i := strings.Index(s, needle)
	lo, hi := i-30, i+30
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}

func TestGuardianReportContent(t *testing.T) {
	res := mixedResult(t)
	out := Guardian(res, testContext())

	for _, want := range []string{
		"# Assessment summary",
		"Lena",
		"## Overall picture",
		"Overall readiness:",
		"## Areas needing attention",
		"## Points of vigilance",
		"## Recommendation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("guardian report missing %q", want)
		}
	}
	// The danger alert must appear reworded, not verbatim.
	if strings.Contains(out, "critically low") {
		t.Error("guardian report should reword danger alerts")
	}
	if !strings.Contains(out, "core automatisms are not yet in place") {
		t.Error("guardian report missing the reworded automatisms alert")
	}
}

func TestGuardianSentinelDomainBand(t *testing.T) {
	res := mixedResult(t)
	out := Guardian(res, testContext())
	// Probabilities and programming carry no items in the fixture.
	if !strings.Contains(out, "not yet assessable") {
		t.Error("sentinel domains should read as not yet assessable")
	}
}

func TestStaffReport(t *testing.T) {
	res := mixedResult(t)
	out := Staff(res, testContext())

	for _, want := range []string{
		"# Staff assessment report — Lena",
		"general / secondary / mock-exam",
		"## Domain scores",
		"## Data quality",
		"## Alerts",
		"WEAK_AUTOMATISMS",
		"## Top priorities",
		"## Student's own words",
		"Running out of time.",
		"**Justification:**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("staff report missing %q", want)
		}
	}
	if !strings.Contains(out, "| Domain") {
		t.Error("staff report should render Markdown tables")
	}
}

func TestStaffReportOmitsEmptySections(t *testing.T) {
	res := mixedResult(t)
	res.Alerts = nil
	res.Inconsistencies = nil
	out := Staff(res, Context{StudentName: "Lena"})
	if strings.Contains(out, "## Alerts") {
		t.Error("empty alerts section should be omitted")
	}
	if strings.Contains(out, "## Inconsistencies") {
		t.Error("empty inconsistencies section should be omitted")
	}
	if strings.Contains(out, "## Student's own words") {
		t.Error("empty free-text section should be omitted")
	}
}

func TestReportsDeterministic(t *testing.T) {
	res := mixedResult(t)
	ctx := testContext()
	renderers := map[string]func(*scoring.Result, Context) string{
		"student":  Student,
		"guardian": Guardian,
		"staff":    Staff,
	}
	for name, render := range renderers {
		if first, second := render(res, ctx), render(res, ctx); first != second {
			t.Errorf("%s report is not byte-identical across renders", name)
		}
	}
}

func TestAppendEnrichment(t *testing.T) {
	base := "# Report\n\nBody.\n"

	t.Run("empty body is a no-op", func(t *testing.T) {
		if got := AppendEnrichment(base, "Notes", "  \n"); got != base {
			t.Errorf("expected unchanged report, got %q", got)
		}
	})

	t.Run("appends delimited section", func(t *testing.T) {
		got := AppendEnrichment(base, "Personalized notes", "Focus on limits this week.")
		if !strings.HasPrefix(got, base) {
			t.Error("original report must be preserved verbatim")
		}
		for _, want := range []string{
			"<!-- enrichment:start -->",
			"## Personalized notes",
			"Focus on limits this week.",
			"<!-- enrichment:end -->",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("enriched report missing %q", want)
			}
		}
	})
}
