package report

import (
	"fmt"
	"strings"

	"bilan/pkg/scoring"
)

// Guardian renders the guardian-facing report: formal register, and no
// raw numeric values anywhere. The renderer works from the pre-bucketed
// guardianView only; it never reads a numeric field of the result.
func Guardian(res *scoring.Result, ctx Context) string {
	v := newGuardianView(res, ctx)
	var b strings.Builder

	name := v.StudentName
	if name == "" {
		name = "your child"
	}

	b.WriteString("# Assessment summary\n\n")
	b.WriteString(fmt.Sprintf(
		"This report summarises the recent self-assessment completed by %s. "+
			"Results are expressed as qualitative levels rather than marks, "+
			"as they reflect a self-reported snapshot rather than a graded examination.\n\n", name))

	b.WriteString("## Overall picture\n\n")
	b.WriteString(fmt.Sprintf("- Overall readiness: **%s**\n", v.ReadinessBand))
	b.WriteString(fmt.Sprintf("- Subject command: **%s**\n", v.MasteryBand))
	b.WriteString(fmt.Sprintf("- Exam-risk level: **%s**\n\n", v.RiskBand))

	if v.CoverageIncomplete {
		b.WriteString("A notable portion of the program has not been assessed yet, so this picture will sharpen as further chapters are covered.\n\n")
	}

	writeGuardianStrengths(&b, v)
	writeGuardianWeaknesses(&b, v)
	writeGuardianAlerts(&b, v)
	writeGuardianRecommendation(&b, v)

	b.WriteString("Please do not hesitate to contact the teaching staff to discuss these observations.\n")
	return b.String()
}

func writeGuardianStrengths(b *strings.Builder, v guardianView) {
	if len(v.Strengths) == 0 {
		return
	}
	b.WriteString("## Strengths\n\n")
	for _, d := range v.Strengths {
		b.WriteString(fmt.Sprintf("- **%s** — current level: %s\n", d.Label, d.Band))
	}
	b.WriteString("\n")
}

func writeGuardianWeaknesses(b *strings.Builder, v guardianView) {
	if len(v.Weaknesses) == 0 {
		return
	}
	b.WriteString("## Areas needing attention\n\n")
	for _, d := range v.Weaknesses {
		b.WriteString(fmt.Sprintf("- **%s** — current level: %s", d.Label, d.Band))
		if len(d.Gaps) > 0 {
			b.WriteString(" (notably: " + strings.Join(d.Gaps, "; ") + ")")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeGuardianAlerts(b *strings.Builder, v guardianView) {
	if len(v.DangerMessages) == 0 {
		return
	}
	b.WriteString("## Points of vigilance\n\n")
	for _, msg := range v.DangerMessages {
		b.WriteString("- " + msg + "\n")
	}
	b.WriteString("\n")
}

func writeGuardianRecommendation(b *strings.Builder, v guardianView) {
	b.WriteString("## Recommendation\n\n")
	b.WriteString(fmt.Sprintf("**%s.** %s\n\n", v.RecommendationLabel, v.RecommendationMessage))
	b.WriteString(v.Justification + "\n\n")

	if len(v.UpgradeConditions) > 0 {
		b.WriteString("For the recommendation to move up a tier, the priorities are to:\n\n")
		for _, c := range v.UpgradeConditions {
			b.WriteString("- " + c + "\n")
		}
		b.WriteString("\n")
	}
}
