package report

import (
	"fmt"
	"strings"

	"bilan/internal/display"
	"bilan/pkg/scoring"
)

// Student renders the student-facing report: informal register, numeric
// indices shown directly, strengths, work priorities, quick wins,
// danger and warning alerts, and the fixed two-week routine.
func Student(res *scoring.Result, ctx Context) string {
	var b strings.Builder

	name := ctx.StudentName
	if name == "" {
		name = "there"
	}
	b.WriteString("# Your assessment results\n\n")
	b.WriteString(fmt.Sprintf("Hi %s! Here is where you stand right now.\n\n", name))

	b.WriteString(fmt.Sprintf("- Readiness score: **%d/100**\n", res.ReadinessScore))
	b.WriteString(fmt.Sprintf("- Mastery index: **%d/100**\n", res.MasteryIndex))
	b.WriteString(fmt.Sprintf("- Program covered so far: **%d%%**\n", res.CoverageIndex))
	b.WriteString(fmt.Sprintf("- Exam readiness index: **%d/100**\n\n", res.ExamReadinessIndex))

	b.WriteString("**The call:** " + display.TierLabel(string(res.Recommendation)) + " — " + res.RecommendationMessage + "\n\n")

	writeStudentStrengths(&b, res)
	writeStudentPriorities(&b, res)
	writeStudentQuickWins(&b, res)
	writeStudentAlerts(&b, res)
	writeStudentRoutine(&b)

	return b.String()
}

func writeStudentStrengths(b *strings.Builder, res *scoring.Result) {
	strengths := strongDomains(res, 3)
	if len(strengths) == 0 {
		return
	}
	b.WriteString("## What's working\n\n")
	for _, ds := range strengths {
		b.WriteString(fmt.Sprintf("- **%s** — %d/100, keep it warm with one exercise set a week\n",
			display.DomainLabel(string(ds.Domain)), ds.Score))
	}
	b.WriteString("\n")
}

func writeStudentPriorities(b *strings.Builder, res *scoring.Result) {
	if len(res.TopPriorities) == 0 {
		return
	}
	b.WriteString("## Work on these first\n\n")
	for _, it := range res.TopPriorities {
		b.WriteString(fmt.Sprintf("- **%s** (%s) — why: %s\n",
			it.SkillLabel, display.DomainLabel(string(it.Domain)), it.Reason))
	}
	b.WriteString("\n")
}

func writeStudentQuickWins(b *strings.Builder, res *scoring.Result) {
	if len(res.QuickWins) == 0 {
		return
	}
	b.WriteString("## Quick wins\n\n")
	b.WriteString("These are almost there — a short focused session each is enough:\n\n")
	for _, it := range res.QuickWins {
		b.WriteString(fmt.Sprintf("- **%s** (%s) — %s\n",
			it.SkillLabel, display.DomainLabel(string(it.Domain)), it.Reason))
	}
	b.WriteString("\n")
}

func writeStudentAlerts(b *strings.Builder, res *scoring.Result) {
	alerts := alertsOfType(res, scoring.AlertDanger, scoring.AlertWarning)
	if len(alerts) == 0 {
		return
	}
	b.WriteString("## Heads-up\n\n")
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("- **%s:** %s\n", display.AlertTypeLabel(string(a.Type)), a.Message))
	}
	b.WriteString("\n")
}

// writeStudentRoutine emits the fixed two-week routine template. It is
// deliberately identical for every student; personalization happens in
// the priority lists above it.
func writeStudentRoutine(b *strings.Builder) {
	b.WriteString(`## Your next two weeks

**Week 1 — rebuild**
- Mon/Wed/Fri: 30 min on your top priority, one exercise at a time, no notes on the second pass
- Tue/Thu: 20 min on a quick win, finish with one timed exercise
- Weekend: one 45-min mini-test on the week's topics, check errors the same day

**Week 2 — consolidate**
- Mon/Wed/Fri: 30 min on priority #2, alternate solved examples and blank attempts
- Tue/Thu: redo the exercises you missed in week 1, from scratch
- Weekend: one full-length timed section, then 15 min reviewing only the errors

Small sessions beat marathons. Stop each session while you still have energy left.
`)
}
