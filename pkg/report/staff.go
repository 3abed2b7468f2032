package report

import (
	"fmt"
	"strings"

	"bilan/internal/display"
	"bilan/internal/format"
	"bilan/pkg/scoring"
)

// Staff renders the staff-facing report: technical register, full
// tables, machine codes alongside labels, raw justification, and the
// verbatim free-text answers.
func Staff(res *scoring.Result, ctx Context) string {
	var b strings.Builder

	title := "Staff assessment report"
	if ctx.StudentName != "" {
		title += " — " + ctx.StudentName
	}
	b.WriteString("# " + title + "\n\n")

	writeStaffHeader(&b, res, ctx)
	writeStaffDomainTable(&b, res)
	writeStaffDataQuality(&b, res)
	writeStaffAlerts(&b, res)
	writeStaffInconsistencies(&b, res)
	writeStaffPriorities(&b, res)
	writeStaffFreeText(&b, ctx)

	return b.String()
}

func writeStaffHeader(b *strings.Builder, res *scoring.Result, ctx Context) {
	tbl := format.NewTable()
	tbl.Header("Field", "Value")
	if ctx.Track != "" {
		tbl.Row("Template", fmt.Sprintf("%s / %s / %s", ctx.Track, ctx.Level, ctx.Stage))
	}
	tbl.Row("Recommendation", fmt.Sprintf("%s (%s)", display.TierLabel(string(res.Recommendation)), res.Recommendation))
	tbl.Row("Readiness score", res.ReadinessScore)
	tbl.Row("Mastery index", res.MasteryIndex)
	tbl.Row("Coverage index", res.CoverageIndex)
	tbl.Row("Exam readiness index", res.ExamReadinessIndex)
	tbl.Row("Risk index", res.RiskIndex)
	tbl.Row("Trust", fmt.Sprintf("%d (%s)", res.TrustScore, res.TrustLevel))
	b.WriteString(tbl.String())
	b.WriteString("\n\n")

	b.WriteString("**Justification:** " + res.Justification + "\n\n")
	if len(res.UpgradeConditions) > 0 {
		b.WriteString("**Upgrade conditions:**\n\n")
		for _, c := range res.UpgradeConditions {
			b.WriteString("- " + c + "\n")
		}
		b.WriteString("\n")
	}
}

func writeStaffDomainTable(b *strings.Builder, res *scoring.Result) {
	b.WriteString("## Domain scores\n\n")
	tbl := format.NewTable()
	tbl.Header("Domain", "Score", "Priority", "Eval", "Total", "Not studied", "Unknown", "Gaps", "Dominant errors")
	tbl.Columns(format.ColumnConfig{Number: 8, MaxWidth: 40})
	for _, ds := range res.DomainScores {
		score := fmt.Sprintf("%d", ds.Score)
		if ds.InsufficientData() {
			score = "-- (insufficient data)"
		}
		tbl.Row(
			display.DomainLabel(string(ds.Domain)),
			score,
			string(ds.Priority),
			ds.EvaluatedCount,
			ds.TotalCount,
			ds.NotStudiedCount,
			ds.UnknownCount,
			format.Truncate(strings.Join(ds.Gaps, "; "), 40),
			strings.Join(ds.DominantErrors, ", "),
		)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n\n")
}

func writeStaffDataQuality(b *strings.Builder, res *scoring.Result) {
	dq := res.DataQuality
	b.WriteString("## Data quality\n\n")
	tbl := format.NewTable()
	tbl.Header("Counter", "Value")
	tbl.Row("Total items", dq.TotalItems)
	tbl.Row("Evaluated", dq.EvaluatedItems)
	tbl.Row("Not studied", dq.NotStudiedItems)
	tbl.Row("Unknown", dq.UnknownItems)
	tbl.Row("Active domains", dq.ActiveDomains)
	tbl.Row("Trust score", res.TrustScore)
	tbl.Row("Trust level", fmt.Sprintf("%s (%s)", display.TrustLabel(string(res.TrustLevel)), res.TrustLevel))
	b.WriteString(tbl.String())
	b.WriteString("\n\n")
}

func writeStaffAlerts(b *strings.Builder, res *scoring.Result) {
	if len(res.Alerts) == 0 {
		return
	}
	b.WriteString("## Alerts\n\n")
	tbl := format.NewTable()
	tbl.Header("Code", "Type", "Message", "Impact")
	tbl.Columns(
		format.ColumnConfig{Number: 3, MaxWidth: 50},
		format.ColumnConfig{Number: 4, MaxWidth: 60},
	)
	for _, a := range res.Alerts {
		tbl.Row(a.Code, string(a.Type), a.Message, a.Impact)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n\n")
}

func writeStaffInconsistencies(b *strings.Builder, res *scoring.Result) {
	if len(res.Inconsistencies) == 0 {
		return
	}
	b.WriteString("## Inconsistencies\n\n")
	tbl := format.NewTable()
	tbl.Header("Code", "Severity", "Message", "Fields")
	tbl.Columns(format.ColumnConfig{Number: 3, MaxWidth: 60})
	for _, inc := range res.Inconsistencies {
		tbl.Row(inc.Code, string(inc.Severity), inc.Message, strings.Join(inc.Fields, ", "))
	}
	b.WriteString(tbl.String())
	b.WriteString("\n\n")
}

func writeStaffPriorities(b *strings.Builder, res *scoring.Result) {
	lists := []struct {
		title string
		items []scoring.RankedItem
	}{
		{"Top priorities", res.TopPriorities},
		{"Quick wins", res.QuickWins},
		{"High risk", res.HighRisk},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		b.WriteString("## " + l.title + "\n\n")
		tbl := format.NewTable()
		tbl.Header("Skill", "Domain", "Mastery", "Friction", "Reason")
		tbl.Columns(format.ColumnConfig{Number: 5, MaxWidth: 55})
		for _, it := range l.items {
			tbl.Row(it.SkillLabel, string(it.Domain), it.Mastery, it.Friction, it.Reason)
		}
		b.WriteString(tbl.String())
		b.WriteString("\n\n")
	}
}

func writeStaffFreeText(b *strings.Builder, ctx Context) {
	if len(ctx.ProfileNotes) == 0 && len(ctx.FreeText) == 0 {
		return
	}
	b.WriteString("## Student's own words\n\n")
	for _, note := range ctx.ProfileNotes {
		b.WriteString("- " + note + "\n")
	}
	if len(ctx.ProfileNotes) > 0 {
		b.WriteString("\n")
	}
	for _, ft := range ctx.FreeText {
		b.WriteString(fmt.Sprintf("**%s**\n\n> %s\n\n", ft.Question, ft.Answer))
	}
}
