package report

import (
	"strings"

	"bilan/internal/display"
	"bilan/pkg/scoring"
)

// guardianView is the pre-bucketed qualitative projection of a scoring
// result. The guardian renderer consumes only this view, never the raw
// result, which makes the no-raw-numbers disclosure rule structural
// rather than a renderer discipline.
type guardianView struct {
	StudentName string

	ReadinessBand string
	MasteryBand   string
	RiskBand      string

	Strengths  []guardianDomain
	Weaknesses []guardianDomain

	DangerMessages []string

	RecommendationLabel   string
	RecommendationMessage string
	Justification         string
	UpgradeConditions     []string

	CoverageIncomplete bool
}

// guardianDomain is one domain described without numbers.
type guardianDomain struct {
	Label string
	Band  string
	Gaps  []string // at most 3 labels
}

// newGuardianView buckets every numeric field of the result. The tier
// justification and upgrade conditions are re-worded here because the
// raw ones embed metric values.
func newGuardianView(res *scoring.Result, ctx Context) guardianView {
	v := guardianView{
		StudentName:           ctx.StudentName,
		ReadinessBand:         display.Band(res.ReadinessScore),
		MasteryBand:           display.Band(res.MasteryIndex),
		RiskBand:              display.RiskBand(res.RiskIndex),
		RecommendationLabel:   display.TierLabel(string(res.Recommendation)),
		RecommendationMessage: res.RecommendationMessage,
		Justification:         qualitativeJustification(res),
		UpgradeConditions:     qualitativeConditions(res.UpgradeConditions),
		CoverageIncomplete:    res.CoverageIndex < 70,
	}

	for _, ds := range strongDomains(res, 3) {
		v.Strengths = append(v.Strengths, guardianDomain{
			Label: display.DomainLabel(string(ds.Domain)),
			Band:  display.Band(ds.Score),
		})
	}
	for _, ds := range weakDomains(res) {
		gd := guardianDomain{
			Label: display.DomainLabel(string(ds.Domain)),
			Band:  display.Band(ds.Score),
		}
		if ds.InsufficientData() {
			gd.Band = "not yet assessable"
		}
		gaps := ds.Gaps
		if len(gaps) > 3 {
			gaps = gaps[:3]
		}
		gd.Gaps = gaps
		v.Weaknesses = append(v.Weaknesses, gd)
	}

	for _, a := range alertsOfType(res, scoring.AlertDanger) {
		v.DangerMessages = append(v.DangerMessages, guardianAlertText(a))
	}

	return v
}

// guardianAlertText rewords a danger alert without the numeric values
// the raw message may carry.
func guardianAlertText(a scoring.Alert) string {
	switch a.Code {
	case scoring.CodeWeakAutomatisms:
		return "The diagnostic mini-test indicates that core automatisms are not yet in place."
	case scoring.CodePanicSignal:
		return "The student reports significant distress about the upcoming exam; a personal follow-up is advised."
	default:
		return a.Impact
	}
}

// qualitativeJustification restates the decision rationale in band
// language only.
func qualitativeJustification(res *scoring.Result) string {
	readiness := display.Band(res.ReadinessScore)
	risk := display.RiskBand(res.RiskIndex)

	switch res.Recommendation {
	case scoring.RecommendationConfirmed:
		j := "Overall readiness is " + readiness + " and the identified risk level is " + risk +
			", which supports the planned registration."
		if res.CoverageIndex < 70 {
			j += " Note that a sizeable part of the program has not been assessed yet."
		}
		return j
	case scoring.RecommendationConditional:
		return "Overall readiness is " + readiness + " with a " + risk + " risk level; " +
			"the conditions for a full confirmation are not all met yet."
	default:
		return "Overall readiness is currently " + readiness + " with a " + risk + " risk level; " +
			"consolidating the foundations comes before any exam commitment."
	}
}

// qualitativeConditions rewords the numeric upgrade conditions. The
// raw strings name the metric they constrain, which is enough to pick
// the band phrasing without leaking values.
func qualitativeConditions(raw []string) []string {
	var out []string
	for _, c := range raw {
		switch {
		case strings.Contains(c, "readinessScore"):
			out = append(out, "bring the overall readiness level up through regular, structured work")
		case strings.Contains(c, "riskIndex"):
			out = append(out, "reduce the exam-risk level, in particular the stress and timing factors")
		}
	}
	return out
}
