package scoring

import (
	"fmt"
	"strings"

	"bilan/pkg/assess"
)

// Fixed per-tier recommendation messages.
const (
	msgConfirmed    = "Exam registration confirmed: current mastery and readiness support sitting the exam as planned."
	msgConditional  = "Conditional go: the exam plan holds provided the gaps below are closed before the registration deadline."
	msgFoundational = "Foundational work first: postpone the exam commitment and rebuild core domains before re-assessing."
)

// decision carries the policy engine output before assembly into Result.
type decision struct {
	Recommendation    Recommendation
	Message           string
	Justification     string
	UpgradeConditions []string
}

// decide applies the threshold policy to the composite indices. The
// three branches are tried strictly in order, so raising readiness or
// lowering risk can only move the outcome to a higher tier.
func decide(idx indexSet, pol assess.Policy) decision {
	switch {
	case idx.Readiness >= pol.Confirmed.Readiness && idx.Risk <= pol.Confirmed.Risk:
		return decision{
			Recommendation: RecommendationConfirmed,
			Message:        msgConfirmed,
			Justification:  confirmedJustification(idx, pol),
		}
	case idx.Readiness >= pol.Conditional.Readiness && idx.Risk <= pol.Conditional.Risk:
		return decision{
			Recommendation:    RecommendationConditional,
			Message:           msgConditional,
			Justification:     shortfallJustification("Conditional", idx, pol.Confirmed, "confirmed"),
			UpgradeConditions: upgradeConditions(idx, pol.Confirmed, "confirmed"),
		}
	default:
		return decision{
			Recommendation:    RecommendationFoundational,
			Message:           msgFoundational,
			Justification:     shortfallJustification("Foundational", idx, pol.Conditional, "conditional"),
			UpgradeConditions: upgradeConditions(idx, pol.Conditional, "conditional"),
		}
	}
}

// confirmedJustification states the satisfied gates and, when program
// coverage is incomplete, adds the non-blocking caveat.
func confirmedJustification(idx indexSet, pol assess.Policy) string {
	j := fmt.Sprintf("readinessScore %d meets the confirmed bar (%d) and riskIndex %d stays within the ceiling (%d).",
		idx.Readiness, pol.Confirmed.Readiness, idx.Risk, pol.Confirmed.Risk)
	if idx.Coverage < 70 {
		j += fmt.Sprintf(" Caveat: coverageIndex %d is below 70; mastery is solid but a sizeable share of the program is still unassessed.",
			idx.Coverage)
	}
	return j
}

// shortfallJustification names which of the two gate metrics fell short
// of the next tier up, with actual values against the decisive bar.
func shortfallJustification(tierWord string, idx indexSet, gate assess.ThresholdPair, gateName string) string {
	var parts []string
	if idx.Readiness < gate.Readiness {
		parts = append(parts, fmt.Sprintf("readinessScore %d is below the %s bar (%d)",
			idx.Readiness, gateName, gate.Readiness))
	}
	if idx.Risk > gate.Risk {
		parts = append(parts, fmt.Sprintf("riskIndex %d exceeds the %s ceiling (%d)",
			idx.Risk, gateName, gate.Risk))
	}
	return tierWord + " because " + strings.Join(parts, " and ") + "."
}

// upgradeConditions lists the concrete metric deltas required to reach
// the next tier up.
func upgradeConditions(idx indexSet, gate assess.ThresholdPair, gateName string) []string {
	var conds []string
	if idx.Readiness < gate.Readiness {
		conds = append(conds, fmt.Sprintf("raise readinessScore to at least %d (currently %d) to reach the %s tier",
			gate.Readiness, idx.Readiness, gateName))
	}
	if idx.Risk > gate.Risk {
		conds = append(conds, fmt.Sprintf("bring riskIndex down to %d or below (currently %d) to reach the %s tier",
			gate.Risk, idx.Risk, gateName))
	}
	return conds
}
