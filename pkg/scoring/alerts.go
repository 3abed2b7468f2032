package scoring

import (
	"fmt"

	"bilan/internal/display"
	"bilan/pkg/assess"
)

// Stable alert codes.
const (
	CodeHighStress         = "HIGH_STRESS"
	CodeWeakAutomatisms    = "WEAK_AUTOMATISMS"
	CodePanicSignal        = "PANIC_SIGNAL"
	CodeMultipleBlockages  = "MULTIPLE_BLOCKAGES"
	CodeLowWorkVolume      = "LOW_WORK_VOLUME"
	CodeShortConcentration = "SHORT_CONCENTRATION"
	CodeLowActiveDomains   = "LOW_ACTIVE_DOMAINS"
	CodeManyUnknown        = "MANY_UNKNOWN"
)

// Stable inconsistency codes.
const (
	CodeHighScoreManyErrors = "HIGH_SCORE_MANY_ERRORS"
	CodeHighTestLowWork     = "HIGH_TEST_LOW_WORK"
	CodeGapsWithoutFriction = "GAPS_WITHOUT_FRICTION"
)

const (
	highFrictionFloor    = 3
	blockedItemsForAlert = 2
	unknownItemsForAlert = 3
)

// detectAlerts evaluates every alert rule independently; all matching
// rules fire, in a fixed rule order so output stays deterministic.
func detectAlerts(s *assess.Snapshot, domainScores []DomainScore, pol assess.Policy) []Alert {
	var alerts []Alert

	if s.ExamPrep.Stress >= 3 {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeHighStress,
			Message: fmt.Sprintf("Self-reported stress is high (%d/4).", s.ExamPrep.Stress),
			Impact:  "Stress at this level depresses exam performance below actual mastery.",
		})
	}

	if s.ExamPrep.MiniTestScore <= 2 {
		alerts = append(alerts, Alert{
			Type:    AlertDanger,
			Code:    CodeWeakAutomatisms,
			Message: fmt.Sprintf("Diagnostic mini-test score is critically low (%d/6).", s.ExamPrep.MiniTestScore),
			Impact:  "Core automatisms are not in place; timed exercises will stall regardless of theory knowledge.",
		})
	}

	if s.ExamPrep.Feeling == assess.FeelingPanic {
		alerts = append(alerts, Alert{
			Type:    AlertDanger,
			Code:    CodePanicSignal,
			Message: "The student reports a panic-level feeling about the exam.",
			Impact:  "Distress signals override numeric indices; staff follow-up should precede any study plan.",
		})
	}

	if n := blockedItemCount(s); n >= blockedItemsForAlert {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeMultipleBlockages,
			Message: fmt.Sprintf("%d competencies report maximum friction.", n),
			Impact:  "Several simultaneous blockages usually point to a method problem, not a content problem.",
		})
	}

	if hours, ok := parseWeeklyHours(s.Methodology.WeeklyWork); ok && hours < pol.WeeklyWorkFloorHours {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeLowWorkVolume,
			Message: fmt.Sprintf("Weekly work volume (%.1fh) is below the %.0fh floor.", hours, pol.WeeklyWorkFloorHours),
			Impact:  "At this volume the gaps listed below will not close before the exam date.",
		})
	}

	if s.Methodology.MaxConcentration == assess.Concentration15Min {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeShortConcentration,
			Message: fmt.Sprintf("Maximum focused-work span is %s.", display.ConcentrationLabel(string(s.Methodology.MaxConcentration))),
			Impact:  "Exam problems run longer than the current concentration span; stamina work is needed.",
		})
	}

	if n := activeDomainCount(domainScores); n < pol.MinActiveDomains {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeLowActiveDomains,
			Message: fmt.Sprintf("Only %d of %d domains have enough evaluated items.", n, len(domainScores)),
			Impact:  "Composite indices rest on a narrow slice of the program and should be read with caution.",
		})
	}

	if n := unknownItemCount(domainScores); n >= unknownItemsForAlert {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Code:    CodeManyUnknown,
			Message: fmt.Sprintf("%d competencies are in unknown status.", n),
			Impact:  "Unknown items hide both potential strengths and gaps; a follow-up evaluation would sharpen the picture.",
		})
	}

	return alerts
}

// detectInconsistencies evaluates the second, independent rule family:
// input combinations that are individually valid but jointly
// implausible. They never block scoring.
func detectInconsistencies(s *assess.Snapshot, domainScores []DomainScore) []Inconsistency {
	var out []Inconsistency

	for _, ds := range domainScores {
		if ds.InsufficientData() {
			continue
		}
		if ds.Score >= 70 && errorTagOccurrences(s.Items[ds.Domain]) >= 3 {
			out = append(out, Inconsistency{
				Code: CodeHighScoreManyErrors,
				Message: fmt.Sprintf("%s scores %d yet carries a heavy recurring-error load.",
					display.DomainLabel(string(ds.Domain)), ds.Score),
				Fields:   []string{fmt.Sprintf("items[%s]", ds.Domain)},
				Severity: AlertWarning,
			})
		}
		if len(ds.Gaps) >= 2 && maxFriction(s.Items[ds.Domain]) == 0 {
			out = append(out, Inconsistency{
				Code: CodeGapsWithoutFriction,
				Message: fmt.Sprintf("%s has %d weak competencies but reports no difficulty on any of them.",
					display.DomainLabel(string(ds.Domain)), len(ds.Gaps)),
				Fields:   []string{fmt.Sprintf("items[%s]", ds.Domain)},
				Severity: AlertInfo,
			})
		}
	}

	if hours, ok := parseWeeklyHours(s.Methodology.WeeklyWork); ok &&
		s.ExamPrep.MiniTestScore >= 5 && hours < 1 {
		out = append(out, Inconsistency{
			Code: CodeHighTestLowWork,
			Message: fmt.Sprintf("Mini-test score %d/6 is hard to reconcile with %.1fh of weekly work.",
				s.ExamPrep.MiniTestScore, hours),
			Fields:   []string{"examPrep.miniTestScore", "methodology.weeklyWork"},
			Severity: AlertWarning,
		})
	}

	return out
}

// --- counting helpers ---

func blockedItemCount(s *assess.Snapshot) int {
	n := 0
	for _, domain := range assess.AllDomains() {
		for _, item := range s.Items[domain] {
			if item.Status == assess.StatusEvaluated && item.FrictionOf() >= highFrictionFloor {
				n++
			}
		}
	}
	return n
}

func activeDomainCount(domainScores []DomainScore) int {
	n := 0
	for _, ds := range domainScores {
		if !ds.InsufficientData() {
			n++
		}
	}
	return n
}

func unknownItemCount(domainScores []DomainScore) int {
	n := 0
	for _, ds := range domainScores {
		n += ds.UnknownCount
	}
	return n
}

func errorTagOccurrences(items []assess.CompetencyItem) int {
	n := 0
	for _, item := range items {
		n += len(item.ErrorTypes)
	}
	return n
}

func maxFriction(items []assess.CompetencyItem) int {
	max := 0
	for _, item := range items {
		if item.Status != assess.StatusEvaluated {
			continue
		}
		if f := item.FrictionOf(); f > max {
			max = f
		}
	}
	return max
}
