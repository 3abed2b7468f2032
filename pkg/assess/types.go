// Package assess defines the validated input model for one student
// self-assessment: per-domain competency items, the exam-prep snapshot,
// the methodology snapshot, and the scoring policy applied to them.
// Everything here is plain data; the scoring engine lives in pkg/scoring.
package assess

import "fmt"

// Domain is a curriculum subject area. The set is closed so that an
// unknown domain in a policy or snapshot fails at the boundary instead
// of silently scoring as zero.
type Domain string

const (
	Algebra       Domain = "algebra"
	Analysis      Domain = "analysis"
	Geometry      Domain = "geometry"
	Probabilities Domain = "probabilities"
	Programming   Domain = "programming"
)

// AllDomains returns the domain catalog in its fixed canonical order.
// Every order-sensitive computation iterates this slice, never a map.
func AllDomains() []Domain {
	return []Domain{Algebra, Analysis, Geometry, Probabilities, Programming}
}

// ParseDomain validates a raw domain string.
func ParseDomain(s string) (Domain, error) {
	for _, d := range AllDomains() {
		if Domain(s) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// Status is the tri-state evaluation status of one competency item.
// Collapsing it to a boolean or a numeric zero corrupts every
// downstream index, so it is threaded through all aggregation.
type Status string

const (
	StatusEvaluated  Status = "evaluated"
	StatusNotStudied Status = "not_studied"
	StatusUnknown    Status = "unknown"
)

// Feeling is the qualitative exam-readiness signal.
type Feeling string

const (
	FeelingConfident Feeling = "confident"
	FeelingNeutral   Feeling = "neutral"
	FeelingWorried   Feeling = "worried"
	FeelingPanic     Feeling = "panic"
)

// Concentration is the self-reported maximum focused-work bucket.
type Concentration string

const (
	Concentration15Min  Concentration = "15min"
	Concentration30Min  Concentration = "30min"
	Concentration45Min  Concentration = "45min"
	Concentration60Min  Concentration = "60min"
	Concentration90Plus Concentration = "90min+"
)

// CompetencyItem is one skill inside one domain. Mastery (0-4) and
// Friction (0-3) are present only when Status is evaluated; nil
// otherwise. A not_studied or unknown item is never a zero grade.
type CompetencyItem struct {
	SkillID    string   `json:"skillId" yaml:"skill_id"`
	SkillLabel string   `json:"skillLabel" yaml:"skill_label"`
	Domain     Domain   `json:"domain" yaml:"domain"`
	Status     Status   `json:"status" yaml:"status"`
	Mastery    *int     `json:"mastery,omitempty" yaml:"mastery,omitempty"`
	Friction   *int     `json:"friction,omitempty" yaml:"friction,omitempty"`
	ErrorTypes []string `json:"errorTypes,omitempty" yaml:"error_types,omitempty"`
}

// ExamPrepSnapshot carries the self-reported exam-readiness signals.
type ExamPrepSnapshot struct {
	MiniTestScore   int     `json:"miniTestScore" yaml:"mini_test_score"` // 0-6
	CompletedInTime bool    `json:"completedInTime" yaml:"completed_in_time"`
	Redaction       int     `json:"redaction" yaml:"redaction"`           // 0-4
	Justifications  int     `json:"justifications" yaml:"justifications"` // 0-4
	Stress          int     `json:"stress" yaml:"stress"`                 // 0-4
	Feeling         Feeling `json:"feeling" yaml:"feeling"`
}

// MethodologySnapshot carries work-habit signals. WeeklyWork is the
// verbatim free-text answer; parsing happens at scoring time and a
// non-numeric answer stays "unknown", never zero.
type MethodologySnapshot struct {
	WeeklyWork       string        `json:"weeklyWork" yaml:"weekly_work"`
	MaxConcentration Concentration `json:"maxConcentration" yaml:"max_concentration"`
	ErrorTypes       []string      `json:"errorTypes,omitempty" yaml:"error_types,omitempty"`
}

// Snapshot is the full validated assessment input. A missing domain key
// is treated as an empty domain.
type Snapshot struct {
	Items       map[Domain][]CompetencyItem `json:"items" yaml:"items"`
	ExamPrep    ExamPrepSnapshot            `json:"examPrep" yaml:"exam_prep"`
	Methodology MethodologySnapshot         `json:"methodology" yaml:"methodology"`
}

// MasteryOf returns the item's mastery, and false for non-evaluated items.
func (c CompetencyItem) MasteryOf() (int, bool) {
	if c.Status != StatusEvaluated || c.Mastery == nil {
		return 0, false
	}
	return *c.Mastery, true
}

// FrictionOf returns the item's self-reported friction; an absent value
// reads as zero resistance.
func (c CompetencyItem) FrictionOf() int {
	if c.Status != StatusEvaluated || c.Friction == nil {
		return 0
	}
	return *c.Friction
}
