// Package scoring computes the full assessment result: per-domain
// mastery scores, composite indices, the tiered recommendation, alerts
// and inconsistencies, trust scoring, and ranked priority lists. The
// whole engine is a pure function of one Snapshot and one Policy.
package scoring

import "bilan/pkg/assess"

// minEvaluatedPerDomain is the floor below which a domain enters the
// insufficient-data sentinel state: score 0, priority critical, and
// exclusion from the weighted mastery mean.
const minEvaluatedPerDomain = 2

// Priority classifies how urgently a domain needs work.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// DomainScore is the mastery aggregate for one domain.
type DomainScore struct {
	Domain          assess.Domain `json:"domain"`
	Score           int           `json:"score"` // 0-100, mastery-only
	EvaluatedCount  int           `json:"evaluatedCount"`
	TotalCount      int           `json:"totalCount"`
	NotStudiedCount int           `json:"notStudiedCount"`
	UnknownCount    int           `json:"unknownCount"`
	Gaps            []string      `json:"gaps,omitempty"`           // labels with mastery <= 1
	DominantErrors  []string      `json:"dominantErrors,omitempty"` // top 2 tags by frequency
	Priority        Priority      `json:"priority"`
}

// InsufficientData reports whether the domain is in the sentinel state.
// A sentinel score of 0 is not a real grade; consumers must check this
// before treating Score as mastery.
func (d DomainScore) InsufficientData() bool {
	return d.EvaluatedCount < minEvaluatedPerDomain
}

// AlertType grades alert severity.
type AlertType string

const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// Alert flags one risk situation detected in the input. Code is stable
// for machines; Message and Impact are for humans.
type Alert struct {
	Type    AlertType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Impact  string    `json:"impact"`
}

// Inconsistency flags an input combination that is individually valid
// but jointly implausible. It never blocks scoring; it feeds the staff
// report and the trust deduction.
type Inconsistency struct {
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Fields   []string  `json:"fields"`
	Severity AlertType `json:"severity"`
}

// RankedItem is one competency item surfaced in a priority list.
type RankedItem struct {
	SkillID    string        `json:"skillId"`
	SkillLabel string        `json:"skillLabel"`
	Domain     assess.Domain `json:"domain"`
	Mastery    int           `json:"mastery"`
	Friction   int           `json:"friction"`
	Reason     string        `json:"reason"`
}

// DataQuality counts how complete the input snapshot is.
type DataQuality struct {
	TotalItems      int `json:"totalItems"`
	EvaluatedItems  int `json:"evaluatedItems"`
	NotStudiedItems int `json:"notStudiedItems"`
	UnknownItems    int `json:"unknownItems"`
	ActiveDomains   int `json:"activeDomains"` // domains with >= 2 evaluated items
}

// Recommendation is the three-tier decision outcome.
type Recommendation string

const (
	RecommendationConfirmed    Recommendation = "confirmed"
	RecommendationConditional  Recommendation = "conditional"
	RecommendationFoundational Recommendation = "foundational"
)

// TrustLevel grades confidence in the scored result.
type TrustLevel string

const (
	TrustGreen  TrustLevel = "green"
	TrustOrange TrustLevel = "orange"
	TrustRed    TrustLevel = "red"
)

// Result is the immutable output record of one evaluation. It is the
// only artifact the caller persists, and the sole input of all three
// report renderers.
type Result struct {
	MasteryIndex       int `json:"masteryIndex"`
	CoverageIndex      int `json:"coverageIndex"`
	ExamReadinessIndex int `json:"examReadinessIndex"`
	ReadinessScore     int `json:"readinessScore"`
	RiskIndex          int `json:"riskIndex"`

	Recommendation        Recommendation `json:"recommendation"`
	RecommendationMessage string         `json:"recommendationMessage"`
	Justification         string         `json:"justification"`
	UpgradeConditions     []string       `json:"upgradeConditions,omitempty"`

	DomainScores []DomainScore `json:"domainScores"`

	Alerts          []Alert         `json:"alerts,omitempty"`
	Inconsistencies []Inconsistency `json:"inconsistencies,omitempty"`

	DataQuality DataQuality `json:"dataQuality"`
	TrustScore  int         `json:"trustScore"`
	TrustLevel  TrustLevel  `json:"trustLevel"`

	TopPriorities []RankedItem `json:"topPriorities,omitempty"`
	QuickWins     []RankedItem `json:"quickWins,omitempty"`
	HighRisk      []RankedItem `json:"highRisk,omitempty"`
}

// DomainScore returns the score record for one domain; ok is false for
// a domain outside the catalog.
func (r *Result) DomainScore(d assess.Domain) (DomainScore, bool) {
	for _, ds := range r.DomainScores {
		if ds.Domain == d {
			return ds, true
		}
	}
	return DomainScore{}, false
}
