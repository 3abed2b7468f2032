package assess

// ThresholdPair is one decision gate: minimum readiness and maximum risk.
type ThresholdPair struct {
	Readiness int `json:"readiness" yaml:"readiness"`
	Risk      int `json:"risk" yaml:"risk"`
}

// TrustPenalties are the data-quality deductions applied to the trust
// score. They are tunable policy, not a hard contract.
type TrustPenalties struct {
	MissingActiveDomain int `json:"missingActiveDomain" yaml:"missing_active_domain"`
	UnknownItem         int `json:"unknownItem" yaml:"unknown_item"`
	MiniTestIncomplete  int `json:"miniTestIncomplete" yaml:"mini_test_incomplete"`
	Inconsistency       int `json:"inconsistency" yaml:"inconsistency"`
}

// Policy is the per-template scoring configuration. It is immutable
// input to the engine: domain weights, the two decision gates, and the
// tunable constants the engine needs alongside them.
type Policy struct {
	DomainWeights        map[Domain]float64 `json:"domainWeights" yaml:"domain_weights"`
	Confirmed            ThresholdPair      `json:"confirmed" yaml:"confirmed"`
	Conditional          ThresholdPair      `json:"conditional" yaml:"conditional"`
	TrustPenalties       TrustPenalties     `json:"trustPenalties" yaml:"trust_penalties"`
	WeeklyWorkFloorHours float64            `json:"weeklyWorkFloorHours" yaml:"weekly_work_floor_hours"`
	MinActiveDomains     int                `json:"minActiveDomains" yaml:"min_active_domains"`
}

// DefaultPolicy returns the baseline policy used when no registry
// definition applies.
func DefaultPolicy() Policy {
	return Policy{
		DomainWeights: map[Domain]float64{
			Algebra:       1.0,
			Analysis:      1.2,
			Geometry:      0.8,
			Probabilities: 1.0,
			Programming:   0.6,
		},
		Confirmed:            ThresholdPair{Readiness: 75, Risk: 40},
		Conditional:          ThresholdPair{Readiness: 55, Risk: 60},
		TrustPenalties:       DefaultTrustPenalties(),
		WeeklyWorkFloorHours: 3,
		MinActiveDomains:     3,
	}
}

// DefaultTrustPenalties is the baseline deduction schedule.
func DefaultTrustPenalties() TrustPenalties {
	return TrustPenalties{
		MissingActiveDomain: 10,
		UnknownItem:         5,
		MiniTestIncomplete:  15,
		Inconsistency:       10,
	}
}

// Weight returns the configured weight for a domain. A domain absent
// from the map weighs 1.0, so a partial weight map still scores every
// domain; weights are normalized at aggregation time.
func (p Policy) Weight(d Domain) float64 {
	if w, ok := p.DomainWeights[d]; ok {
		return w
	}
	return 1.0
}
