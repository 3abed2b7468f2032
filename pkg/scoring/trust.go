package scoring

import "bilan/pkg/assess"

// computeTrust derives the data-quality trust score and level. The
// score starts at 100 and takes fixed policy-configured deductions;
// it floors at 0.
func computeTrust(dq DataQuality, prep assess.ExamPrepSnapshot, inconsistencies int, pol assess.Policy) (int, TrustLevel) {
	score := 100
	pen := pol.TrustPenalties

	if missing := pol.MinActiveDomains - dq.ActiveDomains; missing > 0 {
		score -= missing * pen.MissingActiveDomain
	}
	score -= dq.UnknownItems * pen.UnknownItem
	if !prep.CompletedInTime {
		score -= pen.MiniTestIncomplete
	}
	score -= inconsistencies * pen.Inconsistency

	if score < 0 {
		score = 0
	}
	return score, trustLevelFor(score)
}

func trustLevelFor(score int) TrustLevel {
	switch {
	case score >= 75:
		return TrustGreen
	case score >= 50:
		return TrustOrange
	default:
		return TrustRed
	}
}
