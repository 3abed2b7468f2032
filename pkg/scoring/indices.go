package scoring

import (
	"math"

	"bilan/pkg/assess"
)

// Internal blend weights. These are aggregator invariants, not caller
// configuration; each group sums to 1.0. Only domain weights come from
// the policy.
const (
	wReadinessMiniTest = 0.40
	wReadinessTiming   = 0.20
	wReadinessWriting  = 0.25
	wReadinessStress   = 0.15

	wCompositeMastery   = 0.50
	wCompositeCoverage  = 0.15
	wCompositeReadiness = 0.35
)

// indexSet bundles the five composite indices.
type indexSet struct {
	Mastery       int
	Coverage      int
	ExamReadiness int
	Readiness     int
	Risk          int
}

// computeIndices aggregates domain scores and the exam-prep snapshot
// into the composite indices.
func computeIndices(domainScores []DomainScore, prep assess.ExamPrepSnapshot, pol assess.Policy) indexSet {
	idx := indexSet{
		Mastery:       masteryIndex(domainScores, pol),
		Coverage:      coverageIndex(domainScores),
		ExamReadiness: examReadinessIndex(prep),
	}
	readiness := wCompositeMastery*float64(idx.Mastery) +
		wCompositeCoverage*float64(idx.Coverage) +
		wCompositeReadiness*float64(idx.ExamReadiness)
	idx.Readiness = roundClamped(readiness)
	idx.Risk = 100 - idx.ExamReadiness
	return idx
}

// masteryIndex is the weighted mean of domain scores, restricted to
// domains with enough evaluated items. Sentinel domains are excluded,
// not zero-filled, so one unassessed domain cannot crush the composite.
func masteryIndex(domainScores []DomainScore, pol assess.Policy) int {
	var weighted, weightSum float64
	for _, ds := range domainScores {
		if ds.InsufficientData() {
			continue
		}
		w := pol.Weight(ds.Domain)
		weighted += w * float64(ds.Score)
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return roundClamped(weighted / weightSum)
}

// coverageIndex is the share of the competency catalog actually
// evaluated. Domains with zero items contribute to neither side.
func coverageIndex(domainScores []DomainScore) int {
	var evaluated, total int
	for _, ds := range domainScores {
		evaluated += ds.EvaluatedCount
		total += ds.TotalCount
	}
	if total == 0 {
		return 0
	}
	return roundClamped(float64(evaluated) / float64(total) * 100)
}

// examReadinessIndex blends mini-test performance, timing, self-rated
// writing quality, and inverted stress. Higher stress lowers readiness.
func examReadinessIndex(prep assess.ExamPrepSnapshot) int {
	miniTest := float64(prep.MiniTestScore) / 6 * 100
	timing := 40.0
	if prep.CompletedInTime {
		timing = 100
	}
	writing := (float64(prep.Redaction) + float64(prep.Justifications)) / 2 / 4 * 100
	calm := float64(4-prep.Stress) / 4 * 100

	v := wReadinessMiniTest*miniTest +
		wReadinessTiming*timing +
		wReadinessWriting*writing +
		wReadinessStress*calm
	return roundClamped(v)
}

// roundClamped defensively clamps to [0,100] before rounding.
func roundClamped(v float64) int {
	return int(math.Round(math.Min(100, math.Max(0, v))))
}
