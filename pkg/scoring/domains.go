package scoring

import (
	"math"

	"bilan/pkg/assess"
)

// scoreDomains computes one DomainScore per catalog domain, in the
// fixed catalog order. A domain absent from the snapshot scores as an
// empty domain.
func scoreDomains(s *assess.Snapshot) []DomainScore {
	domains := assess.AllDomains()
	out := make([]DomainScore, 0, len(domains))
	for _, d := range domains {
		out = append(out, scoreDomain(d, s.Items[d]))
	}
	return out
}

func scoreDomain(domain assess.Domain, items []assess.CompetencyItem) DomainScore {
	ds := DomainScore{Domain: domain, TotalCount: len(items)}

	var masterySum int
	for _, item := range items {
		switch item.Status {
		case assess.StatusEvaluated:
			ds.EvaluatedCount++
			if m, ok := item.MasteryOf(); ok {
				masterySum += m
				if m <= 1 {
					ds.Gaps = append(ds.Gaps, item.SkillLabel)
				}
			}
		case assess.StatusNotStudied:
			ds.NotStudiedCount++
		case assess.StatusUnknown:
			ds.UnknownCount++
		}
	}

	if ds.EvaluatedCount < minEvaluatedPerDomain {
		// Insufficient data sentinel: not a real zero grade. Critical
		// priority forces visibility regardless of the score buckets.
		ds.Score = 0
		ds.Priority = PriorityCritical
	} else {
		mean := float64(masterySum) / float64(ds.EvaluatedCount)
		ds.Score = int(math.Round(mean / 4 * 100))
		ds.Priority = priorityForScore(ds.Score)
	}

	ds.DominantErrors = dominantErrors(items, 2)
	return ds
}

func priorityForScore(score int) Priority {
	switch {
	case score < 35:
		return PriorityCritical
	case score < 50:
		return PriorityHigh
	case score < 70:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// dominantErrors returns the max most frequent error tags across all
// items in the domain. Ties break by first-seen order.
func dominantErrors(items []assess.CompetencyItem, max int) []string {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		for _, tag := range item.ErrorTypes {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	// Stable selection sort over first-seen order keeps ties deterministic.
	top := make([]string, 0, max)
	picked := make(map[string]bool)
	for len(top) < max && len(top) < len(order) {
		best := ""
		for _, tag := range order {
			if picked[tag] {
				continue
			}
			if best == "" || counts[tag] > counts[best] {
				best = tag
			}
		}
		picked[best] = true
		top = append(top, best)
	}
	return top
}
