package scoring

import (
	"fmt"
	"sort"

	"bilan/internal/display"
	"bilan/pkg/assess"
)

// maxRankedItems caps every priority list.
const maxRankedItems = 5

// rankItems derives the three priority lists from evaluated items only.
// Source traversal follows the fixed domain catalog order, and all
// sorts are stable, so identical input yields identical lists.
func rankItems(s *assess.Snapshot, domainScores []DomainScore, pol assess.Policy) (top, wins, risky []RankedItem) {
	byDomain := make(map[assess.Domain]DomainScore, len(domainScores))
	for _, ds := range domainScores {
		byDomain[ds.Domain] = ds
	}

	var evaluated []RankedItem
	for _, domain := range assess.AllDomains() {
		for _, item := range s.Items[domain] {
			m, ok := item.MasteryOf()
			if !ok {
				continue
			}
			evaluated = append(evaluated, RankedItem{
				SkillID:    item.SkillID,
				SkillLabel: item.SkillLabel,
				Domain:     domain,
				Mastery:    m,
				Friction:   item.FrictionOf(),
			})
		}
	}

	top = topPriorities(evaluated, byDomain, pol)
	wins = quickWins(evaluated)
	risky = highRiskItems(evaluated, byDomain)
	return top, wins, risky
}

// topPriorities lists the weakest items: mastery <= 1, ascending
// mastery then descending domain weight.
func topPriorities(evaluated []RankedItem, byDomain map[assess.Domain]DomainScore, pol assess.Policy) []RankedItem {
	var out []RankedItem
	for _, it := range evaluated {
		if it.Mastery <= 1 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Mastery != out[j].Mastery {
			return out[i].Mastery < out[j].Mastery
		}
		return pol.Weight(out[i].Domain) > pol.Weight(out[j].Domain)
	})
	out = capList(out)

	for i := range out {
		out[i].Reason = priorityReason(out[i], byDomain[out[i].Domain])
	}
	return out
}

func priorityReason(it RankedItem, ds DomainScore) string {
	reason := fmt.Sprintf("weakest link in %s", display.DomainLabel(string(it.Domain)))
	if len(ds.DominantErrors) > 0 {
		reason += fmt.Sprintf(", recurring error: %s", ds.DominantErrors[0])
	}
	return reason
}

// quickWins lists borderline skills with low resistance: mastery
// exactly 2 and friction at most 1.
func quickWins(evaluated []RankedItem) []RankedItem {
	var out []RankedItem
	for _, it := range evaluated {
		if it.Mastery == 2 && it.Friction <= 1 {
			it.Reason = fmt.Sprintf("one step from solid in %s, low resistance", display.DomainLabel(string(it.Domain)))
			out = append(out, it)
		}
	}
	return capList(out)
}

// highRiskItems lists blocked items (friction >= 3) and items sitting
// in a critical domain that actually has data, sorted by friction
// descending.
func highRiskItems(evaluated []RankedItem, byDomain map[assess.Domain]DomainScore) []RankedItem {
	var out []RankedItem
	for _, it := range evaluated {
		ds := byDomain[it.Domain]
		inCriticalDomain := ds.Priority == PriorityCritical && ds.EvaluatedCount >= minEvaluatedPerDomain
		if it.Friction < highFrictionFloor && !inCriticalDomain {
			continue
		}
		if it.Friction >= highFrictionFloor {
			it.Reason = fmt.Sprintf("blocked (friction %d/3)", it.Friction)
		} else {
			it.Reason = fmt.Sprintf("sits in critical domain %s", display.DomainLabel(string(it.Domain)))
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Friction > out[j].Friction
	})
	return capList(out)
}

func capList(items []RankedItem) []RankedItem {
	if len(items) > maxRankedItems {
		return items[:maxRankedItems]
	}
	return items
}
