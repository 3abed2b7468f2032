package report

import (
	"sort"

	"bilan/pkg/scoring"
)

// strongDomains returns up to max domains with priority medium or low,
// best score first. Ties keep catalog order (stable sort).
func strongDomains(res *scoring.Result, max int) []scoring.DomainScore {
	var out []scoring.DomainScore
	for _, ds := range res.DomainScores {
		if ds.Priority == scoring.PriorityMedium || ds.Priority == scoring.PriorityLow {
			out = append(out, ds)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// weakDomains returns domains with priority critical or high, in
// catalog order.
func weakDomains(res *scoring.Result) []scoring.DomainScore {
	var out []scoring.DomainScore
	for _, ds := range res.DomainScores {
		if ds.Priority == scoring.PriorityCritical || ds.Priority == scoring.PriorityHigh {
			out = append(out, ds)
		}
	}
	return out
}

// alertsOfType filters alerts by severity, preserving order.
func alertsOfType(res *scoring.Result, types ...scoring.AlertType) []scoring.Alert {
	var out []scoring.Alert
	for _, a := range res.Alerts {
		for _, t := range types {
			if a.Type == t {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
