// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans. Use these functions
// in rendered reports and logs; keep raw codes for JSON fields, map
// keys, and equality comparisons.
package display

// --- Domains ---

var domainLabels = map[string]string{
	"algebra":       "Algebra",
	"analysis":      "Analysis",
	"geometry":      "Geometry",
	"probabilities": "Probability & Statistics",
	"programming":   "Programming",
}

// DomainLabel returns the human-readable name for a domain code.
// Unknown codes are returned as-is.
func DomainLabel(code string) string {
	if name, ok := domainLabels[code]; ok {
		return name
	}
	return code
}

// --- Recommendation tiers ---

var tierLabels = map[string]string{
	"confirmed":    "Confirmed",
	"conditional":  "Conditional go",
	"foundational": "Foundations first",
}

// TierLabel returns the human-readable recommendation tier name.
func TierLabel(code string) string {
	if name, ok := tierLabels[code]; ok {
		return name
	}
	return code
}

// --- Domain priorities ---

var priorityLabels = map[string]string{
	"critical": "Critical",
	"high":     "High",
	"medium":   "Medium",
	"low":      "Low",
}

// PriorityLabel returns the human-readable priority name.
func PriorityLabel(code string) string {
	if name, ok := priorityLabels[code]; ok {
		return name
	}
	return code
}

// --- Alert types ---

var alertTypeLabels = map[string]string{
	"danger":  "Danger",
	"warning": "Warning",
	"info":    "Info",
}

// AlertTypeLabel returns the human-readable alert severity name.
func AlertTypeLabel(code string) string {
	if name, ok := alertTypeLabels[code]; ok {
		return name
	}
	return code
}

// --- Trust levels ---

var trustLabels = map[string]string{
	"green":  "Reliable",
	"orange": "Partially reliable",
	"red":    "Low confidence",
}

// TrustLabel returns the human-readable trust level name.
func TrustLabel(code string) string {
	if name, ok := trustLabels[code]; ok {
		return name
	}
	return code
}

// --- Qualitative bands ---

// Band maps a 0-100 value to its five-level qualitative label. The
// guardian report shows only these labels, never the underlying value.
func Band(value int) string {
	switch {
	case value >= 80:
		return "very good"
	case value >= 65:
		return "good"
	case value >= 50:
		return "intermediate"
	case value >= 35:
		return "fragile"
	default:
		return "insufficient"
	}
}

// RiskBand maps a 0-100 risk value to a coarse qualitative label.
func RiskBand(value int) string {
	switch {
	case value >= 60:
		return "high"
	case value >= 35:
		return "moderate"
	default:
		return "low"
	}
}

// --- Concentration buckets ---

var concentrationLabels = map[string]string{
	"15min":  "15 minutes",
	"30min":  "30 minutes",
	"45min":  "45 minutes",
	"60min":  "1 hour",
	"90min+": "90 minutes or more",
}

// ConcentrationLabel returns the human-readable focus bucket name.
func ConcentrationLabel(code string) string {
	if name, ok := concentrationLabels[code]; ok {
		return name
	}
	return code
}
