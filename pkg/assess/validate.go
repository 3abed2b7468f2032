package assess

import (
	"errors"
	"fmt"
)

// ValidationError reports one malformed or out-of-range input field.
// Validation runs before scoring; every downstream index assumes the
// ranges checked here.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the snapshot against the input contract. All field
// errors are collected and joined so the caller sees the full list.
func (s *Snapshot) Validate() error {
	var errs []error

	for _, domain := range AllDomains() {
		for i, item := range s.Items[domain] {
			errs = append(errs, validateItem(domain, i, item)...)
		}
	}
	for domain := range s.Items {
		if _, err := ParseDomain(string(domain)); err != nil {
			errs = append(errs, invalid("items", "unknown domain key %q", domain))
		}
	}

	errs = append(errs, validateExamPrep(s.ExamPrep)...)
	errs = append(errs, validateMethodology(s.Methodology)...)

	return errors.Join(errs...)
}

func validateItem(domain Domain, idx int, item CompetencyItem) []error {
	field := func(name string) string {
		return fmt.Sprintf("items[%s][%d].%s", domain, idx, name)
	}
	var errs []error

	if item.Domain != domain {
		errs = append(errs, invalid(field("domain"), "domain %q does not match list key %q", item.Domain, domain))
	}
	switch item.Status {
	case StatusEvaluated:
		if item.Mastery == nil {
			errs = append(errs, invalid(field("mastery"), "required for evaluated items"))
		} else if *item.Mastery < 0 || *item.Mastery > 4 {
			errs = append(errs, invalid(field("mastery"), "%d out of range 0-4", *item.Mastery))
		}
		if item.Friction != nil && (*item.Friction < 0 || *item.Friction > 3) {
			errs = append(errs, invalid(field("friction"), "%d out of range 0-3", *item.Friction))
		}
	case StatusNotStudied, StatusUnknown:
		if item.Mastery != nil {
			errs = append(errs, invalid(field("mastery"), "present on %s item", item.Status))
		}
		if item.Friction != nil {
			errs = append(errs, invalid(field("friction"), "present on %s item", item.Status))
		}
	default:
		errs = append(errs, invalid(field("status"), "unknown status %q", item.Status))
	}
	return errs
}

func validateExamPrep(p ExamPrepSnapshot) []error {
	var errs []error
	if p.MiniTestScore < 0 || p.MiniTestScore > 6 {
		errs = append(errs, invalid("examPrep.miniTestScore", "%d out of range 0-6", p.MiniTestScore))
	}
	ratings := []struct {
		name  string
		value int
	}{
		{"examPrep.redaction", p.Redaction},
		{"examPrep.justifications", p.Justifications},
		{"examPrep.stress", p.Stress},
	}
	for _, r := range ratings {
		if r.value < 0 || r.value > 4 {
			errs = append(errs, invalid(r.name, "%d out of range 0-4", r.value))
		}
	}
	switch p.Feeling {
	case FeelingConfident, FeelingNeutral, FeelingWorried, FeelingPanic:
	default:
		errs = append(errs, invalid("examPrep.feeling", "unknown feeling %q", p.Feeling))
	}
	return errs
}

func validateMethodology(m MethodologySnapshot) []error {
	switch m.MaxConcentration {
	case Concentration15Min, Concentration30Min, Concentration45Min,
		Concentration60Min, Concentration90Plus:
		return nil
	default:
		return []error{invalid("methodology.maxConcentration", "unknown bucket %q", m.MaxConcentration)}
	}
}

// Validate checks the policy configuration. The confirmed gate must be
// at least as strict as the conditional gate, otherwise tiering loses
// monotonicity.
func (p Policy) Validate() error {
	var errs []error

	positive := 0
	for _, domain := range AllDomains() {
		w, ok := p.DomainWeights[domain]
		if !ok {
			continue
		}
		if w < 0 {
			errs = append(errs, invalid("policy.domainWeights", "negative weight %.2f for %q", w, domain))
		}
		if w > 0 {
			positive++
		}
	}
	for domain := range p.DomainWeights {
		if _, err := ParseDomain(string(domain)); err != nil {
			errs = append(errs, invalid("policy.domainWeights", "unknown domain %q", domain))
		}
	}
	if len(p.DomainWeights) > 0 && positive == 0 {
		errs = append(errs, invalid("policy.domainWeights", "no positive weight"))
	}

	gates := []struct {
		name string
		tp   ThresholdPair
	}{
		{"policy.confirmed", p.Confirmed},
		{"policy.conditional", p.Conditional},
	}
	for _, g := range gates {
		if g.tp.Readiness < 0 || g.tp.Readiness > 100 {
			errs = append(errs, invalid(g.name+".readiness", "%d out of range 0-100", g.tp.Readiness))
		}
		if g.tp.Risk < 0 || g.tp.Risk > 100 {
			errs = append(errs, invalid(g.name+".risk", "%d out of range 0-100", g.tp.Risk))
		}
	}
	if p.Confirmed.Readiness < p.Conditional.Readiness {
		errs = append(errs, invalid("policy.confirmed.readiness", "below conditional readiness threshold"))
	}
	if p.Confirmed.Risk > p.Conditional.Risk {
		errs = append(errs, invalid("policy.confirmed.risk", "above conditional risk ceiling"))
	}
	if p.MinActiveDomains < 0 || p.MinActiveDomains > len(AllDomains()) {
		errs = append(errs, invalid("policy.minActiveDomains", "%d out of range 0-%d", p.MinActiveDomains, len(AllDomains())))
	}

	return errors.Join(errs...)
}
