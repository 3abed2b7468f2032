package scoring

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bilan/internal/logging"
	"bilan/pkg/assess"
)

// Evaluate scores one validated assessment snapshot under the given
// policy and returns the immutable result record. It is a pure
// function: identical input and policy yield a byte-identical result.
func Evaluate(s *assess.Snapshot, pol assess.Policy) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if err := pol.Validate(); err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}

	domainScores := scoreDomains(s)
	idx := computeIndices(domainScores, s.ExamPrep, pol)
	dec := decide(idx, pol)

	alerts := detectAlerts(s, domainScores, pol)
	inconsistencies := detectInconsistencies(s, domainScores)

	dq := dataQuality(domainScores)
	trust, level := computeTrust(dq, s.ExamPrep, len(inconsistencies), pol)
	top, wins, risky := rankItems(s, domainScores, pol)

	res := &Result{
		MasteryIndex:       idx.Mastery,
		CoverageIndex:      idx.Coverage,
		ExamReadinessIndex: idx.ExamReadiness,
		ReadinessScore:     idx.Readiness,
		RiskIndex:          idx.Risk,

		Recommendation:        dec.Recommendation,
		RecommendationMessage: dec.Message,
		Justification:         dec.Justification,
		UpgradeConditions:     dec.UpgradeConditions,

		DomainScores:    domainScores,
		Alerts:          alerts,
		Inconsistencies: inconsistencies,

		DataQuality: dq,
		TrustScore:  trust,
		TrustLevel:  level,

		TopPriorities: top,
		QuickWins:     wins,
		HighRisk:      risky,
	}

	logging.New("scoring").Debug("evaluated snapshot",
		"readiness", res.ReadinessScore,
		"risk", res.RiskIndex,
		"recommendation", string(res.Recommendation),
		"alerts", len(res.Alerts),
		"trust", res.TrustScore)

	return res, nil
}

func dataQuality(domainScores []DomainScore) DataQuality {
	var dq DataQuality
	for _, ds := range domainScores {
		dq.TotalItems += ds.TotalCount
		dq.EvaluatedItems += ds.EvaluatedCount
		dq.NotStudiedItems += ds.NotStudiedCount
		dq.UnknownItems += ds.UnknownCount
		if !ds.InsufficientData() {
			dq.ActiveDomains++
		}
	}
	return dq
}

// EvaluateBatch scores independent snapshots concurrently under one
// policy. The engine itself stays synchronous; this is the caller-side
// fan-out the resource model allows. workers <= 0 means unbounded.
// The first error cancels the remaining work.
func EvaluateBatch(ctx context.Context, snapshots []*assess.Snapshot, pol assess.Policy, workers int) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]*Result, len(snapshots))
	for i, snap := range snapshots {
		i, snap := i, snap
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(snap, pol)
			if err != nil {
				return fmt.Errorf("snapshot %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
