package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bilan/pkg/assess"
)

func TestScoreDomain(t *testing.T) {
	tests := []struct {
		name         string
		items        []assess.CompetencyItem
		wantScore    int
		wantPriority Priority
		wantSentinel bool
	}{
		{
			"empty domain",
			nil,
			0, PriorityCritical, true,
		},
		{
			"single evaluated item stays sentinel",
			[]assess.CompetencyItem{
				evaluatedItem("g-1", "Vectors", assess.Geometry, 4, 0),
			},
			0, PriorityCritical, true,
		},
		{
			"two strong items",
			[]assess.CompetencyItem{
				evaluatedItem("g-1", "Vectors", assess.Geometry, 4, 0),
				evaluatedItem("g-2", "Transformations", assess.Geometry, 3, 0),
			},
			88, PriorityLow, false, // mean 3.5 of 4
		},
		{
			"weak domain is critical",
			[]assess.CompetencyItem{
				evaluatedItem("g-1", "Vectors", assess.Geometry, 1, 2),
				evaluatedItem("g-2", "Transformations", assess.Geometry, 1, 1),
			},
			25, PriorityCritical, false,
		},
		{
			"mid domain is high priority",
			[]assess.CompetencyItem{
				evaluatedItem("g-1", "Vectors", assess.Geometry, 2, 0),
				evaluatedItem("g-2", "Transformations", assess.Geometry, 1, 0),
			},
			38, PriorityHigh, false, // mean 1.5
		},
		{
			"non-evaluated items are counted, not scored",
			[]assess.CompetencyItem{
				evaluatedItem("g-1", "Vectors", assess.Geometry, 4, 0),
				evaluatedItem("g-2", "Transformations", assess.Geometry, 4, 0),
				statusItem("g-3", assess.Geometry, assess.StatusNotStudied),
				statusItem("g-4", assess.Geometry, assess.StatusUnknown),
			},
			100, PriorityLow, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := scoreDomain(assess.Geometry, tt.items)
			if ds.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", ds.Score, tt.wantScore)
			}
			if ds.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", ds.Priority, tt.wantPriority)
			}
			if ds.InsufficientData() != tt.wantSentinel {
				t.Errorf("InsufficientData() = %v, want %v", ds.InsufficientData(), tt.wantSentinel)
			}
		})
	}
}

func TestScoreDomainCounters(t *testing.T) {
	ds := scoreDomain(assess.Analysis, []assess.CompetencyItem{
		evaluatedItem("an-1", "Limits", assess.Analysis, 1, 0),
		evaluatedItem("an-2", "Derivatives", assess.Analysis, 0, 2),
		evaluatedItem("an-3", "Integrals", assess.Analysis, 3, 0),
		statusItem("an-4", assess.Analysis, assess.StatusNotStudied),
		statusItem("an-5", assess.Analysis, assess.StatusUnknown),
	})

	if ds.TotalCount != 5 || ds.EvaluatedCount != 3 || ds.NotStudiedCount != 1 || ds.UnknownCount != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 5/3/1/1",
			ds.TotalCount, ds.EvaluatedCount, ds.NotStudiedCount, ds.UnknownCount)
	}
	wantGaps := []string{"Limits", "Derivatives"}
	if diff := cmp.Diff(wantGaps, ds.Gaps); diff != "" {
		t.Errorf("gaps mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreDomainsCatalogOrder(t *testing.T) {
	scores := scoreDomains(&assess.Snapshot{Items: map[assess.Domain][]assess.CompetencyItem{}})
	want := assess.AllDomains()
	if len(scores) != len(want) {
		t.Fatalf("got %d domain scores, want %d", len(scores), len(want))
	}
	for i, ds := range scores {
		if ds.Domain != want[i] {
			t.Errorf("scores[%d].Domain = %q, want %q", i, ds.Domain, want[i])
		}
	}
}

func TestDominantErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []assess.CompetencyItem
		want  []string
	}{
		{"no tags", []assess.CompetencyItem{evaluatedItem("a", "A", assess.Algebra, 2, 0)}, nil},
		{
			"frequency wins",
			[]assess.CompetencyItem{
				evaluatedItem("a", "A", assess.Algebra, 2, 0, "sign", "calculation"),
				evaluatedItem("b", "B", assess.Algebra, 2, 0, "calculation"),
				evaluatedItem("c", "C", assess.Algebra, 2, 0, "calculation", "method"),
			},
			[]string{"calculation", "sign"},
		},
		{
			"ties break by first seen",
			[]assess.CompetencyItem{
				evaluatedItem("a", "A", assess.Algebra, 2, 0, "sign", "method"),
				evaluatedItem("b", "B", assess.Algebra, 2, 0, "calculation"),
			},
			[]string{"sign", "method"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dominantErrors(tt.items, 2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("dominantErrors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
