package scoring

import (
	"math"
	"testing"
)

func TestParseWeeklyHours(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"6h", 6, true},
		{"6 h", 6, true},
		{"4.5", 4.5, true},
		{"4,5h", 4.5, true},
		{"3:30", 3.5, true},
		{"45min", 0.75, true},
		{"45 min", 0.75, true},
		{"about 5 hours", 5, true},
		{"2hr", 2, true},
		{"10", 10, true},
		{"", 0, false},
		{"it depends", 0, false},
		{"a lot", 0, false},
		{"999h", 0, false}, // more hours than a week holds
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseWeeklyHours(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("parseWeeklyHours(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("parseWeeklyHours(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
