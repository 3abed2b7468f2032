package display

import "testing"

func TestDomainLabel(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"algebra", "Algebra"},
		{"analysis", "Analysis"},
		{"geometry", "Geometry"},
		{"probabilities", "Probability & Statistics"},
		{"programming", "Programming"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DomainLabel(tc.code); got != tc.want {
			t.Errorf("DomainLabel(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestTierLabel(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"confirmed", "Confirmed"},
		{"conditional", "Conditional go"},
		{"foundational", "Foundations first"},
		{"other", "other"},
	}
	for _, tc := range cases {
		if got := TierLabel(tc.code); got != tc.want {
			t.Errorf("TierLabel(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestTrustLabel(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"green", "Reliable"},
		{"orange", "Partially reliable"},
		{"red", "Low confidence"},
	}
	for _, tc := range cases {
		if got := TrustLabel(tc.code); got != tc.want {
			t.Errorf("TrustLabel(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestBand(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{100, "very good"},
		{80, "very good"},
		{79, "good"},
		{65, "good"},
		{64, "intermediate"},
		{50, "intermediate"},
		{49, "fragile"},
		{35, "fragile"},
		{34, "insufficient"},
		{0, "insufficient"},
	}
	for _, tc := range cases {
		if got := Band(tc.value); got != tc.want {
			t.Errorf("Band(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRiskBand(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{100, "high"},
		{60, "high"},
		{59, "moderate"},
		{35, "moderate"},
		{34, "low"},
		{0, "low"},
	}
	for _, tc := range cases {
		if got := RiskBand(tc.value); got != tc.want {
			t.Errorf("RiskBand(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
