package registry

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bilan/pkg/assess"
)

func TestList(t *testing.T) {
	want := []string{
		"general-secondary-mock-exam",
		"science-secondary-final-exam",
	}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	def, err := Load("general", "secondary", "mock-exam")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Track != "general" || def.Level != "secondary" || def.Stage != "mock-exam" {
		t.Errorf("triple = %s/%s/%s, want general/secondary/mock-exam", def.Track, def.Level, def.Stage)
	}
	if def.Version == "" {
		t.Error("template should carry a version")
	}
	if diff := cmp.Diff(assess.DefaultPolicy(), def.Policy); diff != "" {
		t.Errorf("baseline template policy drifted from the default (-want +got):\n%s", diff)
	}
}

func TestLoadStricterTemplate(t *testing.T) {
	def, err := Load("science", "secondary", "final-exam")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	base := assess.DefaultPolicy()
	if def.Policy.Confirmed.Readiness <= base.Confirmed.Readiness {
		t.Errorf("final-exam confirmed bar %d should exceed the baseline %d",
			def.Policy.Confirmed.Readiness, base.Confirmed.Readiness)
	}
	if def.Policy.MinActiveDomains <= base.MinActiveDomains {
		t.Errorf("final-exam MinActiveDomains %d should exceed the baseline %d",
			def.Policy.MinActiveDomains, base.MinActiveDomains)
	}
	if err := def.Policy.Validate(); err != nil {
		t.Errorf("embedded policy invalid: %v", err)
	}
}

func TestLoadUnknownTriple(t *testing.T) {
	_, err := Load("arts", "primary", "midterm")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error %q should list available templates", err)
	}
	if !strings.Contains(err.Error(), "general-secondary-mock-exam") {
		t.Errorf("error %q should name an existing template", err)
	}
}

func TestDefault(t *testing.T) {
	def := Default()
	if err := def.Policy.Validate(); err != nil {
		t.Errorf("default policy invalid: %v", err)
	}
	if diff := cmp.Diff(assess.DefaultPolicy(), def.Policy); diff != "" {
		t.Errorf("Default() policy mismatch (-want +got):\n%s", diff)
	}
}
