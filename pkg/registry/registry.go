// Package registry loads assessment templates from embedded YAML.
//
// A template binds a (track, level, stage) triple to the scoring policy
// the engine should apply for it. Templates ship with the binary so
// callers never deal with file paths.
package registry

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bilan/pkg/assess"
)

//go:embed defs/*.yaml
var defsFS embed.FS

// Definition is one assessment template: its identity triple plus the
// policy handed to the scoring engine.
type Definition struct {
	Track   string        `yaml:"track"`
	Level   string        `yaml:"level"`
	Stage   string        `yaml:"stage"`
	Version string        `yaml:"version"`
	Policy  assess.Policy `yaml:"policy"`
}

// Key returns the canonical template name for a triple. It is also the
// file stem under defs/.
func Key(track, level, stage string) string {
	return track + "-" + level + "-" + stage
}

// Load reads the template for the given triple from the embedded
// definitions and validates its policy.
func Load(track, level, stage string) (*Definition, error) {
	name := Key(track, level, stage)
	data, err := defsFS.ReadFile("defs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("template %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}
	if err := def.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return &def, nil
}

// List returns the names of all embedded templates, sorted.
func List() []string {
	entries, _ := defsFS.ReadDir("defs")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Default returns a synthetic template carrying the baseline policy,
// for callers with no registered triple.
func Default() *Definition {
	return &Definition{
		Track:   "general",
		Level:   "secondary",
		Stage:   "baseline",
		Version: "builtin",
		Policy:  assess.DefaultPolicy(),
	}
}
