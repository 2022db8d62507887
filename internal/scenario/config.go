package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk configuration shape (YAML). Fields not present
// in the file keep their defaults.
type scenarioFile struct {
	Scenario Overrides `yaml:"scenario"`
}

// LoadFile reads a YAML scenario file, overlays it onto the defaults and
// validates the result.
func LoadFile(path string) (Parameters, error) {
	p, err := LoadFileUnchecked(path)
	if err != nil {
		return Parameters{}, err
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, fmt.Errorf("scenario config invalid: %w", err)
	}
	return p, nil
}

// LoadFileUnchecked loads and merges a scenario file without validating it.
// Useful for printing partial configs.
func LoadFileUnchecked(path string) (Parameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, err
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Parameters{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return Apply(Defaults(), f.Scenario), nil
}
