// Package scoring implements the multi-factor match scorer.
//
// Each factor is a pure function of (profile, entry) producing a score in
// [0,1]; the weighted combination is clamped to [0,1] to absorb floating
// point drift. All six sub-scores travel with their weights in the returned
// breakdown so explanations and audits never re-derive them.
package scoring

import (
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/types"
	"gopkg.in/yaml.v3"
)

// weightsFile is the on-disk shape of the match weights configuration.
type weightsFile struct {
	Weights types.Weights `yaml:"weights"`
}

// LoadWeights reads factor weights from a YAML file and validates them.
func LoadWeights(path string) (types.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Weights{}, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}

	var file weightsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.Weights{}, fmt.Errorf("failed to parse weights file %s: %w", path, err)
	}

	if err := file.Weights.Validate(); err != nil {
		return types.Weights{}, fmt.Errorf("invalid weights in %s: %w", path, err)
	}

	return file.Weights, nil
}

// clamp limits a score to [0,1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
