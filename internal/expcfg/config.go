// Package expcfg loads the per-experiment configuration files that define a
// steering target: which SAE features (or example texts) describe the
// behaviour, where to inject, and how to judge the output.
package expcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// #region feature-pair

// FeaturePair is one (feature id, scale) entry. On disk it is a two-element
// JSON array, matching the `"features": [[4527, 8.0], ...]` config format.
type FeaturePair struct {
	ID    int
	Scale float64
}

// UnmarshalJSON decodes the [id, scale] array form.
func (p *FeaturePair) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("feature pair must have 2 elements, got %d", len(raw))
	}
	p.ID = int(raw[0])
	p.Scale = raw[1]
	return nil
}

// MarshalJSON encodes back to the [id, scale] array form.
func (p FeaturePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.ID), p.Scale})
}

// #endregion feature-pair

// #region steer-config

// SteerConfig describes how to derive a steering vector from an SAE.
// Shared by feature_steer.json and optimised_steer.json.
type SteerConfig struct {
	// SAELoadMethod selects the SAE weight format: "saelens" (default) or
	// "gemmascope".
	SAELoadMethod string `json:"sae_load_method"`
	// SAE is the release directory for the saelens format.
	SAE string `json:"sae"`
	// RepoID and Filename locate the raw parameter archive for the
	// gemmascope format.
	RepoID   string `json:"repo_id"`
	Filename string `json:"filename"`

	Layer     int           `json:"layer"`
	HookPoint string        `json:"hp"`
	Features  []FeaturePair `json:"features"`
}

// #endregion steer-config

// #region act-steer-config

// ActSteerConfig holds the example text sets for activation-difference
// steering.
type ActSteerConfig struct {
	PosExamples []string `json:"pos_examples"`
	NegExamples []string `json:"neg_examples"`
	ValExamples []string `json:"val_examples"`
	Layer       int      `json:"layer"`
}

// #endregion act-steer-config

// #region criteria

// Criterion is one rubric entry from criteria.json: a display name plus the
// two judge prompts (task score and coherence), each rating on a 1-10 scale.
type Criterion struct {
	Name      string `json:"name"`
	Score     string `json:"score"`
	Coherence string `json:"coherence"`
}

// #endregion criteria

// #region loaders

// LoadFeatureSteer reads feature_steer.json from an experiment directory.
func LoadFeatureSteer(dir string) (SteerConfig, error) {
	return loadSteerConfig(filepath.Join(dir, "feature_steer.json"))
}

// LoadOptimisedSteer reads optimised_steer.json from an experiment directory.
func LoadOptimisedSteer(dir string) (SteerConfig, error) {
	return loadSteerConfig(filepath.Join(dir, "optimised_steer.json"))
}

func loadSteerConfig(path string) (SteerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SteerConfig{}, fmt.Errorf("read steer config: %w", err)
	}
	var cfg SteerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SteerConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.SAELoadMethod == "" {
		cfg.SAELoadMethod = "saelens"
	}
	return cfg, nil
}

// LoadActSteer reads act_steer.json from an experiment directory.
func LoadActSteer(dir string) (ActSteerConfig, error) {
	path := filepath.Join(dir, "act_steer.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return ActSteerConfig{}, fmt.Errorf("read act steer config: %w", err)
	}
	var cfg ActSteerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ActSteerConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadCriteria reads criteria.json from an experiment directory. The file is
// a list; the sweep uses the first entry.
func LoadCriteria(dir string) ([]Criterion, error) {
	path := filepath.Join(dir, "criteria.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria: %w", err)
	}
	var crit []Criterion
	if err := json.Unmarshal(data, &crit); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(crit) == 0 {
		return nil, fmt.Errorf("%s: empty criteria list", path)
	}
	return crit, nil
}

// LoadPrompts reads prompts.json (a list of seed prompts) from an experiment
// directory.
func LoadPrompts(dir string) ([]string, error) {
	path := filepath.Join(dir, "prompts.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts: %w", err)
	}
	var prompts []string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%s: empty prompt list", path)
	}
	return prompts, nil
}

// #endregion loaders
