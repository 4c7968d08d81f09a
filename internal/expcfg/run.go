package expcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region run-config

// RunConfig is the run-level YAML configuration for cmd/analyse. Experiment
// directories keep their own JSON configs; this file only carries the knobs
// that used to be hardcoded script toggles.
type RunConfig struct {
	// InferenceAddr is the gRPC address of the Python inference service.
	InferenceAddr string `yaml:"inference_addr"`
	ModelName     string `yaml:"model_name"`
	BigModel      bool   `yaml:"big_model"`
	// DefaultPrompt, when non-empty, overrides each experiment's prompts.json.
	DefaultPrompt string `yaml:"default_prompt"`
	// WeightsDir is the root for SAE, adapter, and rotation weight files.
	WeightsDir string `yaml:"weights_dir"`
	ResultsDB  string `yaml:"results_db"`
	// Experiments lists the steering config directories to sweep.
	Experiments []string    `yaml:"experiments"`
	Sweep       SweepConfig `yaml:"sweep"`
	// Methods restricts which derivation methods run; empty means the
	// standard four (ActSteer, SAE, OptimisedSteer, PinverseSteer).
	Methods []string `yaml:"methods"`
}

// SweepConfig holds the scale sweep parameters.
type SweepConfig struct {
	ScaleStart   int `yaml:"scale_start"`
	ScaleStop    int `yaml:"scale_stop"`
	ScaleStep    int `yaml:"scale_step"`
	Samples      int `yaml:"samples"`
	MaxNewTokens int `yaml:"max_new_tokens"`
}

// #endregion run-config

// #region run-defaults

// DefaultRunConfig returns the run configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		InferenceAddr: "localhost:50051",
		ModelName:     "gemma-2-2b",
		DefaultPrompt: "I think",
		WeightsDir:    ".",
		ResultsDB:     "steering_results.db",
		Sweep: SweepConfig{
			ScaleStart:   0,
			ScaleStop:    320,
			ScaleStep:    20,
			Samples:      256,
			MaxNewTokens: 32,
		},
	}
}

// #endregion run-defaults

// #region run-loader

// LoadRunConfig reads a YAML run config, applying defaults for unset fields.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sweep parameters and required fields.
func (c RunConfig) Validate() error {
	if c.InferenceAddr == "" {
		return fmt.Errorf("inference_addr is required")
	}
	if c.ModelName == "" {
		return fmt.Errorf("model_name is required")
	}
	if c.Sweep.ScaleStep <= 0 {
		return fmt.Errorf("sweep.scale_step must be positive, got %d", c.Sweep.ScaleStep)
	}
	if c.Sweep.ScaleStop < c.Sweep.ScaleStart {
		return fmt.Errorf("sweep.scale_stop %d before scale_start %d", c.Sweep.ScaleStop, c.Sweep.ScaleStart)
	}
	if c.Sweep.Samples <= 0 {
		return fmt.Errorf("sweep.samples must be positive, got %d", c.Sweep.Samples)
	}
	return nil
}

// #endregion run-loader
