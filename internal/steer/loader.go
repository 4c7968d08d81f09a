// Package steer derives unit-norm steering vectors from experiment
// configuration directories. Every derivation method goes through one
// dispatcher so the methods stay comparable: same inputs, same output shape,
// different linear algebra in the middle.
package steer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ArthurConmy/SAE-TS/internal/adapter"
	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/sae"
	"github.com/ArthurConmy/SAE-TS/internal/tensor"
)

// #region activation-source

// ActivationSource reads mean residual stream activations from the model.
// The inference client satisfies this; tests inject fakes.
type ActivationSource interface {
	MeanActivations(ctx context.Context, texts []string, layer int) ([]float32, error)
}

// #endregion activation-source

// #region loader

// Loader derives steering vectors for every supported method.
type Loader struct {
	acts       ActivationSource
	weightsDir string
	bigModel   bool
}

// NewLoader creates a loader. weightsDir is the root for SAE, adapter, and
// rotation weight files; bigModel selects the 9b adapter filenames.
func NewLoader(acts ActivationSource, weightsDir string, bigModel bool) *Loader {
	return &Loader{acts: acts, weightsDir: weightsDir, bigModel: bigModel}
}

// Load derives the steering vector for one experiment directory and method.
// Unknown methods fail with a named error.
func (l *Loader) Load(ctx context.Context, dir string, method Method) (Derived, error) {
	switch method {
	case ActSteer:
		return l.loadActSteer(ctx, dir)
	case SAEFeature:
		return l.loadSAESteer(dir)
	case Optimised:
		return l.loadAdapterSteer(dir, false)
	case Pinverse:
		return l.loadAdapterSteer(dir, true)
	case Rotation:
		return l.loadRotationSteer(dir)
	default:
		return Derived{}, fmt.Errorf("unknown steering method: %q", method)
	}
}

// #endregion loader

// #region act-steer

// loadActSteer derives the activation-difference vector: mean activation of
// the positive examples minus mean activation of the negative examples at
// the configured layer, unit-normalised.
func (l *Loader) loadActSteer(ctx context.Context, dir string) (Derived, error) {
	cfg, err := expcfg.LoadActSteer(dir)
	if err != nil {
		return Derived{}, err
	}
	if len(cfg.PosExamples) == 0 || len(cfg.NegExamples) == 0 {
		return Derived{}, fmt.Errorf("act steer config in %s needs pos and neg examples", dir)
	}

	pos, err := l.acts.MeanActivations(ctx, cfg.PosExamples, cfg.Layer)
	if err != nil {
		return Derived{}, fmt.Errorf("pos activations: %w", err)
	}
	neg, err := l.acts.MeanActivations(ctx, cfg.NegExamples, cfg.Layer)
	if err != nil {
		return Derived{}, fmt.Errorf("neg activations: %w", err)
	}
	if len(pos) != len(neg) {
		return Derived{}, fmt.Errorf("activation dims differ: pos %d, neg %d", len(pos), len(neg))
	}

	diff := make(Vector, len(pos))
	for i := range pos {
		diff[i] = pos[i] - neg[i]
	}
	if diff.Norm() == 0 {
		return Derived{}, fmt.Errorf("activation difference has zero norm")
	}

	return Derived{
		Vector: diff.Normalised(),
		Hook:   ResidHook(cfg.Layer),
		Layer:  cfg.Layer,
	}, nil
}

// #endregion act-steer

// #region sae-steer

// loadSAESteer derives the SAE-feature vector from feature_steer.json.
func (l *Loader) loadSAESteer(dir string) (Derived, error) {
	cfg, err := expcfg.LoadFeatureSteer(dir)
	if err != nil {
		return Derived{}, err
	}

	s, err := sae.Load(l.weightsDir, cfg)
	if err != nil {
		return Derived{}, err
	}

	vec, err := s.FeatureVector(cfg.Features)
	if err != nil {
		return Derived{}, err
	}

	return Derived{Vector: vec, Hook: HookPoint(cfg.HookPoint), Layer: cfg.Layer}, nil
}

// #endregion sae-steer

// #region adapter-steer

// loadAdapterSteer derives a vector from optimised_steer.json via the linear
// adapter, using either the single-step solve or the pseudo-inverse baseline.
func (l *Loader) loadAdapterSteer(dir string, pinv bool) (Derived, error) {
	cfg, err := expcfg.LoadOptimisedSteer(dir)
	if err != nil {
		return Derived{}, err
	}

	a, err := adapter.Load(l.weightsDir, cfg.Layer, l.bigModel)
	if err != nil {
		return Derived{}, err
	}

	_, dSAE := a.Dims()
	target, err := adapter.Target(cfg.Features, dSAE)
	if err != nil {
		return Derived{}, err
	}

	var vec []float32
	if pinv {
		vec, err = a.PinverseSteer(target, 1)
	} else {
		vec, err = a.SingleStepSteer(target, 1)
	}
	if err != nil {
		return Derived{}, err
	}

	return Derived{Vector: vec, Hook: HookPoint(cfg.HookPoint), Layer: cfg.Layer}, nil
}

// #endregion adapter-steer

// #region rotation-steer

// loadRotationSteer derives the rotation-variant vector: the SAE feature
// vector mapped through R^T, normalised, shifted by the correction bias, and
// normalised again. Uses the optimised_steer.json config plus
// R_dec_layer_<L>.npy and correction_bias_layer_<L>.npy.
func (l *Loader) loadRotationSteer(dir string) (Derived, error) {
	cfg, err := expcfg.LoadOptimisedSteer(dir)
	if err != nil {
		return Derived{}, err
	}

	s, err := sae.Load(l.weightsDir, cfg)
	if err != nil {
		return Derived{}, err
	}
	vec, err := s.FeatureVector(cfg.Features)
	if err != nil {
		return Derived{}, err
	}

	r, err := tensor.ReadNpy(filepath.Join(l.weightsDir, fmt.Sprintf("R_dec_layer_%d.npy", cfg.Layer)))
	if err != nil {
		return Derived{}, err
	}
	bMat, err := tensor.ReadNpy(filepath.Join(l.weightsDir, fmt.Sprintf("correction_bias_layer_%d.npy", cfg.Layer)))
	if err != nil {
		return Derived{}, err
	}
	b, err := tensor.AsVec(bMat)
	if err != nil {
		return Derived{}, fmt.Errorf("correction bias: %w", err)
	}

	rows, cols := r.Dims()
	if rows != len(vec) || b.Len() != cols {
		return Derived{}, fmt.Errorf("rotation dims mismatch: R is %dx%d, vec %d, bias %d", rows, cols, len(vec), b.Len())
	}

	// steer = normalise(normalise(R^T v) - b)
	rotated := make(Vector, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += r.At(i, j) * float64(vec[i])
		}
		rotated[j] = float32(sum)
	}
	rotated = rotated.Normalised()
	for j := range rotated {
		rotated[j] -= float32(b.AtVec(j))
	}
	if rotated.Norm() == 0 {
		return Derived{}, fmt.Errorf("rotation steer has zero norm")
	}

	return Derived{Vector: rotated.Normalised(), Hook: HookPoint(cfg.HookPoint), Layer: cfg.Layer}, nil
}

// #endregion rotation-steer
