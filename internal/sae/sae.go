// Package sae loads sparse autoencoder weights. Two formats are supported:
// the saelens release layout (a directory of .npy tensors per layer) and the
// gemmascope raw parameter archive (one .npz of JumpReLU tensors).
package sae

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// #region sae-type

// SAE holds the autoencoder weight matrices needed for steering.
// WDec is (dSAE x dModel): one decoder direction per feature.
// WEnc is (dModel x dSAE) and may be nil when the release ships decoder-only.
type SAE struct {
	WDec *mat.Dense
	WEnc *mat.Dense
}

// NumFeatures returns the decoder row count.
func (s *SAE) NumFeatures() int {
	r, _ := s.WDec.Dims()
	return r
}

// ModelDim returns the activation-space dimension.
func (s *SAE) ModelDim() int {
	_, c := s.WDec.Dims()
	return c
}

// #endregion sae-type

// #region load

// Load reads SAE weights per the config's sae_load_method. root is the local
// weights cache directory. Unknown methods fail with a named error; missing
// weight files propagate the underlying file error.
func Load(root string, cfg expcfg.SteerConfig) (*SAE, error) {
	switch cfg.SAELoadMethod {
	case "saelens":
		return loadSAELens(root, cfg)
	case "gemmascope":
		return loadGemmaScope(root, cfg)
	default:
		return nil, fmt.Errorf("unknown sae_load_method: %q", cfg.SAELoadMethod)
	}
}

// #endregion load

// #region saelens

// loadSAELens reads <root>/<release>/layer_<L>/W_dec.npy (plus W_enc.npy when
// present) and normalises each decoder row to unit L2 norm.
func loadSAELens(root string, cfg expcfg.SteerConfig) (*SAE, error) {
	dir := filepath.Join(root, cfg.SAE, fmt.Sprintf("layer_%d", cfg.Layer))

	wDec, err := tensor.ReadNpy(filepath.Join(dir, "W_dec.npy"))
	if err != nil {
		return nil, fmt.Errorf("load saelens decoder: %w", err)
	}

	s := &SAE{WDec: wDec}

	encPath := filepath.Join(dir, "W_enc.npy")
	if _, statErr := os.Stat(encPath); statErr == nil {
		wEnc, err := tensor.ReadNpy(encPath)
		if err != nil {
			return nil, fmt.Errorf("load saelens encoder: %w", err)
		}
		s.WEnc = wEnc
	}

	NormaliseDecoder(s)
	return s, nil
}

// #endregion saelens

// #region gemmascope

// loadGemmaScope reads the raw JumpReLU parameter archive at
// <root>/<repo_id>/<filename>. Decoder rows are kept as shipped.
func loadGemmaScope(root string, cfg expcfg.SteerConfig) (*SAE, error) {
	path := filepath.Join(root, cfg.RepoID, cfg.Filename)

	tensors, err := tensor.ReadNpz(path, "W_enc", "W_dec")
	if err != nil {
		return nil, fmt.Errorf("load gemmascope params: %w", err)
	}

	return &SAE{
		WEnc: tensors["W_enc"],
		WDec: tensors["W_dec"],
	}, nil
}

// #endregion gemmascope

// #region normalise-decoder

// NormaliseDecoder rescales every decoder row to unit L2 norm in place.
// Zero rows are left untouched.
func NormaliseDecoder(s *SAE) {
	rows, cols := s.WDec.Dims()
	for i := 0; i < rows; i++ {
		row := s.WDec.RawRowView(i)
		var sum float64
		for _, x := range row {
			sum += x * x
		}
		norm := math.Sqrt(sum)
		if norm == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			row[j] /= norm
		}
	}
}

// #endregion normalise-decoder

// #region feature-vector

// FeatureVector sums the configured decoder rows, each scaled by its
// coefficient, and unit-normalises the result.
func (s *SAE) FeatureVector(features []expcfg.FeaturePair) ([]float32, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("no features configured")
	}
	rows, cols := s.WDec.Dims()

	acc := make([]float64, cols)
	for _, ft := range features {
		if ft.ID < 0 || ft.ID >= rows {
			return nil, fmt.Errorf("feature id %d out of range (decoder has %d rows)", ft.ID, rows)
		}
		row := s.WDec.RawRowView(ft.ID)
		for j, x := range row {
			acc[j] += x * ft.Scale
		}
	}

	var sum float64
	for _, x := range acc {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return nil, fmt.Errorf("feature vector has zero norm")
	}

	vec := make([]float32, cols)
	for j, x := range acc {
		vec[j] = float32(x / norm)
	}
	return vec, nil
}

// #endregion feature-vector
