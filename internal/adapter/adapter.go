// Package adapter loads the learned linear adapter mapping SAE feature space
// to model activation space, and solves it for steering vectors. Two solvers
// are kept on purpose: the single-step solve used in the optimised method and
// the Moore-Penrose pseudo-inverse baseline. They normalise in a different
// order and are not interchangeable.
package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// #region adapter-type

// Adapter is the linear adapter: W is (dModel x dSAE), B is the feature-space
// bias (dSAE).
type Adapter struct {
	W *mat.Dense
	B *mat.VecDense
}

// Dims returns (dModel, dSAE).
func (a *Adapter) Dims() (int, int) {
	return a.W.Dims()
}

// #endregion adapter-type

// #region load

// Load reads adapter weights for a layer from <dir>/adapter_layer_<L>.npz,
// or adapter_9b_layer_<L>.npz for the big model. The archive holds tensors
// "W" and "b". Missing files propagate the underlying file error.
func Load(dir string, layer int, bigModel bool) (*Adapter, error) {
	name := fmt.Sprintf("adapter_layer_%d.npz", layer)
	if bigModel {
		name = fmt.Sprintf("adapter_9b_layer_%d.npz", layer)
	}

	tensors, err := tensor.ReadNpz(filepath.Join(dir, name), "W", "b")
	if err != nil {
		return nil, err
	}

	b, err := tensor.AsVec(tensors["b"])
	if err != nil {
		return nil, fmt.Errorf("adapter bias: %w", err)
	}

	a := &Adapter{W: tensors["W"], B: b}
	_, dSAE := a.W.Dims()
	if b.Len() != dSAE {
		return nil, fmt.Errorf("adapter bias has %d elements, want %d", b.Len(), dSAE)
	}
	return a, nil
}

// #endregion load

// #region target

// Target builds the feature-space target vector from configured feature
// pairs: zero everywhere except target[id] = scale.
func Target(features []expcfg.FeaturePair, dSAE int) (*mat.VecDense, error) {
	t := mat.NewVecDense(dSAE, nil)
	for _, ft := range features {
		if ft.ID < 0 || ft.ID >= dSAE {
			return nil, fmt.Errorf("feature id %d out of range (adapter has %d features)", ft.ID, dSAE)
		}
		t.SetVec(ft.ID, ft.Scale)
	}
	return t, nil
}

// #endregion target

// #region single-step

// SingleStepSteer computes the optimised-method steering vector:
// normalise(W*target) minus biasScale * normalise(W*b), renormalised.
func (a *Adapter) SingleStepSteer(target *mat.VecDense, biasScale float64) ([]float32, error) {
	dModel, _ := a.W.Dims()

	var steerVec mat.VecDense
	steerVec.MulVec(a.W, target)
	if err := normaliseVec(&steerVec); err != nil {
		return nil, fmt.Errorf("steer component: %w", err)
	}

	var biasVec mat.VecDense
	biasVec.MulVec(a.W, a.B)
	if err := normaliseVec(&biasVec); err != nil {
		return nil, fmt.Errorf("bias component: %w", err)
	}
	biasVec.ScaleVec(biasScale, &biasVec)

	var steer mat.VecDense
	steer.SubVec(&steerVec, &biasVec)
	if err := normaliseVec(&steer); err != nil {
		return nil, fmt.Errorf("steer result: %w", err)
	}

	return toFloat32(&steer, dModel), nil
}

// #endregion single-step

// #region pinverse

// PinverseSteer computes the pseudo-inverse baseline: normalise the target,
// scale it, then solve x = (target - b) * pinv(W) and unit-normalise x.
func (a *Adapter) PinverseSteer(target *mat.VecDense, targetScale float64) ([]float32, error) {
	dModel, dSAE := a.W.Dims()

	t := mat.NewVecDense(dSAE, nil)
	t.CopyVec(target)
	if err := normaliseVec(t); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	t.ScaleVec(targetScale, t)
	t.SubVec(t, a.B)

	pinv, err := PseudoInverse(a.W)
	if err != nil {
		return nil, fmt.Errorf("pinv(W): %w", err)
	}

	// (target - b) * pinv(W) as a row vector is pinv(W)^T * (target - b).
	var x mat.VecDense
	x.MulVec(pinv.T(), t)
	if err := normaliseVec(&x); err != nil {
		return nil, fmt.Errorf("steer result: %w", err)
	}

	return toFloat32(&x, dModel), nil
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse via thin SVD.
// Singular values below 1e-12 of the largest are treated as zero.
func PseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	tol := 1e-12
	if len(s) > 0 {
		tol *= s[0]
	}

	// sigmaInv * U^T, then V * that.
	k := len(s)
	ur, _ := u.Dims()
	sinvUT := mat.NewDense(k, ur, nil)
	for i := 0; i < k; i++ {
		if s[i] <= tol {
			continue
		}
		inv := 1 / s[i]
		for j := 0; j < ur; j++ {
			sinvUT.Set(i, j, inv*u.At(j, i))
		}
	}

	var pinv mat.Dense
	pinv.Mul(&v, sinvUT)
	return &pinv, nil
}

// #endregion pinverse

// #region helpers

func normaliseVec(v *mat.VecDense) error {
	norm := mat.Norm(v, 2)
	if norm == 0 {
		return fmt.Errorf("vector has zero norm")
	}
	v.ScaleVec(1/norm, v)
	return nil
}

func toFloat32(v *mat.VecDense, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(v.AtVec(i))
	}
	return out
}

// #endregion helpers
