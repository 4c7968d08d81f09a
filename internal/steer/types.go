package steer

import (
	"fmt"
	"math"
)

// #region vector

// Vector is a steering direction in model activation space.
type Vector []float32

// Norm returns the L2 norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalised returns a unit-norm copy. A zero vector is returned unchanged;
// derivations reject zero-norm results before this point.
func (v Vector) Normalised() Vector {
	out := make(Vector, len(v))
	norm := v.Norm()
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// #endregion vector

// #region hook-point

// HookPoint names a layer and activation site inside the model, e.g.
// "blocks.12.hook_resid_post".
type HookPoint string

// ResidHook returns the post-block residual stream hook for a layer.
func ResidHook(layer int) HookPoint {
	return HookPoint(fmt.Sprintf("blocks.%d.hook_resid_post", layer))
}

// #endregion hook-point

// #region method

// Method tags a steering-vector derivation. The tag doubles as the method
// name in output filenames and result records.
type Method string

const (
	// ActSteer derives a direction from activation differences between
	// positive and negative example sets.
	ActSteer Method = "ActSteer"
	// SAEFeature sums scaled SAE decoder rows.
	SAEFeature Method = "SAE"
	// Optimised solves the linear adapter with the single-step method.
	Optimised Method = "OptimisedSteer"
	// Pinverse solves the linear adapter with the pseudo-inverse baseline.
	Pinverse Method = "PinverseSteer"
	// Rotation applies the learned rotation matrix and correction bias to
	// the SAE feature vector.
	Rotation Method = "RotationSteer"
)

// DefaultMethods is the standard comparison set, in run order.
var DefaultMethods = []Method{ActSteer, SAEFeature, Optimised, Pinverse}

// ParseMethod validates a method tag from configuration.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case ActSteer, SAEFeature, Optimised, Pinverse, Rotation:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown steering method: %q", s)
}

// #endregion method

// #region derived

// Derived is a steering vector ready for injection: unit-norm, tagged with
// its hook point and source layer.
type Derived struct {
	Vector Vector
	Hook   HookPoint
	Layer  int
}

// #endregion derived
