package steer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// #region fakes

type fakeActivations struct {
	byLayer map[int]map[string][]float32
	err     error
}

func (f *fakeActivations) MeanActivations(_ context.Context, texts []string, layer int) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byLayer[layer][strings.Join(texts, "|")], nil
}

// #endregion fakes

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNormalisedUnitNorm(t *testing.T) {
	v := Vector{3, 4, 0}
	n := v.Normalised()
	if math.Abs(n.Norm()-1) > 1e-6 {
		t.Fatalf("normalised norm = %v, want 1", n.Norm())
	}
	if math.Abs(float64(n[0])-0.6) > 1e-6 || math.Abs(float64(n[1])-0.8) > 1e-6 {
		t.Fatalf("unexpected direction: %v", n)
	}
	// Original untouched.
	if v[0] != 3 {
		t.Fatal("Normalised must not mutate the receiver")
	}
}

func TestNormalisedZeroVector(t *testing.T) {
	v := Vector{0, 0}
	n := v.Normalised()
	if n[0] != 0 || n[1] != 0 {
		t.Fatalf("zero vector should come back unchanged, got %v", n)
	}
}

func TestResidHook(t *testing.T) {
	if got := ResidHook(12); got != "blocks.12.hook_resid_post" {
		t.Fatalf("unexpected hook point: %q", got)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []string{"ActSteer", "SAE", "OptimisedSteer", "PinverseSteer", "RotationSteer"} {
		if _, err := ParseMethod(m); err != nil {
			t.Fatalf("ParseMethod(%q): %v", m, err)
		}
	}
	_, err := ParseMethod("GradientSteer")
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !strings.Contains(err.Error(), "GradientSteer") {
		t.Fatalf("error should name the bad method: %v", err)
	}
}

func TestLoadUnknownMethod(t *testing.T) {
	l := NewLoader(&fakeActivations{}, t.TempDir(), false)
	_, err := l.Load(context.Background(), t.TempDir(), Method("Bogus"))
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !strings.Contains(err.Error(), "Bogus") {
		t.Fatalf("error should name the bad method: %v", err)
	}
}

func TestLoadActSteer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "act_steer.json", `{
		"pos_examples": ["a wedding"],
		"neg_examples": ["a meeting"],
		"layer": 4
	}`)

	acts := &fakeActivations{byLayer: map[int]map[string][]float32{
		4: {
			"a wedding": {4, 0, 0},
			"a meeting": {1, 0, 4},
		},
	}}

	l := NewLoader(acts, t.TempDir(), false)
	d, err := l.Load(context.Background(), dir, ActSteer)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if d.Hook != "blocks.4.hook_resid_post" || d.Layer != 4 {
		t.Fatalf("unexpected hook/layer: %q %d", d.Hook, d.Layer)
	}
	if math.Abs(d.Vector.Norm()-1) > 1e-6 {
		t.Fatalf("act steer vector not unit norm: %v", d.Vector.Norm())
	}
	// Direction of (4,0,0)-(1,0,4) = (3,0,-4), normalised (0.6,0,-0.8).
	if math.Abs(float64(d.Vector[0])-0.6) > 1e-6 || math.Abs(float64(d.Vector[2])+0.8) > 1e-6 {
		t.Fatalf("unexpected direction: %v", d.Vector)
	}
}

func TestLoadActSteerActivationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "act_steer.json", `{
		"pos_examples": ["x"],
		"neg_examples": ["y"],
		"layer": 1
	}`)

	l := NewLoader(&fakeActivations{err: fmt.Errorf("model offline")}, t.TempDir(), false)
	if _, err := l.Load(context.Background(), dir, ActSteer); err == nil {
		t.Fatal("expected activation source error to propagate")
	}
}

func TestLoadSAESteerMissingWeights(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feature_steer.json", `{
		"sae": "absent-release",
		"layer": 2,
		"hp": "blocks.2.hook_resid_post",
		"features": [[0, 1.0]]
	}`)

	l := NewLoader(&fakeActivations{}, t.TempDir(), false)
	_, err := l.Load(context.Background(), dir, SAEFeature)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file-not-found for missing SAE weights, got %v", err)
	}
}

func TestLoadActSteerMissingExamples(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "act_steer.json", `{"pos_examples": [], "neg_examples": [], "layer": 1}`)

	l := NewLoader(&fakeActivations{}, t.TempDir(), false)
	if _, err := l.Load(context.Background(), dir, ActSteer); err == nil {
		t.Fatal("expected error for empty example sets")
	}
}
