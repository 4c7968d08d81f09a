package sweep

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"go.uber.org/zap"
)

// #region fakes

type fakeGen struct {
	calls []float32
	err   error
}

func (f *fakeGen) Generate(_ context.Context, prompt string, _ steer.HookPoint, _ steer.Vector, scale float32, nSamples, _ int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, scale)
	texts := make([]string, nSamples)
	for i := range texts {
		texts[i] = fmt.Sprintf("%s sample %d at scale %v", prompt, i, scale)
	}
	return texts, nil
}

// fakeRater returns fixed raw scores per criterion, cycling through samples.
type fakeRater struct {
	raw        map[string][]float64
	sampleErrs map[string]map[int]string
	err        error
	short      bool
}

func (f *fakeRater) Rate(_ context.Context, texts []string, criterion, _ string) ([]Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := len(texts)
	if f.short {
		n--
	}
	out := make([]Rating, n)
	scores := f.raw[criterion]
	for i := range out {
		out[i] = Rating{Raw: scores[i%len(scores)]}
		if errs, ok := f.sampleErrs[criterion]; ok {
			if msg, ok := errs[i]; ok {
				out[i].Err = msg
			}
		}
	}
	return out, nil
}

// #endregion fakes

func TestScalesStandardSweep(t *testing.T) {
	scales := Scales(0, 320, 20)
	if len(scales) != 16 {
		t.Fatalf("expected 16 scales, got %d", len(scales))
	}
	if scales[0] != 0 {
		t.Fatalf("first scale = %d, want 0", scales[0])
	}
	if scales[15] != 300 {
		t.Fatalf("last scale = %d, want 300", scales[15])
	}
}

func TestScalesHalfOpen(t *testing.T) {
	scales := Scales(0, 320, 20)
	for _, s := range scales {
		if s >= 320 {
			t.Fatalf("stop must be excluded, got scale %d", s)
		}
	}
}

func TestRescaleEndpoints(t *testing.T) {
	if got := Rescale(1); got != 0 {
		t.Fatalf("Rescale(1) = %v, want 0", got)
	}
	if got := Rescale(10); got != 1 {
		t.Fatalf("Rescale(10) = %v, want 1", got)
	}
	for raw := 1.0; raw <= 10; raw++ {
		got := Rescale(raw)
		if got < 0 || got > 1 {
			t.Fatalf("Rescale(%v) = %v out of [0,1]", raw, got)
		}
	}
}

func testDerived() steer.Derived {
	return steer.Derived{
		Vector: steer.Vector{1, 0},
		Hook:   steer.ResidHook(4),
		Layer:  4,
	}
}

func testCriterion() expcfg.Criterion {
	return expcfg.Criterion{
		Name:      "Wedding",
		Score:     "how much is this about weddings",
		Coherence: "how coherent is this",
	}
}

func TestRunVisitsEveryScale(t *testing.T) {
	gen := &fakeGen{}
	rater := &fakeRater{raw: map[string][]float64{
		"how much is this about weddings": {5.5},
		"how coherent is this":            {10},
	}}
	s := New(gen, rater, Config{ScaleStop: 320, ScaleStep: 20, Samples: 4}, zap.NewNop())

	points, err := s.Run(context.Background(), testDerived(), "I think", testCriterion())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(points) != 16 {
		t.Fatalf("expected 16 points, got %d", len(points))
	}
	if len(gen.calls) != 16 || gen.calls[15] != 300 {
		t.Fatalf("unexpected generate calls: %v", gen.calls)
	}

	pt := points[0]
	if len(pt.Texts) != 4 || len(pt.Scores) != 4 || len(pt.Products) != 4 {
		t.Fatalf("unexpected batch sizes: %d texts, %d scores, %d products", len(pt.Texts), len(pt.Scores), len(pt.Products))
	}
	if math.Abs(pt.MeanScore-0.5) > 1e-9 {
		t.Fatalf("mean score = %v, want 0.5", pt.MeanScore)
	}
	if math.Abs(pt.MeanCoherence-1) > 1e-9 {
		t.Fatalf("mean coherence = %v, want 1", pt.MeanCoherence)
	}
	if math.Abs(pt.Products[0]-0.5) > 1e-9 {
		t.Fatalf("product = %v, want 0.5", pt.Products[0])
	}
}

func TestRunKeepsSamplesWithEvaluatorErrors(t *testing.T) {
	gen := &fakeGen{}
	rater := &fakeRater{
		raw: map[string][]float64{
			"how much is this about weddings": {10},
			"how coherent is this":            {10},
		},
		sampleErrs: map[string]map[int]string{
			"how much is this about weddings": {1: "judge timeout"},
		},
	}
	s := New(gen, rater, Config{ScaleStop: 20, ScaleStep: 20, Samples: 3}, zap.NewNop())

	points, err := s.Run(context.Background(), testDerived(), "I think", testCriterion())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Best-effort: the errored sample is still counted.
	if len(points[0].Scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(points[0].Scores))
	}
}

func TestRunGenerateErrorAborts(t *testing.T) {
	gen := &fakeGen{err: fmt.Errorf("cuda out of memory")}
	rater := &fakeRater{raw: map[string][]float64{}}
	s := New(gen, rater, Config{ScaleStop: 320, ScaleStep: 20, Samples: 2}, zap.NewNop())

	if _, err := s.Run(context.Background(), testDerived(), "I think", testCriterion()); err == nil {
		t.Fatal("expected generate error to abort the sweep")
	}
}

func TestRunRatingLengthMismatch(t *testing.T) {
	gen := &fakeGen{}
	rater := &fakeRater{
		raw: map[string][]float64{
			"how much is this about weddings": {5},
			"how coherent is this":            {5},
		},
		short: true,
	}
	s := New(gen, rater, Config{ScaleStop: 20, ScaleStep: 20, Samples: 3}, zap.NewNop())

	if _, err := s.Run(context.Background(), testDerived(), "I think", testCriterion()); err == nil {
		t.Fatal("expected error for rating/text length mismatch")
	}
}
