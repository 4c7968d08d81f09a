// Package sweep runs the injection-scale sweep: generate a batch at each
// scale, score it against the rubric, and collect per-scale statistics.
package sweep

import (
	"context"
	"fmt"

	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"go.uber.org/zap"
)

// #region interfaces

// Rating is one judge score for one sample, on the raw 1-10 rubric scale.
// Err carries a per-sample evaluator failure; the score is then a best-effort
// default and the sample is still counted.
type Rating struct {
	Raw float64
	Err string
}

// Generator produces text completions with a steering vector injected at a
// hook point during generation.
type Generator interface {
	Generate(ctx context.Context, prompt string, hook steer.HookPoint, vec steer.Vector, scale float32, nSamples, maxNewTokens int) ([]string, error)
}

// Rater scores a text batch against one rubric criterion.
type Rater interface {
	Rate(ctx context.Context, texts []string, criterion, prompt string) ([]Rating, error)
}

// #endregion interfaces

// #region scales

// Scales returns the half-open scale sequence [start, stop) stepped by step.
// Scales(0, 320, 20) is the standard 16-step sweep ending at 300.
func Scales(start, stop, step int) []int {
	var out []int
	for s := start; s < stop; s += step {
		out = append(out, s)
	}
	return out
}

// Rescale maps a raw 1-10 rubric score into [0,1]: 1 -> 0, 10 -> 1.
func Rescale(raw float64) float64 {
	return (raw - 1) / 9
}

// #endregion scales

// #region point

// Point holds everything measured at one injection scale.
type Point struct {
	Scale int
	Texts []string

	// Per-sample rescaled values, parallel to Texts.
	Scores     []float64
	Coherences []float64
	// Products keeps score*coherence per sample for variance inspection.
	Products []float64

	MeanScore     float64
	MeanCoherence float64
}

// #endregion point

// #region config

// Config holds sweep parameters.
type Config struct {
	ScaleStart   int
	ScaleStop    int
	ScaleStep    int
	Samples      int
	MaxNewTokens int
}

// #endregion config

// #region sweep

// Sweep iterates injection scales for one steering vector.
type Sweep struct {
	gen   Generator
	rater Rater
	cfg   Config
	log   *zap.Logger
}

// New creates a sweep engine.
func New(gen Generator, rater Rater, cfg Config, log *zap.Logger) *Sweep {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweep{gen: gen, rater: rater, cfg: cfg, log: log}
}

// Run generates and scores a batch at every scale. Evaluator errors on
// individual samples are logged and the sample kept; generation or
// whole-batch rating errors abort the sweep for this vector.
func (s *Sweep) Run(ctx context.Context, d steer.Derived, prompt string, crit expcfg.Criterion) ([]Point, error) {
	scales := Scales(s.cfg.ScaleStart, s.cfg.ScaleStop, s.cfg.ScaleStep)
	points := make([]Point, 0, len(scales))

	for _, scale := range scales {
		s.log.Info("sweep step",
			zap.Int("scale", scale),
			zap.Int("samples", s.cfg.Samples),
			zap.String("hook", string(d.Hook)),
		)

		texts, err := s.gen.Generate(ctx, prompt, d.Hook, d.Vector, float32(scale), s.cfg.Samples, s.cfg.MaxNewTokens)
		if err != nil {
			return nil, fmt.Errorf("generate at scale %d: %w", scale, err)
		}

		scores, err := s.rateBatch(ctx, texts, crit.Score, prompt, "score", scale)
		if err != nil {
			return nil, err
		}
		coherences, err := s.rateBatch(ctx, texts, crit.Coherence, prompt, "coherence", scale)
		if err != nil {
			return nil, err
		}

		pt := Point{
			Scale:      scale,
			Texts:      texts,
			Scores:     scores,
			Coherences: coherences,
			Products:   make([]float64, len(texts)),
		}
		for i := range texts {
			pt.Products[i] = scores[i] * coherences[i]
		}
		pt.MeanScore = mean(scores)
		pt.MeanCoherence = mean(coherences)

		points = append(points, pt)
	}

	return points, nil
}

// rateBatch scores one criterion over a batch, rescaling raw 1-10 values
// into [0,1]. Per-sample errors are best-effort: logged, not retried.
func (s *Sweep) rateBatch(ctx context.Context, texts []string, criterion, prompt, dim string, scale int) ([]float64, error) {
	ratings, err := s.rater.Rate(ctx, texts, criterion, prompt)
	if err != nil {
		return nil, fmt.Errorf("rate %s at scale %d: %w", dim, scale, err)
	}
	if len(ratings) != len(texts) {
		return nil, fmt.Errorf("rate %s at scale %d: got %d ratings for %d texts", dim, scale, len(ratings), len(texts))
	}

	out := make([]float64, len(ratings))
	for i, r := range ratings {
		if r.Err != "" {
			s.log.Warn("evaluator error, keeping sample",
				zap.Int("scale", scale),
				zap.String("dimension", dim),
				zap.Int("sample", i),
				zap.String("error", r.Err),
			)
		}
		out[i] = Rescale(r.Raw)
	}
	return out, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// #endregion sweep
