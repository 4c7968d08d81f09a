// Command analyse sweeps injection scales for every experiment directory and
// derivation method, scores the generated text, and records the best scale
// per (experiment, method) pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ArthurConmy/SAE-TS/internal/expcfg"
	"github.com/ArthurConmy/SAE-TS/internal/inference"
	"github.com/ArthurConmy/SAE-TS/internal/report"
	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"github.com/ArthurConmy/SAE-TS/internal/sweep"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to run config YAML (optional)")
	addr := flag.String("addr", "", "inference service address (overrides config)")
	dbPath := flag.String("db", "", "results database path (overrides config)")
	modelName := flag.String("model", "", "model name for output filenames (overrides config)")
	big := flag.Bool("big", false, "use big-model adapter weights")
	prompt := flag.String("prompt", "", "default prompt override")
	weightsDir := flag.String("weights", "", "weights directory (overrides config)")
	rotation := flag.Bool("rotation", false, "also run the rotation steering variant")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	cfg := expcfg.DefaultRunConfig()
	if *configPath != "" {
		loaded, err := expcfg.LoadRunConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	applyOverrides(&cfg, *addr, *dbPath, *modelName, *prompt, *weightsDir, *big)
	if args := flag.Args(); len(args) > 0 {
		cfg.Experiments = args
	}
	if len(cfg.Experiments) == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyse [flags] experiment-dir [experiment-dir ...]")
		os.Exit(2)
	}

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	methods, err := runMethods(cfg, *rotation)
	if err != nil {
		log.Fatal("methods", zap.Error(err))
	}

	store, err := report.NewStore(cfg.ResultsDB)
	if err != nil {
		log.Fatal("open results db", zap.Error(err))
	}
	defer store.Close()

	client, err := inference.NewClient(cfg.InferenceAddr)
	if err != nil {
		log.Fatal("connect inference service", zap.Error(err))
	}
	defer client.Close()

	runID := uuid.New().String()
	log.Info("starting run",
		zap.String("run_id", runID),
		zap.String("model", cfg.ModelName),
		zap.Int("experiments", len(cfg.Experiments)),
	)

	if err := run(context.Background(), cfg, methods, client, store, runID, log); err != nil {
		log.Fatal("run", zap.Error(err))
	}
}

// #endregion main

// #region run

func run(ctx context.Context, cfg expcfg.RunConfig, methods []steer.Method, client *inference.Client, store *report.Store, runID string, log *zap.Logger) error {
	loader := steer.NewLoader(client, cfg.WeightsDir, cfg.BigModel)
	engine := sweep.New(client, client, sweep.Config{
		ScaleStart:   cfg.Sweep.ScaleStart,
		ScaleStop:    cfg.Sweep.ScaleStop,
		ScaleStep:    cfg.Sweep.ScaleStep,
		Samples:      cfg.Sweep.Samples,
		MaxNewTokens: cfg.Sweep.MaxNewTokens,
	}, log)

	var results []report.Result
	var graphs []report.GraphData

	for _, dir := range cfg.Experiments {
		criteria, err := expcfg.LoadCriteria(dir)
		if err != nil {
			log.Error("load criteria, skipping experiment", zap.String("dir", dir), zap.Error(err))
			_ = store.LogEvent(runID, dir, "", "criteria_error", err.Error())
			continue
		}
		crit := criteria[0]

		prompt := cfg.DefaultPrompt
		if prompt == "" {
			prompts, err := expcfg.LoadPrompts(dir)
			if err != nil {
				log.Error("load prompts, skipping experiment", zap.String("dir", dir), zap.Error(err))
				_ = store.LogEvent(runID, dir, "", "prompts_error", err.Error())
				continue
			}
			prompt = prompts[0]
		}

		for _, method := range methods {
			log.Info("analysing",
				zap.String("dir", dir),
				zap.String("method", string(method)),
				zap.String("goal", crit.Name),
			)

			res, gd, err := analyse(ctx, loader, engine, dir, method, prompt, crit)
			if err != nil {
				// One pair failing never aborts the rest of the run.
				log.Error("pair failed",
					zap.String("dir", dir),
					zap.String("method", string(method)),
					zap.Error(err),
				)
				_ = store.LogEvent(runID, dir, string(method), "pair_error", err.Error())
				continue
			}

			results = append(results, res)
			graphs = append(graphs, gd)
			if err := store.SaveResult(runID, res, gd); err != nil {
				log.Error("save result", zap.Error(err))
			}
			_ = store.LogEvent(runID, dir, string(method), "pair_done",
				fmt.Sprintf("max_product=%.4f scale_at_max=%d", res.MaxProduct, res.ScaleAtMax))

			log.Info("best scale",
				zap.String("method", string(method)),
				zap.Float64("max_product", res.MaxProduct),
				zap.Int("scale_at_max", res.ScaleAtMax),
			)
		}
	}

	if err := report.WriteRunSummaries(".", cfg.ModelName, results, graphs); err != nil {
		return fmt.Errorf("write run summaries: %w", err)
	}
	log.Info("run complete", zap.String("run_id", runID), zap.Int("pairs", len(results)))
	return nil
}

// analyse derives the vector, sweeps it, and writes the per-pair outputs.
func analyse(ctx context.Context, loader *steer.Loader, engine *sweep.Sweep, dir string, method steer.Method, prompt string, crit expcfg.Criterion) (report.Result, report.GraphData, error) {
	d, err := loader.Load(ctx, dir, method)
	if err != nil {
		return report.Result{}, report.GraphData{}, fmt.Errorf("derive vector: %w", err)
	}

	points, err := engine.Run(ctx, d, prompt, crit)
	if err != nil {
		return report.Result{}, report.GraphData{}, err
	}

	res, gd, err := report.Summarise(dir, method, crit.Name, points)
	if err != nil {
		return report.Result{}, report.GraphData{}, err
	}

	if err := report.WriteGeneratedTexts(dir, method, points); err != nil {
		return report.Result{}, report.GraphData{}, err
	}
	if err := report.Chart(dir, gd); err != nil {
		return report.Result{}, report.GraphData{}, err
	}
	return res, gd, nil
}

// #endregion run

// #region helpers

func applyOverrides(cfg *expcfg.RunConfig, addr, dbPath, modelName, prompt, weightsDir string, big bool) {
	if addr != "" {
		cfg.InferenceAddr = addr
	}
	if dbPath != "" {
		cfg.ResultsDB = dbPath
	}
	if modelName != "" {
		cfg.ModelName = modelName
	}
	if prompt != "" {
		cfg.DefaultPrompt = prompt
	}
	if weightsDir != "" {
		cfg.WeightsDir = weightsDir
	}
	if big {
		cfg.BigModel = true
		if modelName == "" && cfg.ModelName == "gemma-2-2b" {
			cfg.ModelName = "gemma-2-9b"
		}
	}
}

func runMethods(cfg expcfg.RunConfig, rotation bool) ([]steer.Method, error) {
	if len(cfg.Methods) == 0 {
		methods := append([]steer.Method{}, steer.DefaultMethods...)
		if rotation {
			methods = append(methods, steer.Rotation)
		}
		return methods, nil
	}
	methods := make([]steer.Method, 0, len(cfg.Methods))
	for _, m := range cfg.Methods {
		parsed, err := steer.ParseMethod(m)
		if err != nil {
			return nil, err
		}
		methods = append(methods, parsed)
	}
	return methods, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// #endregion helpers
