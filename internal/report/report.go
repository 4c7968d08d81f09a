// Package report aggregates sweep output: pick the best scale, persist raw
// results, and draw the score curves.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"github.com/ArthurConmy/SAE-TS/internal/sweep"
)

// #region result-types

// Result is the per-(experiment, method) summary record.
type Result struct {
	Path             string  `json:"path"`
	Method           string  `json:"method"`
	SteeringGoalName string  `json:"steering_goal_name"`
	MaxProduct       float64 `json:"max_product"`
	ScaleAtMax       int     `json:"scale_at_max"`
}

// GraphData carries the full curves and per-sample arrays for plotting.
type GraphData struct {
	Path                 string      `json:"path"`
	Method               string      `json:"method"`
	SteeringGoalName     string      `json:"steering_goal_name"`
	Scales               []int       `json:"scales"`
	AvgCoherence         []float64   `json:"avg_coherence"`
	AvgScore             []float64   `json:"avg_score"`
	Product              []float64   `json:"product"`
	IndividualScores     [][]float64 `json:"individual_scores"`
	IndividualCoherences [][]float64 `json:"individual_coherences"`
	IndividualProducts   [][]float64 `json:"individual_products"`
}

// #endregion result-types

// #region summarise

// Summarise computes the per-scale product of mean score and mean coherence
// and selects the scale maximising it. Ties resolve to the first occurrence
// in scale order.
func Summarise(path string, method steer.Method, goal string, points []sweep.Point) (Result, GraphData, error) {
	if len(points) == 0 {
		return Result{}, GraphData{}, fmt.Errorf("no sweep points to summarise")
	}

	gd := GraphData{
		Path:             path,
		Method:           string(method),
		SteeringGoalName: goal,
	}

	maxProduct := 0.0
	maxScale := points[0].Scale
	first := true
	for _, pt := range points {
		product := pt.MeanScore * pt.MeanCoherence

		gd.Scales = append(gd.Scales, pt.Scale)
		gd.AvgCoherence = append(gd.AvgCoherence, pt.MeanCoherence)
		gd.AvgScore = append(gd.AvgScore, pt.MeanScore)
		gd.Product = append(gd.Product, product)
		gd.IndividualScores = append(gd.IndividualScores, pt.Scores)
		gd.IndividualCoherences = append(gd.IndividualCoherences, pt.Coherences)
		gd.IndividualProducts = append(gd.IndividualProducts, pt.Products)

		if first || product > maxProduct {
			maxProduct = product
			maxScale = pt.Scale
			first = false
		}
	}

	res := Result{
		Path:             path,
		Method:           string(method),
		SteeringGoalName: goal,
		MaxProduct:       maxProduct,
		ScaleAtMax:       maxScale,
	}
	return res, gd, nil
}

// #endregion summarise

// #region generated-texts

// WriteGeneratedTexts dumps every sampled text per scale to
// <dir>/generated_texts_<method>.json as [scale, texts] pairs.
func WriteGeneratedTexts(dir string, method steer.Method, points []sweep.Point) error {
	entries := make([][]interface{}, len(points))
	for i, pt := range points {
		entries[i] = []interface{}{pt.Scale, pt.Texts}
	}
	path := filepath.Join(dir, fmt.Sprintf("generated_texts_%s.json", method))
	return writeJSON(path, entries)
}

// #endregion generated-texts

// #region run-summaries

// WriteRunSummaries writes the two run-wide aggregate files,
// steering_results_<model>.json and graph_data_all_methods_<model>.json,
// into outDir.
func WriteRunSummaries(outDir, modelName string, results []Result, graphs []GraphData) error {
	resPath := filepath.Join(outDir, fmt.Sprintf("steering_results_%s.json", modelName))
	if err := writeJSON(resPath, results); err != nil {
		return err
	}
	gdPath := filepath.Join(outDir, fmt.Sprintf("graph_data_all_methods_%s.json", modelName))
	return writeJSON(gdPath, graphs)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// #endregion run-summaries

// #region chart-name

// ChartFilename returns scores_<goal>_<method>.png with spaces in the goal
// replaced by underscores.
func ChartFilename(goal, method string) string {
	safe := strings.ReplaceAll(goal, " ", "_")
	return fmt.Sprintf("scores_%s_%s.png", safe, method)
}

// #endregion chart-name
