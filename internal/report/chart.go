package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// #region chart

// Chart draws coherence, score, and their product against scale and saves
// the PNG next to the experiment config.
func Chart(dir string, gd GraphData) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Steering Analysis for %s (%s)", gd.SteeringGoalName, gd.Method)
	p.X.Label.Text = "Scale"
	p.Y.Label.Text = "Value"
	p.Y.Min = 0
	p.Y.Max = 1

	err := plotutil.AddLines(p,
		"Coherence", curve(gd.Scales, gd.AvgCoherence),
		"Score", curve(gd.Scales, gd.AvgScore),
		"Coherence * Score", curve(gd.Scales, gd.Product),
	)
	if err != nil {
		return fmt.Errorf("add chart lines: %w", err)
	}
	p.Legend.Top = true

	out := filepath.Join(dir, ChartFilename(gd.SteeringGoalName, gd.Method))
	if err := p.Save(8*vg.Inch, 5*vg.Inch, out); err != nil {
		return fmt.Errorf("save chart %s: %w", out, err)
	}
	return nil
}

func curve(scales []int, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(scales[i])
		pts[i].Y = y
	}
	return pts
}

// #endregion chart
