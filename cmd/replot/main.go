// Command replot regenerates summary records and charts from a saved
// graph-data file, without touching the model or the judge. Useful after
// tweaking chart rendering or when only the raw sweep data survived.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ArthurConmy/SAE-TS/internal/report"
)

// #region main

func main() {
	dataPath := flag.String("data", "", "path to graph_data_all_methods_<model>.json")
	outDir := flag.String("out", "", "chart output directory (default: each record's own path)")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replot --data graph_data_all_methods_<model>.json [--out dir]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read graph data: %v\n", err)
		os.Exit(1)
	}
	var graphs []report.GraphData
	if err := json.Unmarshal(data, &graphs); err != nil {
		fmt.Fprintf(os.Stderr, "parse graph data: %v\n", err)
		os.Exit(1)
	}

	failures := 0
	for _, gd := range graphs {
		dir := gd.Path
		if *outDir != "" {
			dir = *outDir
		}
		if err := report.Chart(dir, gd); err != nil {
			// Keep going: one bad record should not block the rest.
			fmt.Fprintf(os.Stderr, "chart %s (%s): %v\n", gd.Path, gd.Method, err)
			failures++
			continue
		}

		best, scale := bestScale(gd)
		fmt.Printf("%s %s: max product %.4f at scale %d\n", gd.SteeringGoalName, gd.Method, best, scale)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// bestScale recomputes the argmax from the stored product curve.
func bestScale(gd report.GraphData) (float64, int) {
	best := 0.0
	scale := 0
	for i, p := range gd.Product {
		if i == 0 || p > best {
			best = p
			scale = gd.Scales[i]
		}
	}
	return best, scale
}

// #endregion main
