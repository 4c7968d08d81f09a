// Command inspect prints stored sweep results from the results database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ArthurConmy/SAE-TS/internal/report"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the results database")
	last := flag.Int("last", 20, "show N most recent results")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	graph := flag.Bool("graph", false, "include full graph data (JSON mode only)")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/steering_results.db [--last N] [--json] [--graph]")
		os.Exit(2)
	}

	store, err := report.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.Results(*last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no results found")
		return
	}

	if *jsonOut {
		if err := printJSON(store, results, *graph); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printTable(results)
}

// #endregion main

// #region output

func printTable(results []report.StoredResult) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tGOAL\tMETHOD\tMAX PRODUCT\tSCALE\tPATH")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\t%s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Goal, r.Method, r.MaxProduct, r.ScaleAtMax, r.Path,
		)
	}
	w.Flush()
}

func printJSON(store *report.Store, results []report.StoredResult, withGraph bool) error {
	type row struct {
		report.StoredResult
		Graph *report.GraphData `json:"graph,omitempty"`
	}
	rows := make([]row, len(results))
	for i, r := range results {
		rows[i] = row{StoredResult: r}
		if withGraph {
			gd, err := store.GraphData(r.RunID, r.Path, r.Method)
			if err != nil {
				return err
			}
			rows[i].Graph = &gd
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// #endregion output
