package report

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndReadBack(t *testing.T) {
	store := tempStore(t)

	res := Result{
		Path:             "steer_cfgs/gemma2/london",
		Method:           "PinverseSteer",
		SteeringGoalName: "London",
		MaxProduct:       0.37,
		ScaleAtMax:       180,
	}
	gd := GraphData{
		Path:    res.Path,
		Method:  res.Method,
		Scales:  []int{0, 20, 40},
		Product: []float64{0.1, 0.37, 0.2},
	}

	if err := store.SaveResult("run-1", res, gd); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	rows, err := store.Results(10)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.RunID != "run-1" || got.Method != "PinverseSteer" || got.ScaleAtMax != 180 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.MaxProduct != 0.37 {
		t.Fatalf("max product = %v, want 0.37", got.MaxProduct)
	}

	gotGD, err := store.GraphData("run-1", res.Path, res.Method)
	if err != nil {
		t.Fatalf("GraphData: %v", err)
	}
	if len(gotGD.Product) != 3 || gotGD.Product[1] != 0.37 {
		t.Fatalf("graph data round trip failed: %+v", gotGD)
	}
}

func TestStoreResultsNewestFirst(t *testing.T) {
	store := tempStore(t)

	for i, method := range []string{"ActSteer", "SAE"} {
		res := Result{Path: "p", Method: method, SteeringGoalName: "g", ScaleAtMax: i}
		if err := store.SaveResult("run-1", res, GraphData{}); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	rows, err := store.Results(10)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(rows) != 2 || rows[0].Method != "SAE" {
		t.Fatalf("expected newest first, got %+v", rows)
	}
}

func TestStoreRunLog(t *testing.T) {
	store := tempStore(t)

	if err := store.LogEvent("run-1", "p", "SAE", "pair_error", "generate at scale 40: boom"); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if err := store.LogEvent("run-1", "", "", "run_complete", ""); err != nil {
		t.Fatalf("LogEvent with empty fields: %v", err)
	}
}
