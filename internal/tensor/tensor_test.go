package tensor

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

func writeNpy(t *testing.T, path string, m *mat.Dense) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := npyio.Write(f, m); err != nil {
		t.Fatalf("write npy: %v", err)
	}
}

func writeNpz(t *testing.T, path string, tensors map[string]*mat.Dense) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, m := range tensors {
		w, err := zw.Create(name + ".npy")
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if err := npyio.Write(w, m); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestReadNpyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.npy")
	want := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	writeNpy(t, path, want)

	got, err := ReadNpy(path)
	if err != nil {
		t.Fatalf("ReadNpy: %v", err)
	}
	if !mat.EqualApprox(got, want, 1e-12) {
		t.Fatalf("read tensor differs:\ngot %v\nwant %v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestReadNpyMissingFile(t *testing.T) {
	_, err := ReadNpy(filepath.Join(t.TempDir(), "absent.npy"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file-not-found to propagate, got %v", err)
	}
}

func TestReadNpzRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.npz")
	w := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewDense(1, 2, []float64{0.5, -0.5})
	writeNpz(t, path, map[string]*mat.Dense{"W": w, "b": b})

	got, err := ReadNpz(path, "W", "b")
	if err != nil {
		t.Fatalf("ReadNpz: %v", err)
	}
	if !mat.EqualApprox(got["W"], w, 1e-12) {
		t.Fatal("W differs after round trip")
	}
	if !mat.EqualApprox(got["b"], b, 1e-12) {
		t.Fatal("b differs after round trip")
	}
}

func TestReadNpzMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.npz")
	writeNpz(t, path, map[string]*mat.Dense{"W": mat.NewDense(1, 1, []float64{1})})

	_, err := ReadNpz(path, "W", "b")
	if err == nil {
		t.Fatal("expected error for missing tensor key")
	}
}

func TestAsVec(t *testing.T) {
	row := mat.NewDense(1, 3, []float64{1, 2, 3})
	v, err := AsVec(row)
	if err != nil {
		t.Fatalf("AsVec row: %v", err)
	}
	if v.Len() != 3 || v.AtVec(2) != 3 {
		t.Fatalf("unexpected row vector: %v", v)
	}

	col := mat.NewDense(3, 1, []float64{4, 5, 6})
	v, err = AsVec(col)
	if err != nil {
		t.Fatalf("AsVec col: %v", err)
	}
	if v.Len() != 3 || v.AtVec(0) != 4 {
		t.Fatalf("unexpected col vector: %v", v)
	}

	if _, err := AsVec(mat.NewDense(2, 2, nil)); err == nil {
		t.Fatal("expected error for 2x2 matrix")
	}
}
