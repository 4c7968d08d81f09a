// Package tensor reads weight tensors from NumPy .npy files and .npz
// archives into gonum matrices.
package tensor

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// #region npy

// ReadNpy reads a single 1-D or 2-D .npy tensor. 1-D tensors come back as a
// single-row matrix.
func ReadNpy(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("read npy %s: %w", path, err)
	}
	return &m, nil
}

// #endregion npy

// #region npz

// ReadNpz reads the named tensors from a .npz archive. Every requested key
// must be present, either as "<key>" or "<key>.npy". Extra archive entries
// are ignored.
func ReadNpz(path string, keys ...string) (map[string]*mat.Dense, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[strings.TrimSuffix(f.Name, ".npy")] = f
	}

	out := make(map[string]*mat.Dense, len(keys))
	for _, key := range keys {
		f, ok := entries[key]
		if !ok {
			return nil, fmt.Errorf("npz %s: missing tensor %q", path, key)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("npz %s: open %q: %w", path, key, err)
		}
		var m mat.Dense
		err = npyio.Read(rc, &m)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("npz %s: read %q: %w", path, key, err)
		}
		out[key] = &m
	}
	return out, nil
}

// #endregion npz

// #region vec

// AsVec flattens a single-row or single-column matrix into a VecDense.
func AsVec(m *mat.Dense) (*mat.VecDense, error) {
	r, c := m.Dims()
	switch {
	case r == 1:
		return mat.NewVecDense(c, mat.Row(nil, 0, m)), nil
	case c == 1:
		return mat.NewVecDense(r, mat.Col(nil, 0, m)), nil
	default:
		return nil, fmt.Errorf("tensor is %dx%d, not a vector", r, c)
	}
}

// #endregion vec
