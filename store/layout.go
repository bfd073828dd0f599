// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/spmmbench/csr"
)

// dirPerm is the mode of created result directories.
const dirPerm = 0o755

// Layout places run output under Root as <Root>/<size>/<schedule>/.
type Layout struct {
	Root string
}

// Files lists the paths written by Persist.
type Files struct {
	Values  string
	Columns string
	Log     string
}

// Dir returns the directory of one (size, schedule) pair.
func (l Layout) Dir(size int, schedule string) string {
	return filepath.Join(l.Root, strconv.Itoa(size), schedule)
}

// Ensure creates Dir(size, schedule) and its parents.
func (l Layout) Ensure(size int, schedule string) (string, error) {
	dir := l.Dir(size, schedule)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("store.Ensure(%s): %w: %w", dir, ErrNotPersisted, err)
	}

	return dir, nil
}

// ValuesName is values_p<prob>_t<threads>.txt.
func ValuesName(p float64, threads int) string {
	return "values_p" + probText(p) + "_t" + strconv.Itoa(threads) + ".txt"
}

// ColumnsName is columns_p<prob>_t<threads>.txt.
func ColumnsName(p float64, threads int) string {
	return "columns_p" + probText(p) + "_t" + strconv.Itoa(threads) + ".txt"
}

// LogName is log_p<prob>_t<threads>_<schedule>.txt.
func LogName(p float64, threads int, schedule string) string {
	return "log_p" + probText(p) + "_t" + strconv.Itoa(threads) + "_" + schedule + ".txt"
}

// Paths returns the three file paths of a run without touching the disk.
func (l Layout) Paths(ri RunInfo) Files {
	dir := l.Dir(ri.Size, ri.Schedule)

	return Files{
		Values:  filepath.Join(dir, ValuesName(ri.Probability, ri.Threads)),
		Columns: filepath.Join(dir, ColumnsName(ri.Probability, ri.Threads)),
		Log:     filepath.Join(dir, LogName(ri.Probability, ri.Threads, ri.Schedule)),
	}
}

// Persist writes the product m as a values file and a columns file, plus the
// run log for ri. Existing files are truncated.
// Implementation:
//   - Stage 1: create <Root>/<size>/<schedule>.
//   - Stage 2: write values, columns and log, each through its own file.
//
// Errors:
//   - ErrNotPersisted wrapping the underlying I/O error. Files written before
//     the failure are left in place.
func Persist(l Layout, ri RunInfo, m *csr.Matrix) (Files, error) {
	if m == nil {
		return Files{}, fmt.Errorf("store.Persist: nil product: %w", ErrNotPersisted)
	}
	if _, err := l.Ensure(ri.Size, ri.Schedule); err != nil {
		return Files{}, err
	}
	files := l.Paths(ri)

	if err := writeFile(files.Values, func(w io.Writer) error { return WriteValues(w, m) }); err != nil {
		return files, err
	}
	if err := writeFile(files.Columns, func(w io.Writer) error { return WriteColumns(w, m) }); err != nil {
		return files, err
	}
	if err := writeFile(files.Log, func(w io.Writer) error { return WriteRunLog(w, ri) }); err != nil {
		return files, err
	}

	return files, nil
}

// Load reads back the product written by Persist for ri.
func Load(l Layout, ri RunInfo) (*csr.Matrix, error) {
	files := l.Paths(ri)
	vf, err := os.Open(files.Values)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}
	defer vf.Close()
	cf, err := os.Open(files.Columns)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}
	defer cf.Close()

	return Read(vf, cf)
}

// writeFile creates path, runs fill on it and closes it, joining a close
// error with a write error.
func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w: %w", path, ErrNotPersisted, err)
	}
	err = errors.Join(fill(f), f.Close())
	if err != nil {
		return fmt.Errorf("store: write %s: %w: %w", path, ErrNotPersisted, err)
	}

	return nil
}
