// SPDX-License-Identifier: MIT

package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmmbench/csr"
)

// tokenSep separates tokens on a row line.
const tokenSep = ' '

// WriteValues writes the stored values of m, one row per line.
func WriteValues(w io.Writer, m *csr.Matrix) error {
	return writeRows(w, m, func(vals []int64, _ []int, k int) int64 { return vals[k] })
}

// WriteColumns writes the stored column indices of m, one row per line.
func WriteColumns(w io.Writer, m *csr.Matrix) error {
	return writeRows(w, m, func(_ []int64, cols []int, k int) int64 { return int64(cols[k]) })
}

// writeRows emits RowLength(i) tokens for every row i, picked by pick.
func writeRows(w io.Writer, m *csr.Matrix, pick func([]int64, []int, int) int64) error {
	bw := bufio.NewWriter(w)
	var scratch []byte
	for i := 0; i < m.Size(); i++ {
		vals, cols, err := m.Row(i)
		if err != nil {
			return err
		}
		for k := range vals {
			if k > 0 {
				if err = bw.WriteByte(tokenSep); err != nil {
					return err
				}
			}
			scratch = strconv.AppendInt(scratch[:0], pick(vals, cols, k), 10)
			if _, err = bw.Write(scratch); err != nil {
				return err
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read rebuilds a csr.Matrix from a values file and a columns file. Row
// lengths are inferred by counting tokens; the two files must agree line by
// line.
//
// Errors: ErrBadToken, csr.ErrMalformed.
func Read(values, columns io.Reader) (*csr.Matrix, error) {
	valRows, err := readRows(values)
	if err != nil {
		return nil, fmt.Errorf("store.Read: values: %w", err)
	}
	colRows, err := readRows(columns)
	if err != nil {
		return nil, fmt.Errorf("store.Read: columns: %w", err)
	}

	cols := make([][]int, len(colRows))
	for i, row := range colRows {
		cols[i] = make([]int, len(row))
		for k, c := range row {
			cols[i][k] = int(c)
		}
	}

	m, err := csr.FromRows(valRows, cols)
	if err != nil {
		return nil, fmt.Errorf("store.Read: %w", err)
	}

	return m, nil
}

// readRows parses one []int64 per line; blank lines become empty rows so
// that csr.FromRows reports them.
func readRows(r io.Reader) ([][]int64, error) {
	var rows [][]int64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30) // long rows for large, dense-ish matrices
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		row := make([]int64, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d token %q: %w", line, f, ErrBadToken)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
