// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

// CellMatrix is a dense (Rows,Cols,2) matrix of 0/1 cell bits, backed by a
// single owned slice with bounds-checked accessors — the same role
// mat.Dense plays for the teacher's float64 matrices, adapted to the
// codec's 2-bit cells.
//
// The zero value is not usable; construct with NewCellMatrix.
type CellMatrix struct {
	rows, cols int
	data       []uint8 // row-major, index(r,c,ch) = (r*cols+c)*2+ch
}

// NewCellMatrix allocates a zeroed (rows,cols,2) cell matrix.
func NewCellMatrix(rows, cols int) *CellMatrix {
	if rows < 0 || cols < 0 {
		panic("anoto: negative matrix dimension")
	}
	return &CellMatrix{rows: rows, cols: cols, data: make([]uint8, rows*cols*2)}
}

// Dims returns the number of rows and columns.
func (m *CellMatrix) Dims() (rows, cols int) { return m.rows, m.cols }

func (m *CellMatrix) index(r, c, ch int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols || (ch != 0 && ch != 1) {
		panic("anoto: cell matrix index out of range")
	}
	return (r*m.cols+c)*2 + ch
}

// At returns the bit at (row, col, channel). channel must be 0 (x) or 1 (y).
func (m *CellMatrix) At(row, col, channel int) uint8 {
	return m.data[m.index(row, col, channel)]
}

// Set stores v (must be 0 or 1) at (row, col, channel).
func (m *CellMatrix) Set(row, col, channel int, v uint8) {
	m.data[m.index(row, col, channel)] = v
}

// Sub returns a newly allocated copy of the (rows,cols,2) window starting
// at (row0, col0).
func (m *CellMatrix) Sub(row0, col0, rows, cols int) *CellMatrix {
	out := NewCellMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, 0, m.At(row0+r, col0+c, 0))
			out.Set(r, c, 1, m.At(row0+r, col0+c, 1))
		}
	}
	return out
}

// RowBytes returns a freshly allocated byte window of length `length` for
// channel starting at (row, col0): bytes[i] = At(row, col0+i, channel).
func (m *CellMatrix) RowBytes(row, col0, length, channel int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(m.At(row, col0+i, channel))
	}
	return out
}

// ColBytes returns a freshly allocated byte window of length `length` for
// channel starting at (row0, col): bytes[i] = At(row0+i, col, channel).
func (m *CellMatrix) ColBytes(row0, col, length, channel int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(m.At(row0+i, col, channel))
	}
	return out
}

// Equal reports whether m and o have identical dimensions and cell values.
func (m *CellMatrix) Equal(o *CellMatrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
