// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

import "testing"

func TestBitsNumRoundTrip(t *testing.T) {
	nums := [][]int{{0, 1, 2}, {3, 0, 1}}
	m := NumToBits(nums)
	got := BitsToNum(m)
	for r := range nums {
		for c := range nums[r] {
			if got[r][c] != nums[r][c] {
				t.Errorf("BitsToNum(NumToBits(...))[%d][%d] = %d, want %d", r, c, got[r][c], nums[r][c])
			}
		}
	}
}

func TestRot90Identity(t *testing.T) {
	m := NumToBits([][]int{{0, 1, 2, 3}, {1, 2, 3, 0}, {2, 3, 0, 1}})
	if got := Rot90(m, 0); !got.Equal(m) {
		t.Error("Rot90(m, 0) != m")
	}
	if got := Rot90(m, 4); !got.Equal(m) {
		t.Error("Rot90(m, 4) != m")
	}
	if got := Rot90(m, -4); !got.Equal(m) {
		t.Error("Rot90(m, -4) != m")
	}
}

func TestRot90Composition(t *testing.T) {
	m := NumToBits([][]int{{0, 1, 2, 3}, {1, 2, 3, 0}, {2, 3, 0, 1}})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			lhs := Rot90(Rot90(m, i), j)
			rhs := Rot90(m, i+j)
			if !lhs.Equal(rhs) {
				t.Errorf("Rot90(Rot90(m,%d),%d) != Rot90(m,%d)", i, j, i+j)
			}
		}
	}
}

func TestRot90Dims(t *testing.T) {
	m := NewCellMatrix(2, 5)
	if rows, cols := Rot90(m, 1).Dims(); rows != 5 || cols != 2 {
		t.Errorf("Rot90(2x5, 1) dims = (%d,%d), want (5,2)", rows, cols)
	}
	if rows, cols := Rot90(m, 2).Dims(); rows != 2 || cols != 5 {
		t.Errorf("Rot90(2x5, 2) dims = (%d,%d), want (2,5)", rows, cols)
	}
}

func TestRot90NegativeMatchesComplement(t *testing.T) {
	m := NumToBits([][]int{{0, 1, 2}, {3, 0, 1}, {2, 3, 0}})
	for k := 1; k < 4; k++ {
		if !Rot90(m, -k).Equal(Rot90(m, 4-k)) {
			t.Errorf("Rot90(m, %d) != Rot90(m, %d)", -k, 4-k)
		}
	}
}
