// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sequence

import "testing"

func TestSequenceFind(t *testing.T) {
	s := New([]int{0, 0, 1, 1, 0, 1}, 3)
	for _, test := range []struct {
		window []byte
		want   int
		ok     bool
	}{
		{[]byte{0, 0, 1}, 0, true},
		{[]byte{1, 0, 1}, 3, true},
		{[]byte{0, 1, 0}, 4, true}, // wraps into the cyclic extension
		{[]byte{1, 1, 1}, 0, false},
	} {
		got, ok := s.Find(test.window)
		if ok != test.ok {
			t.Errorf("Find(%v): ok = %v, want %v", test.window, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("Find(%v) = %d, want %d", test.window, got, test.want)
		}
	}
}

func TestSequenceAt(t *testing.T) {
	s := New([]int{1, 2, 3}, 2)
	for i, want := range []int{1, 2, 3} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSequenceIsQuasiDeBruijn(t *testing.T) {
	if !New([]int{0, 0, 1}, 2).IsQuasiDeBruijn() {
		t.Error("IsQuasiDeBruijn() = false for a genuine quasi-de-Bruijn sequence, want true")
	}
	// 01, 10, 01 repeats the window "01" twice: not quasi-de-Bruijn.
	if New([]int{0, 1, 0, 1}, 2).IsQuasiDeBruijn() {
		t.Error("IsQuasiDeBruijn() = true for a sequence with a repeated window, want false")
	}
}
