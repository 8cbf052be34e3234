// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCRTSolveSmall(t *testing.T) {
	c, err := NewCRT([]int64{3, 4, 5})
	if err != nil {
		t.Fatalf("NewCRT: %v", err)
	}
	if got, want := c.L(), int64(60); got != want {
		t.Fatalf("L() = %d, want %d", got, want)
	}
	if got, want := c.Solve([]int64{0, 3, 4}), int64(39); got != want {
		t.Errorf("Solve([0,3,4]) = %d, want %d", got, want)
	}
}

func TestCRTReferenceLengths(t *testing.T) {
	c, err := NewCRT([]int64{236, 233, 31, 241})
	if err != nil {
		t.Fatalf("NewCRT: %v", err)
	}
	want := []int64{135, 145, 17, 62}
	if diff := cmp.Diff(want, c.Qs()); diff != "" {
		t.Errorf("Qs() mismatch (-want +got):\n%s", diff)
	}
	if got, want := c.Solve([]int64{97, 0, 3, 211}), int64(170326961); got != want {
		t.Errorf("Solve(...) = %d, want %d", got, want)
	}
}

func TestCRTNonCoprimeRejected(t *testing.T) {
	if _, err := NewCRT([]int64{4, 6}); err == nil {
		t.Error("NewCRT([4,6]): want error for non-coprime lengths, got nil")
	}
}

func TestCRTRoundTrip(t *testing.T) {
	lengths := []int64{3, 4, 5}
	c, err := NewCRT(lengths)
	if err != nil {
		t.Fatalf("NewCRT: %v", err)
	}
	for p := int64(0); p < c.L(); p++ {
		rem := make([]int64, len(lengths))
		for i, l := range lengths {
			rem[i] = p % l
		}
		if got := c.Solve(rem); got != p {
			t.Errorf("Solve(remainders of %d) = %d, want %d", p, got, p)
		}
	}
}
