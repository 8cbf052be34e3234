// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto_test

import (
	"testing"

	"golang.org/x/exp/rand"

	. "github.com/dotcodec/anoto"
	"github.com/dotcodec/anoto/refdata"
)

// TestDecodeRoundTripRandomPositions exercises the encode/decode_position/
// decode_section/decode_rotation chain over randomly sampled positions and
// rotations, rather than a fixed stride, to catch off-by-ones a regular
// sampling grid might step over.
func TestDecodeRoundTripRandomPositions(t *testing.T) {
	c := mustCodec(t)
	rnd := rand.New(rand.NewSource(1))

	shape := [2]int{300, 300}
	section := [2]int{6, 21}
	full := c.EncodeBitmatrix(shape, section)

	n := c.MNSOrder()
	rotWindow := n + 2

	for i := 0; i < 200; i++ {
		x := rnd.Intn(shape[1] - n)
		y := rnd.Intn(shape[0] - n)

		win := full.Sub(y, x, n, n)
		gotX, gotY, err := c.DecodePosition(win)
		if err != nil {
			t.Fatalf("DecodePosition at (%d,%d): %v", x, y, err)
		}
		if gotX != x || gotY != y {
			t.Fatalf("DecodePosition at (%d,%d) = (%d,%d), want (%d,%d)", x, y, gotX, gotY, x, y)
		}

		u, v, err := c.DecodeSection(win, [2]int{gotX, gotY})
		if err != nil {
			t.Fatalf("DecodeSection at (%d,%d): %v", x, y, err)
		}
		if u != section[0] || v != section[1] {
			t.Fatalf("DecodeSection at (%d,%d) = (%d,%d), want (%d,%d)", x, y, u, v, section[0], section[1])
		}

		if x+rotWindow <= shape[1] && y+rotWindow <= shape[0] {
			square := full.Sub(y, x, rotWindow, rotWindow)
			k := rnd.Intn(4)
			rotated := Rot90(square, k)
			gotK, err := c.DecodeRotation(rotated)
			if err != nil {
				t.Fatalf("DecodeRotation at (%d,%d) k=%d: %v", x, y, k, err)
			}
			if gotK != k {
				t.Fatalf("DecodeRotation at (%d,%d) k=%d got %d", x, y, k, gotK)
			}
		}
	}
}

// TestRefdataA4FixedRoundTrip runs a smaller version of the same check
// against the quasi-de-Bruijn-fixed configuration, using refdata directly.
func TestRefdataA4FixedRoundTrip(t *testing.T) {
	c, err := NewCodec(refdata.Config6x6A4Fixed())
	if err != nil {
		t.Fatalf("NewCodec(Config6x6A4Fixed()): %v", err)
	}
	rnd := rand.New(rand.NewSource(2))

	shape := [2]int{200, 200}
	section := [2]int{1, 1}
	full := c.EncodeBitmatrix(shape, section)
	n := c.MNSOrder()

	for i := 0; i < 50; i++ {
		x := rnd.Intn(shape[1] - n)
		y := rnd.Intn(shape[0] - n)
		win := full.Sub(y, x, n, n)
		gotX, gotY, err := c.DecodePosition(win)
		if err != nil {
			t.Fatalf("DecodePosition at (%d,%d): %v", x, y, err)
		}
		if gotX != x || gotY != y {
			t.Fatalf("DecodePosition at (%d,%d) = (%d,%d), want (%d,%d)", x, y, gotX, gotY, x, y)
		}
	}
}
