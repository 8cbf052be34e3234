// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refdata provides the reference MNS/SNS sequence constants used
// throughout the Anoto patent literature, and ready-made anoto.Config
// values built from them. The codec itself treats sequence data as an
// external collaborator (anoto.Config); refdata is that collaborator for
// the worked examples and tests.
package refdata

import "github.com/dotcodec/anoto"

// MNS is the main number sequence: a quasi-de-Bruijn sequence of order 6
// and length 63.
//
// References:
//
//	Anoto AB "Method and device for decoding a position-coding pattern"
//	https://patentimages.storage.googleapis.com/b8/ef/c2/046cdc9e044b9e/US7999798.pdf
//	Aboufadel, Armstrong, Smietana. "Position coding." arXiv:0706.0869 (2007).
var MNS = []int{
	0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0,
	1, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 0,
	1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0,
	1, 1, 1, 1, 0, 0, 0, 1, 1,
}

// A1 is the secondary number sequence for the a1 coefficient: order 5,
// length 236.
var A1 = []int{
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 2, 0, 1, 0, 0, 1, 0, 1, 0,
	0, 2, 0, 0, 0, 1, 1, 0, 0, 0, 1, 2, 0, 0, 1, 0, 2, 0, 0,
	2, 0, 2, 0, 1, 1, 0, 1, 0, 1, 1, 0, 2, 0, 1, 2, 0, 1, 0,
	1, 2, 0, 2, 1, 0, 0, 1, 1, 1, 0, 1, 1, 1, 1, 0, 2, 1, 0,
	1, 0, 2, 1, 1, 0, 0, 1, 2, 1, 0, 1, 1, 2, 0, 0, 0, 2, 1,
	0, 2, 0, 2, 1, 1, 1, 0, 0, 2, 1, 2, 0, 1, 1, 1, 2, 0, 2,
	0, 0, 1, 1, 2, 1, 0, 0, 0, 2, 2, 0, 1, 0, 2, 2, 0, 0, 1,
	2, 2, 0, 2, 0, 2, 2, 1, 0, 1, 2, 1, 2, 1, 0, 2, 1, 2, 1,
	1, 0, 2, 2, 1, 2, 1, 2, 0, 2, 2, 0, 2, 2, 2, 0, 1, 1, 2,
	2, 1, 1, 0, 1, 2, 2, 2, 2, 1, 2, 0, 0, 2, 2, 1, 1, 2, 1,
	2, 2, 1, 0, 2, 2, 2, 2, 2, 0, 2, 1, 2, 2, 2, 1, 1, 1, 2,
	1, 1, 2, 0, 1, 2, 2, 1, 2, 2, 0, 1, 2, 1, 1, 1, 1, 2, 2,
	2, 0, 0, 2, 1, 1, 2, 2,
}

// A2 is the secondary number sequence for the a2 coefficient: order 5,
// length 233.
var A2 = []int{
	0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 2, 0, 1, 0, 0, 1, 0, 1, 0,
	1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 2, 0,
	0, 0, 1, 2, 0, 1, 0, 1, 2, 1, 0, 0, 0, 2, 1, 1, 1, 0, 1,
	1, 1, 0, 2, 1, 0, 0, 1, 2, 1, 2, 1, 0, 1, 0, 2, 0, 1, 1,
	0, 2, 0, 0, 1, 0, 2, 1, 2, 0, 0, 0, 2, 2, 0, 0, 1, 1, 2,
	0, 2, 0, 0, 2, 0, 2, 0, 1, 2, 0, 0, 2, 2, 1, 1, 0, 0, 2,
	1, 0, 1, 1, 2, 1, 0, 2, 0, 2, 2, 1, 0, 0, 2, 2, 2, 1, 0,
	1, 2, 2, 0, 0, 2, 1, 2, 2, 1, 1, 1, 1, 1, 2, 0, 0, 1, 2,
	2, 1, 2, 0, 1, 1, 1, 2, 1, 1, 2, 0, 1, 2, 1, 1, 1, 2, 2,
	0, 2, 2, 0, 1, 1, 2, 2, 2, 2, 1, 2, 1, 2, 2, 0, 1, 2, 2,
	2, 0, 2, 0, 2, 1, 1, 2, 2, 1, 0, 2, 2, 0, 2, 1, 0, 2, 1,
	1, 0, 2, 2, 2, 2, 0, 1, 0, 2, 2, 1, 2, 2, 2, 1, 1, 2, 1,
	2, 0, 2, 2, 2,
}

// A3 is the secondary number sequence for the a3 coefficient: order 5,
// length 31.
var A3 = []int{
	0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0,
	1, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1,
}

// A4 is the original patent-literature secondary number sequence for the
// a4 coefficient: order 5, length 241. It is known to violate the
// quasi-de-Bruijn property (see A4Alt below):
// several length-5 substrings of its cyclic extension repeat, which can
// cause position decoding to fail or disagree with the expected location
// as early as position 217.
var A4 = []int{
	0, 0, 0, 0, 0, 1, 0, 2, 0, 0, 0, 0, 2, 0, 0, 2, 0, 1, 0, 0, 0, 1, 1, 2, 0, 0, 0,
	1, 2, 0, 0, 2, 1, 0, 0, 0, 2, 1, 1, 2, 0, 1, 0, 1, 0, 0, 1, 2, 1, 0, 0, 1, 0, 0, 2, 2, 0, 0,
	0, 2, 2, 1, 0, 2, 0, 1, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 0, 1, 2, 0, 1, 1, 1, 1, 0, 0, 2, 0,
	2, 0, 1, 2, 0, 2, 2, 0, 1, 0, 2, 1, 0, 1, 2, 1, 1, 0, 1, 1, 1, 2, 2, 0, 0, 1, 0, 1, 2, 2, 2,
	0, 0, 2, 2, 2, 0, 1, 2, 1, 2, 0, 2, 0, 0, 1, 2, 2, 0, 1, 1, 2, 1, 0, 2, 1, 1, 0, 2, 0, 2, 1,
	2, 0, 0, 1, 1, 0, 2, 1, 2, 1, 0, 1, 0, 2, 2, 0, 2, 1, 0, 2, 2, 1, 1, 1, 2, 0, 2, 1, 1, 1, 0,
	2, 2, 2, 2, 0, 2, 0, 2, 2, 1, 2, 1, 1, 1, 1, 2, 1, 2, 1, 2, 2, 2, 1, 0, 0, 2, 1, 2, 2, 1, 0,
	1, 1, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 2, 0, 1, 2, 2, 1, 2, 2, 0, 2, 2, 2, 1, 1, 1,
}

// A4Alt is an alternative a4 coefficient sequence of the correct
// quasi-de-Bruijn length-5 order, replacing the broken A4 above. Using it
// breaks wire compatibility with genuine Anoto hardware, but restores the
// uniqueness guarantee the codec relies on. Which of A4/A4Alt is
// "correct" is an open question inherited from the source material (see
// SPEC_FULL.md §9); both are provided so callers can choose.
var A4Alt = []int{
	0, 0, 0, 0, 2, 2, 2, 2, 0, 2, 2, 2, 1, 0, 2, 2, 2, 0, 0, 2, 2, 1,
	2, 0, 2, 2, 1, 1, 0, 2, 2, 1, 0, 0, 2, 2, 0, 0, 0, 2, 1, 2, 2, 0,
	2, 1, 2, 1, 0, 2, 1, 2, 0, 0, 2, 1, 1, 2, 0, 2, 1, 1, 1, 0, 2, 1,
	1, 0, 0, 2, 1, 0, 0, 0, 2, 0, 2, 2, 0, 2, 0, 2, 1, 0, 2, 0, 2, 0,
	0, 2, 0, 1, 0, 0, 2, 0, 0, 0, 0, 1, 2, 2, 2, 0, 1, 2, 2, 1, 0, 1,
	2, 2, 0, 0, 1, 2, 1, 2, 0, 1, 2, 1, 1, 0, 1, 2, 1, 0, 0, 1, 2, 0,
	0, 0, 1, 1, 2, 2, 0, 1, 1, 2, 1, 0, 1, 1, 2, 0, 0, 1, 1, 1, 2, 0,
	1, 1, 1, 1, 2, 2, 2, 2, 1, 2, 2, 2, 1, 1, 2, 2, 1, 1, 1, 2, 1, 2,
	2, 1, 2, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 1, 1, 0,
	0, 0, 1, 0, 2, 2, 0, 1, 0, 2, 1, 0, 1, 0, 2, 0, 0, 1, 0, 1, 2, 0,
	2, 0, 1, 2, 0, 1, 0, 1, 1, 0, 2, 0, 1, 1, 0, 1, 0, 1, 0, 0, 1,
}

// pfactors and deltaRange are shared by both variants of the reference
// configuration: delta(p) in [5,58] decomposes via mixed-radix bases
// (3,3,2,3), whose product (54) matches the 58-5+1 span.
var (
	pfactors   = []int{3, 3, 2, 3}
	deltaRange = [2]int{5, 58}
)

// Config6x6 returns the canonical 6x6-order Anoto configuration, using the
// original (quasi-de-Bruijn-broken) A4 sequence, as published in the
// patent literature.
func Config6x6() anoto.Config {
	return anoto.Config{
		MNS:        MNS,
		MNSOrder:   6,
		SNS:        [][]int{A1, A2, A3, A4},
		PFactors:   pfactors,
		DeltaRange: deltaRange,
	}
}

// Config6x6A4Fixed returns the same configuration as Config6x6, but with
// A4Alt in place of the broken A4, restoring the quasi-de-Bruijn property
// at the cost of Anoto hardware compatibility.
func Config6x6A4Fixed() anoto.Config {
	return anoto.Config{
		MNS:        MNS,
		MNSOrder:   6,
		SNS:        [][]int{A1, A2, A3, A4Alt},
		PFactors:   pfactors,
		DeltaRange: deltaRange,
	}
}
