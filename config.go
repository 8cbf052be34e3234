// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

// Config is the immutable configuration a Codec is built from.
type Config struct {
	// MNS is the main number sequence: a quasi-de-Bruijn binary sequence
	// of order MNSOrder.
	MNS []int
	// MNSOrder is the order N of MNS; N-1 is the order of every SNS
	// sequence.
	MNSOrder int
	// SNS is the ordered list of secondary number sequences. Their
	// lengths must be pairwise coprime.
	SNS [][]int
	// PFactors are the prime factors the delta range decomposes into,
	// one per SNS sequence, in the same order.
	PFactors []int
	// DeltaRange is the inclusive (min, max) range delta(p) takes values
	// in; DeltaRange[1]-DeltaRange[0]+1 must equal the product of
	// PFactors.
	DeltaRange [2]int
}
