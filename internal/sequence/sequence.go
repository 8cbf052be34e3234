// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sequence holds the immutable quasi-de-Bruijn sequences (MNS and
// SNS) the codec is built on, together with their cyclic extensions and a
// byte-keyed substring lookup.
package sequence

import "bytes"

// Sequence is an immutable ordered series of small non-negative integers,
// stored alongside a precomputed cyclic extension (the sequence with its
// first order-1 elements appended) and a byte view of that extension for
// O(|text|) substring search.
type Sequence struct {
	values []byte
	order  int
	cyclic []byte
}

// New builds a Sequence from values (each must fit in a byte, i.e. be in
// [0,256)) with the given cyclic order.
func New(values []int, order int) *Sequence {
	raw := make([]byte, len(values))
	for i, v := range values {
		raw[i] = byte(v)
	}
	cyclic := make([]byte, 0, len(raw)+order-1)
	cyclic = append(cyclic, raw...)
	if order > 1 {
		cyclic = append(cyclic, raw[:order-1]...)
	}
	return &Sequence{values: raw, order: order, cyclic: cyclic}
}

// Len returns the (non-cyclic) sequence length.
func (s *Sequence) Len() int { return len(s.values) }

// At returns the value at index i of the base (non-cyclic) sequence.
func (s *Sequence) At(i int) int { return int(s.values[i]) }

// Order returns the cyclic order the sequence was built with.
func (s *Sequence) Order() int { return s.order }

// CyclicBytes returns the byte-keyed cyclic extension: the sequence with
// its first order-1 elements appended.
func (s *Sequence) CyclicBytes() []byte { return s.cyclic }

// Find returns the position of window in the cyclic extension and true, or
// (0, false) if window does not occur. Since the extension is
// quasi-de-Bruijn at the declared order, the first occurrence is the only
// occurrence for any window that is in fact one of the sequence's unique
// substrings.
func (s *Sequence) Find(window []byte) (int, bool) {
	pos := bytes.Index(s.cyclic, window)
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// IsQuasiDeBruijn reports whether every length-order window of the cyclic
// extension is unique, i.e. whether the sequence actually has the property
// its construction assumes.
func (s *Sequence) IsQuasiDeBruijn() bool {
	seen := make(map[string]bool, len(s.values))
	for i := 0; i < len(s.values); i++ {
		end := i + s.order
		if end > len(s.cyclic) {
			break
		}
		w := string(s.cyclic[i:end])
		if seen[w] {
			return false
		}
		seen[w] = true
	}
	return true
}
