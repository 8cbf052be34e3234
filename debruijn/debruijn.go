// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debruijn synthesizes and verifies de Bruijn-style sequences, the
// combinatorial property the codec's MNS and SNS sequences are assumed to
// hold (every window of a given length appears at most once in the cyclic
// extension).
//
// The generator is not used by the codec itself — the codec consumes
// whatever sequences its configuration supplies — but is useful for
// building new reference sequences and for the tests in refdata that check
// the shipped sequences actually have the claimed property.
package debruijn

// Generate synthesizes a true de Bruijn sequence over the alphabet
// {0,...,k-1} of order n using the Fredricksen-Kessler-Maiorana (FKM)
// algorithm: every possible length-n string over the alphabet occurs
// exactly once as a window of the returned sequence's cyclic extension.
//
// k and n must be positive.
func Generate(k, n int) []int {
	if k <= 0 || n <= 0 {
		panic("debruijn: k and n must be positive")
	}
	a := make([]int, k*n)
	var seq []int

	var db func(t, p int)
	db = func(t, p int) {
		if t > n {
			if n%p == 0 {
				seq = append(seq, a[1:p+1]...)
			}
			return
		}
		a[t] = a[t-p]
		db(t+1, p)
		for j := a[t-p] + 1; j < k; j++ {
			a[t] = j
			db(t+1, t)
		}
	}
	db(1, 1)
	return seq
}

// IsQuasiDeBruijn reports whether every length-order window of seq's cyclic
// extension (seq with its first order-1 elements appended) is unique. A
// true de Bruijn sequence of matching order always satisfies this; the
// codec only requires the weaker quasi property (each window occurs at
// most once, not necessarily exactly once).
func IsQuasiDeBruijn(seq []int, order int) bool {
	if order <= 0 || order > len(seq) {
		return false
	}
	cyclic := make([]int, len(seq)+order-1)
	copy(cyclic, seq)
	copy(cyclic[len(seq):], seq[:order-1])

	seen := make(map[string]bool, len(seq))
	buf := make([]byte, order)
	for i := 0; i < len(seq); i++ {
		for j := 0; j < order; j++ {
			buf[j] = byte(cyclic[i+j])
		}
		w := string(buf)
		if seen[w] {
			return false
		}
		seen[w] = true
	}
	return true
}
