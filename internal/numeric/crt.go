// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

const badRemainderLen = "numeric: remainder vector has wrong length"

// CRT solves simultaneous congruences via the Chinese Remainder Theorem.
//
// Given pairwise-coprime moduli l1,...,lk and remainders r1,...,rk, there is
// a unique x in [0, L) with x === ri (mod li) for every i, where
// L = l1*...*lk. CRT precomputes, for each modulus li, a coefficient
// ei = si*(L/li) with ei === 1 (mod li) and ei === 0 (mod lj) for j != i,
// using the extended Euclidean algorithm to find si. Solve then sums
// ei*ri mod L, reducing after every term to bound intermediate magnitude.
type CRT struct {
	lengths []int64
	l       int64
	qs      []int64 // si, one per modulus
	es      []int64 // ei = qs[i] * (L/li)
}

// NewCRT builds a CRT solver for the given pairwise-coprime moduli.
// It returns a ConfigError if any two lengths share a common factor.
func NewCRT(lengths []int64) (*CRT, error) {
	if len(lengths) == 0 {
		return nil, ConfigError{Reason: "numeric: crt requires at least one modulus"}
	}
	l := int64(1)
	for _, li := range lengths {
		if li <= 0 {
			return nil, ConfigError{Reason: "numeric: crt modulus must be positive"}
		}
		l *= li
	}
	qs := make([]int64, len(lengths))
	es := make([]int64, len(lengths))
	for i, li := range lengths {
		gi := l / li
		g, _, s := ExtendedEuclid(li, gi)
		if g != 1 {
			return nil, ConfigError{Reason: "numeric: crt moduli must be pairwise coprime"}
		}
		s = ((s % li) + li) % li
		qs[i] = s
		es[i] = s * gi
	}
	return &CRT{lengths: append([]int64(nil), lengths...), l: l, qs: qs, es: es}, nil
}

// L returns the product of the configured moduli.
func (c *CRT) L() int64 { return c.l }

// Qs returns the si coefficients computed at construction, one per
// modulus, in configuration order.
func (c *CRT) Qs() []int64 { return append([]int64(nil), c.qs...) }

// Solve returns the unique x in [0, L) such that x mod lengths[i] ==
// remainders[i] for every i.
func (c *CRT) Solve(remainders []int64) int64 {
	if len(remainders) != len(c.es) {
		panic(badRemainderLen)
	}
	var acc int64
	for i, r := range remainders {
		acc = (acc + (r%c.l)*c.es[i]%c.l) % c.l
	}
	return (acc%c.l + c.l) % c.l
}
