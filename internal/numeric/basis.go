// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

const (
	badFactor   = "numeric: prime factor must be positive"
	badRange    = "numeric: value out of basis range"
	badCoeffLen = "numeric: coefficient vector has wrong length"
)

// MixedRadixBasis represents a positional numeral system with varying
// radices p1,...,pk. The i-th basis is the product of the factors before
// it (b1=1, bi = p1*...*p(i-1)); the represented range is [0, U) where
// U = p1*...*pk.
//
// The order of the prime factors fixes the representation: permuting
// pfactors yields a different (but equally valid) coefficient encoding for
// the same integers.
type MixedRadixBasis struct {
	pfactors []int64
	bases    []int64 // bases[i], ascending, bases[0] == 1
	upper    int64
}

// NewMixedRadixBasis builds a basis from the given prime factors. Every
// factor must be a positive integer.
func NewMixedRadixBasis(pfactors []int) (*MixedRadixBasis, error) {
	if len(pfactors) == 0 {
		return nil, ConfigError{Reason: "numeric: mixed radix basis requires at least one factor"}
	}
	bases := make([]int64, len(pfactors))
	factors := make([]int64, len(pfactors))
	upper := int64(1)
	for i, p := range pfactors {
		if p <= 0 {
			return nil, ConfigError{Reason: badFactor}
		}
		bases[i] = upper
		factors[i] = int64(p)
		upper *= int64(p)
	}
	return &MixedRadixBasis{pfactors: factors, bases: bases, upper: upper}, nil
}

// Upper returns the exclusive upper bound U = prod(pfactors) of the
// represented range.
func (b *MixedRadixBasis) Upper() int64 { return b.upper }

// Project returns the coefficients (c1,...,ck) with n = sum ci*bi and
// 0 <= ci < pi, computed by successive division from the largest basis
// downward.
//
// n must lie in [0, Upper()); Project panics otherwise, since every call
// site in this module projects a value already range-checked against the
// configured delta range before reaching here.
func (b *MixedRadixBasis) Project(n int64) []int64 {
	if n < 0 || n >= b.upper {
		panic(badRange)
	}
	coeffs := make([]int64, len(b.bases))
	for i := len(b.bases) - 1; i >= 0; i-- {
		coeffs[i] = n / b.bases[i]
		n %= b.bases[i]
	}
	return coeffs
}

// ProjectBatch applies Project to every element of ns, returning an
// len(ns) x len(pfactors) coefficient matrix (row-major, one row per
// input).
func (b *MixedRadixBasis) ProjectBatch(ns []int64) [][]int64 {
	out := make([][]int64, len(ns))
	for i, n := range ns {
		out[i] = b.Project(n)
	}
	return out
}

// Reconstruct returns n = sum ci*bi for the given coefficients.
//
// coeffs must have exactly one entry per basis; Reconstruct panics
// otherwise.
func (b *MixedRadixBasis) Reconstruct(coeffs []int64) int64 {
	if len(coeffs) != len(b.bases) {
		panic(badCoeffLen)
	}
	var n int64
	for i, c := range coeffs {
		n += c * b.bases[i]
	}
	return n
}
