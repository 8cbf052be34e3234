// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

import (
	"github.com/dotcodec/anoto/internal/numeric"
	"github.com/dotcodec/anoto/internal/sequence"
)

// deltaOracle computes delta(p), the difference value between adjacent MNS
// rolls, from the base (non-cyclic) SNS sequences and the mixed-radix
// basis the delta range decomposes into.
type deltaOracle struct {
	sns      []*sequence.Sequence
	basis    *numeric.MixedRadixBasis
	deltaMin int64
}

// delta returns delta(pos): for each SNS sequence i, take the coefficient
// at index pos mod len(SNS[i]) of the base sequence (not its cyclic
// extension), then reconstruct delta = deltaMin + sum ci*bi.
func (d *deltaOracle) delta(pos int64) int64 {
	coeffs := make([]int64, len(d.sns))
	for i, s := range d.sns {
		r := pos % int64(s.Len())
		coeffs[i] = int64(s.At(int(r)))
	}
	return d.deltaMin + d.basis.Reconstruct(coeffs)
}
