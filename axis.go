// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

// axisDecoder recovers an in-section coordinate along one axis from an
// N x N slice of cell bits, where N is the MNS order and the MNS is
// assumed to run along the rows of the slice passed to decode.
type axisDecoder struct {
	c *Codec
}

// decode implements §4.7: locate each row in the MNS cyclic extension,
// turn consecutive locations into deltas, range-check and mixed-radix
// project the deltas, locate the resulting coefficient columns in the SNS
// cyclic extensions, and CRT-solve the remainders.
func (a *axisDecoder) decode(rows [][]byte) (int64, error) {
	c := a.c
	n := len(rows)
	locs := make([]int64, n)
	for i, row := range rows {
		pos, ok := c.mns.Find(row)
		if !ok {
			return 0, DecodingError{Reason: "MNS row not unique or missing"}
		}
		locs[i] = int64(pos)
	}

	mnsLen := int64(c.mns.Len())
	deltas := make([]int64, n-1)
	for j := 0; j < n-1; j++ {
		d := ((locs[j+1]-locs[j])%mnsLen + mnsLen) % mnsLen
		if d < c.deltaMin || d > c.deltaMax {
			return 0, DecodingError{Reason: "delta value out of range"}
		}
		deltas[j] = d - c.deltaMin
	}

	coeffs := c.basis.ProjectBatch(deltas) // (n-1) x k
	k := len(c.sns)
	remainders := make([]int64, k)
	for i := 0; i < k; i++ {
		window := make([]byte, len(coeffs))
		for j, row := range coeffs {
			window[j] = byte(row[i])
		}
		pos, ok := c.sns[i].Find(window)
		if !ok {
			return 0, DecodingError{Reason: "SNS coefficient window not unique or missing"}
		}
		remainders[i] = int64(pos)
	}

	return c.crt.Solve(remainders), nil
}
