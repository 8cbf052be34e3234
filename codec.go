// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

import (
	"github.com/dotcodec/anoto/internal/numeric"
	"github.com/dotcodec/anoto/internal/sequence"
)

// Codec encodes and decodes Anoto-family position patterns for a fixed
// configuration. A Codec is immutable after construction and safe for
// concurrent use by multiple goroutines.
type Codec struct {
	mns                *sequence.Sequence
	mnsOrder           int
	sns                []*sequence.Sequence
	basis              *numeric.MixedRadixBasis
	crt                *numeric.CRT
	deltaMin, deltaMax int64
	oracle             *deltaOracle
}

// NewCodec validates cfg and builds a Codec from it. It returns a
// ConfigError if the SNS lengths are not pairwise coprime, the number of
// SNS sequences does not match the number of prime factors, or the product
// of the prime factors does not equal the span of the delta range.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.MNSOrder < 2 {
		return nil, ConfigError{Reason: "mns_order must be at least 2"}
	}
	if len(cfg.SNS) != len(cfg.PFactors) {
		return nil, ConfigError{Reason: "number of SNS sequences must equal number of prime factors"}
	}
	if len(cfg.SNS) == 0 {
		return nil, ConfigError{Reason: "at least one SNS sequence is required"}
	}

	span := 1
	for _, p := range cfg.PFactors {
		if p <= 0 {
			return nil, ConfigError{Reason: "prime factors must be positive"}
		}
		span *= p
	}
	if want := cfg.DeltaRange[1] - cfg.DeltaRange[0] + 1; span != want {
		return nil, ConfigError{Reason: "product of prime factors must equal the delta range span"}
	}

	mns := sequence.New(cfg.MNS, cfg.MNSOrder)
	snsOrder := cfg.MNSOrder - 1
	sns := make([]*sequence.Sequence, len(cfg.SNS))
	lengths := make([]int64, len(cfg.SNS))
	for i, s := range cfg.SNS {
		sns[i] = sequence.New(s, snsOrder)
		lengths[i] = int64(len(s))
	}

	basis, err := numeric.NewMixedRadixBasis(cfg.PFactors)
	if err != nil {
		return nil, ConfigError{Reason: err.Error()}
	}
	crt, err := numeric.NewCRT(lengths)
	if err != nil {
		return nil, ConfigError{Reason: err.Error()}
	}

	return &Codec{
		mns:      mns,
		mnsOrder: cfg.MNSOrder,
		sns:      sns,
		basis:    basis,
		crt:      crt,
		deltaMin: int64(cfg.DeltaRange[0]),
		deltaMax: int64(cfg.DeltaRange[1]),
		oracle:   &deltaOracle{sns: sns, basis: basis, deltaMin: int64(cfg.DeltaRange[0])},
	}, nil
}

// MNSOrder returns the configured MNS order N.
func (c *Codec) MNSOrder() int { return c.mnsOrder }

// MNSLength returns the length of the configured MNS sequence; sections
// tile the plane in MNSLength x MNSLength blocks.
func (c *Codec) MNSLength() int64 { return int64(c.mns.Len()) }

func ceilToMultiple(n, m int) int {
	if n <= 0 {
		return 0
	}
	return ((n + m - 1) / m) * m
}

// EncodeBitmatrix generates a (shape[0], shape[1], 2) bitmatrix for the
// given section, following §4.6: the X channel's column rolls are a
// prefix sum of delta() starting at section[0] mod MNSLength, and the Y
// channel's row rolls likewise start at section[1].
func (c *Codec) EncodeBitmatrix(shape [2]int, section [2]int) *CellMatrix {
	mnsLen := int(c.MNSLength())
	h := ceilToMultiple(shape[0], mnsLen)
	w := ceilToMultiple(shape[1], mnsLen)

	full := NewCellMatrix(h, w)

	roll := ((section[0] % mnsLen) + mnsLen) % mnsLen
	for x := 0; x < w; x++ {
		if x > 0 {
			roll = int((int64(roll) + c.oracle.delta(int64(x-1))) % int64(mnsLen))
			roll = ((roll % mnsLen) + mnsLen) % mnsLen
		}
		for y := 0; y < h; y++ {
			v := c.mns.At((y + roll) % mnsLen)
			full.Set(y, x, 0, uint8(v))
		}
	}

	roll = ((section[1] % mnsLen) + mnsLen) % mnsLen
	for y := 0; y < h; y++ {
		if y > 0 {
			roll = int((int64(roll) + c.oracle.delta(int64(y-1))) % int64(mnsLen))
			roll = ((roll % mnsLen) + mnsLen) % mnsLen
		}
		for x := 0; x < w; x++ {
			v := c.mns.At((x + roll) % mnsLen)
			full.Set(y, x, 1, uint8(v))
		}
	}

	return full.Sub(0, 0, shape[0], shape[1])
}

// integrateRoll returns sum_{i=0}^{pos-1} delta(i) mod MNSLength. It is
// O(pos); decode_section should be called sparingly, or through
// SectionDecoder (delta.go, section.go) when many positions in the same
// section are decoded.
func (c *Codec) integrateRoll(pos int64) int64 {
	var r int64
	for i := int64(0); i < pos; i++ {
		r += c.oracle.delta(i)
	}
	mnsLen := c.MNSLength()
	return ((r % mnsLen) + mnsLen) % mnsLen
}

// DecodePosition recovers the in-section (x,y) coordinate from the top-left
// MNSOrder x MNSOrder corner of bits. It returns a ShapeError if bits is
// smaller than (MNSOrder, MNSOrder, 2), or a DecodingError if bits does not
// decode to a well-formed window.
func (c *Codec) DecodePosition(bits *CellMatrix) (x, y int, err error) {
	rows, cols := bits.Dims()
	n := c.mnsOrder
	if rows < n || cols < n {
		return 0, 0, ShapeError{Op: "decode_position", Got: [2]int{rows, cols}, MinShape: [2]int{n, n}}
	}
	win := bits.Sub(0, 0, n, n)

	xRows := make([][]byte, n)
	for i := 0; i < n; i++ {
		xRows[i] = win.ColBytes(0, i, n, 0)
	}
	yRows := make([][]byte, n)
	for i := 0; i < n; i++ {
		yRows[i] = win.RowBytes(i, 0, n, 1)
	}

	dec := axisDecoder{c: c}
	xv, err := dec.decode(xRows)
	if err != nil {
		return 0, 0, err
	}
	yv, err := dec.decode(yRows)
	if err != nil {
		return 0, 0, err
	}
	return int(xv), int(yv), nil
}

// DecodeSection recovers the section index (u,v) the window was taken
// from, given the already-decoded in-section position pos. See §4.8 for
// the cross-axis subtraction this relies on.
func (c *Codec) DecodeSection(bits *CellMatrix, pos [2]int) (u, v int, err error) {
	return decodeSection(c, bits, pos, c.integrateRoll(int64(pos[0])), c.integrateRoll(int64(pos[1])))
}

// decodeSection implements §4.8's decode_section given precomputed prefix
// sums sx, sy = integrateRoll(pos[0]), integrateRoll(pos[1]); both Codec
// and SectionDecoder share this, differing only in how sx/sy are produced.
func decodeSection(c *Codec, bits *CellMatrix, pos [2]int, sx, sy int64) (u, v int, err error) {
	rows, cols := bits.Dims()
	n := c.mnsOrder
	if rows < n || cols < n {
		return 0, 0, ShapeError{Op: "decode_section", Got: [2]int{rows, cols}, MinShape: [2]int{n, n}}
	}

	pxMNS, ok := c.mns.Find(bits.ColBytes(0, 0, n, 0))
	if !ok {
		return 0, 0, DecodingError{Reason: "failed to find partial sequence in MNS"}
	}
	pyMNS, ok := c.mns.Find(bits.RowBytes(0, 0, n, 1))
	if !ok {
		return 0, 0, DecodingError{Reason: "failed to find partial sequence in MNS"}
	}

	mnsLen := c.MNSLength()
	uu := ((int64(pxMNS)-int64(pos[1])-sx)%mnsLen + mnsLen) % mnsLen
	vv := ((int64(pyMNS)-int64(pos[0])-sy)%mnsLen + mnsLen) % mnsLen
	return int(uu), int(vv), nil
}

// DecodeRotation determines the pattern's rotation in 90-degree
// counter-clockwise steps, returning k such that Rot90(bits, -k) would
// bring it into canonical orientation. It requires both sides of bits to be
// at least MNSOrder+2 and tests all four rotations via a majority vote over
// row/column MNS lookups (§4.8, §9).
func (c *Codec) DecodeRotation(bits *CellMatrix) (int, error) {
	rows, cols := bits.Dims()
	n := c.mnsOrder + 2
	if rows < n || cols < n {
		return 0, ShapeError{Op: "decode_rotation", Got: [2]int{rows, cols}, MinShape: [2]int{n, n}}
	}
	m := rows
	if cols < m {
		m = cols
	}
	square := bits.Sub(0, 0, m, m)

	for k := 0; k < 4; k++ {
		rot := Rot90(square, k)
		xOK, yOK := 0, 0
		for i := 0; i < m; i++ {
			if _, ok := c.mns.Find(rot.ColBytes(0, i, m, 0)); ok {
				xOK++
			}
			if _, ok := c.mns.Find(rot.RowBytes(i, 0, m, 1)); ok {
				yOK++
			}
		}
		if xOK > m/2 && yOK > m/2 {
			return (4 - k) % 4, nil
		}
	}
	return 0, DecodingError{Reason: "failed to determine pattern orientation"}
}
