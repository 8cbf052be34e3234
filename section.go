// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

// SectionDecoder wraps a Codec with a growable prefix-sum cache so that
// repeated DecodeSection calls against positions in the same neighborhood
// amortize the O(pos) roll integration (§4.8, §5).
//
// Unlike Codec, SectionDecoder is mutable and is not safe for concurrent
// use by multiple goroutines without external synchronization.
type SectionDecoder struct {
	c      *Codec
	prefix []int64 // prefix[i] = sum_{j=0}^{i-1} delta(j), unreduced
}

// NewSectionDecoder returns a SectionDecoder backed by c.
func NewSectionDecoder(c *Codec) *SectionDecoder {
	return &SectionDecoder{c: c, prefix: []int64{0}}
}

// integrateRoll returns the same value as Codec.integrateRoll, extending
// the cache as needed.
func (d *SectionDecoder) integrateRoll(pos int64) int64 {
	for int64(len(d.prefix)) <= pos {
		i := int64(len(d.prefix)) - 1
		d.prefix = append(d.prefix, d.prefix[i]+d.c.oracle.delta(i))
	}
	mnsLen := d.c.MNSLength()
	return ((d.prefix[pos] % mnsLen) + mnsLen) % mnsLen
}

// DecodeSection behaves like Codec.DecodeSection, but reuses the cached
// prefix sum across calls.
func (d *SectionDecoder) DecodeSection(bits *CellMatrix, pos [2]int) (u, v int, err error) {
	sx := d.integrateRoll(int64(pos[0]))
	sy := d.integrateRoll(int64(pos[1]))
	return decodeSection(d.c, bits, pos, sx, sy)
}
