// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anoto implements the core of a position-coding codec in the
// Anoto family: a two-dimensional dot-pattern code over a very large plane
// where any small window (at least N x N cells, N being the main-sequence
// order) uniquely determines its absolute coordinates within a section
// tile, and additionally identifies which of four 90-degree rotations the
// observed window is in.
//
// The package covers the number-theoretic machinery (mixed-radix basis,
// Chinese Remainder solver, extended Euclidean algorithm, in
// internal/numeric), the sequence data model (internal/sequence), the
// two-axis pattern generator, and the position/section/rotation decoders.
// It deliberately does not cover rendering dots to a drawing surface, I/O,
// command-line packaging, or the choice of concrete sequence constants —
// those are supplied by the caller via Config, or, for worked examples, by
// the sibling refdata package.
package anoto
