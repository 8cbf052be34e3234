// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

import "fmt"

// ConfigError reports an invalid codec configuration: non-coprime SNS
// lengths, a prime-factor product that doesn't match the delta range, or a
// mismatch between the number of SNS sequences and prime factors.
// ConfigError always aborts construction; it is never returned from a
// decode or encode call.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "anoto: config error: " + e.Reason }

// ShapeError reports that a bit matrix passed to the codec has the wrong
// dimensionality or is too small for the requested operation.
type ShapeError struct {
	Op       string
	Got      [2]int
	MinShape [2]int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("anoto: %s: expected at least a (%d,%d,2) matrix, got (%d,%d,2)",
		e.Op, e.MinShape[0], e.MinShape[1], e.Got[0], e.Got[1])
}

// DecodingError reports that the codec could not recognize the input as a
// well-formed Anoto window: a row or column could not be located in its
// sequence, a delta fell outside the configured range, or the rotation
// could not be resolved. DecodingError never triggers recovery or retry;
// the core has no forward error correction.
type DecodingError struct {
	Reason string
}

func (e DecodingError) Error() string { return "anoto: decoding error: " + e.Reason }
