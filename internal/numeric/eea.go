// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric implements the number-theoretic machinery the codec
// builds on: the extended Euclidean algorithm, a mixed-radix coefficient
// basis, and a Chinese Remainder solver.
package numeric

// ExtendedEuclid returns g, r, s such that g = gcd(a,b) = r*a + s*b.
//
// a and b must be non-negative. s may be negative; callers that need a
// residue in [0,a) should reduce it themselves.
func ExtendedEuclid(a, b int64) (g, r, s int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := ExtendedEuclid(b%a, a)
	return g, y1 - (b/a)*x1, x1
}
