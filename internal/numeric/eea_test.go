// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "testing"

func TestExtendedEuclid(t *testing.T) {
	for _, test := range []struct {
		a, b    int64
		wantG   int64
	}{
		{240, 46, 2},
		{46, 240, 2},
		{17, 0, 17},
		{0, 17, 17},
		{236, 233, 1},
		{233, 31, 1},
	} {
		g, r, s := ExtendedEuclid(test.a, test.b)
		if g != test.wantG {
			t.Errorf("ExtendedEuclid(%d,%d): gcd = %d, want %d", test.a, test.b, g, test.wantG)
		}
		if got := test.a*r + test.b*s; got != g {
			t.Errorf("ExtendedEuclid(%d,%d): bezout identity failed: %d*%d+%d*%d = %d, want %d",
				test.a, test.b, test.a, r, test.b, s, got, g)
		}
	}
}
