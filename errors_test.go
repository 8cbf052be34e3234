// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoto

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	for _, test := range []struct {
		name string
		err  error
		want string
	}{
		{"config", ConfigError{Reason: "bad factors"}, "bad factors"},
		{"decoding", DecodingError{Reason: "not found"}, "not found"},
		{"shape", ShapeError{Op: "decode_position", Got: [2]int{2, 2}, MinShape: [2]int{6, 6}}, "decode_position"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if !strings.Contains(test.err.Error(), test.want) {
				t.Errorf("%T.Error() = %q, want it to contain %q", test.err, test.err.Error(), test.want)
			}
		})
	}
}
