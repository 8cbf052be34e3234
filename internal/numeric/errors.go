// Copyright ©2024 The Anoto Codec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// ConfigError reports a problem with the parameters a numeric component was
// constructed with. It is deliberately a plain local type rather than the
// codec-facing anoto.ConfigError: this package has no dependency on the
// root package, and callers (the codec constructor) translate it into
// anoto.ConfigError when wiring components together.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return e.Reason }
