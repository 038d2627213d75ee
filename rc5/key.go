// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc5

import "github.com/rcfamily/rcx/internal/rcx"

// ExpandKey returns the 2·rounds+2 word key table for key. The result is a
// pure function of its inputs.
func ExpandKey[W Word](key []byte, rounds int) ([]W, error) {
	if len(key) > MaxKeySize {
		return nil, KeySizeError(len(key))
	}
	if rounds < 1 || rounds > MaxRounds {
		return nil, RoundsError(rounds)
	}
	return rcx.Expand[W](key, 2*rounds+2), nil
}
