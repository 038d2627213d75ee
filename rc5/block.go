// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc5

import "github.com/rcfamily/rcx/internal/rcx"

// EncryptBlock encrypts the block (a, b) with a key table produced by
// ExpandKey. The number of rounds is len(table)/2 - 1.
func EncryptBlock[W Word](a, b W, table []W) (W, W) {
	r := tableRounds(table)
	a += table[0]
	b += table[1]
	for i := 1; i <= r; i++ {
		a = rcx.RotateLeft(a^b, b) + table[2*i]
		b = rcx.RotateLeft(b^a, a) + table[2*i+1]
	}
	return a, b
}

// DecryptBlock undoes EncryptBlock under the same table.
func DecryptBlock[W Word](a, b W, table []W) (W, W) {
	r := tableRounds(table)
	for i := r; i >= 1; i-- {
		b = rcx.RotateRight(b-table[2*i+1], a) ^ a
		a = rcx.RotateRight(a-table[2*i], b) ^ b
	}
	return a - table[0], b - table[1]
}

func tableRounds[W Word](table []W) int {
	if len(table) < 2 || len(table)%2 != 0 {
		panic("rc5: malformed key table")
	}
	return len(table)/2 - 1
}
