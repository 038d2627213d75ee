// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rcx

// Expand derives a table of t words from key using the RC5 key schedule.
// RC5 asks for t = 2r+2 words, RC6 for t = 2r+4. The caller is responsible
// for bounding len(key) and t.
func Expand[W Word](key []byte, t int) []W {
	u := Size[W]()

	// c words of L hold the key; an empty key still gets one zero word.
	c := (len(key) + u - 1) / u
	if c == 0 {
		c = 1
	}
	l := make([]W, c)
	for i := len(key) - 1; i >= 0; i-- {
		l[i/u] = l[i/u]<<8 + W(key[i])
	}

	p, q := Magic[W]()
	s := make([]W, t)
	s[0] = p
	for i := 1; i < t; i++ {
		s[i] = s[i-1] + q
	}

	var a, b W
	i, j := 0, 0
	for k := 3 * max(t, c); k > 0; k-- {
		s[i] = RotateLeft(s[i]+a+b, 3)
		a = s[i]
		l[j] = RotateLeft(l[j]+a+b, a+b)
		b = l[j]
		i = (i + 1) % t
		j = (j + 1) % c
	}

	clear(l)
	return s
}
