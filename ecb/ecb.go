// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecb applies a block cipher to each block of its input
// independently. Because no state is carried between blocks, large inputs
// are split across goroutines; the output is identical to processing the
// blocks one after another.
//
// ECB leaks equality of plaintext blocks. It exists to transform raw block
// sequences, not to protect messages.
package ecb // import "github.com/rcfamily/rcx/ecb"

import (
	"crypto/cipher"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rcfamily/rcx/internal/subtle"
)

// minParallelBlocks is the smallest span handed to a separate goroutine.
const minParallelBlocks = 256

type mode struct {
	b       cipher.Block
	workers int
	crypt   func(dst, src []byte)
}

// NewEncrypter returns a BlockMode which encrypts with b. At most workers
// goroutines are used; workers <= 0 means runtime.GOMAXPROCS(0).
func NewEncrypter(b cipher.Block, workers int) cipher.BlockMode {
	return newMode(b, workers, b.Encrypt)
}

// NewDecrypter returns a BlockMode which decrypts with b. See NewEncrypter.
func NewDecrypter(b cipher.Block, workers int) cipher.BlockMode {
	return newMode(b, workers, b.Decrypt)
}

func newMode(b cipher.Block, workers int, crypt func(dst, src []byte)) *mode {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &mode{b: b, workers: workers, crypt: crypt}
}

func (x *mode) BlockSize() int { return x.b.BlockSize() }

func (x *mode) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	if len(src)%bs != 0 {
		panic("ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("ecb: output smaller than input")
	}
	dst = dst[:len(src)]
	if subtle.InexactOverlap(dst, src) {
		panic("ecb: invalid buffer overlap")
	}

	n := len(src) / bs
	spans := min(x.workers, n/minParallelBlocks)
	if spans <= 1 {
		x.cryptSpan(dst, src, bs)
		return
	}

	per := (n + spans - 1) / spans * bs
	var g errgroup.Group
	g.SetLimit(x.workers)
	for off := 0; off < len(src); off += per {
		end := min(off+per, len(src))
		d, s := dst[off:end], src[off:end]
		g.Go(func() error {
			x.cryptSpan(d, s, bs)
			return nil
		})
	}
	// Spans never fail; Wait only joins them.
	_ = g.Wait()
}

func (x *mode) cryptSpan(dst, src []byte, bs int) {
	for len(src) > 0 {
		x.crypt(dst[:bs], src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}
