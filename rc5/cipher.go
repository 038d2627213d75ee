// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc5

import (
	"crypto/cipher"

	"github.com/rcfamily/rcx/internal/rcx"
	"github.com/rcfamily/rcx/internal/subtle"
)

// Cipher is an RC5 instance with a fixed key, word type and round count.
// A *Cipher implements cipher.Block and is safe for concurrent use.
type Cipher[W Word] struct {
	rounds int
	s      []W
}

var (
	_ cipher.Block = (*Cipher[uint16])(nil)
	_ cipher.Block = (*Cipher[uint32])(nil)
	_ cipher.Block = (*Cipher[uint64])(nil)
)

// New creates an RC5 cipher over words of type W. The key may be 0 to 255
// bytes long and rounds must be between 1 and MaxRounds.
func New[W Word](key []byte, rounds int) (*Cipher[W], error) {
	s, err := ExpandKey[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return &Cipher[W]{rounds: rounds, s: s}, nil
}

// NewCipher creates an RC5 cipher.Block with a word width chosen at run
// time: 16, 32 or 64 bits.
func NewCipher(key []byte, width, rounds int) (cipher.Block, error) {
	switch width {
	case 16:
		return newBlock[uint16](key, rounds)
	case 32:
		return newBlock[uint32](key, rounds)
	case 64:
		return newBlock[uint64](key, rounds)
	}
	return nil, WordSizeError(width)
}

func newBlock[W Word](key []byte, rounds int) (cipher.Block, error) {
	c, err := New[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// BlockSize returns two words' worth of bytes.
func (c *Cipher[W]) BlockSize() int { return 2 * rcx.Size[W]() }

// Rounds returns the round count the cipher was created with.
func (c *Cipher[W]) Rounds() int { return c.rounds }

// KeyTable returns a copy of the expanded key.
func (c *Cipher[W]) KeyTable() []W {
	return append([]W(nil), c.s...)
}

func (c *Cipher[W]) Encrypt(dst, src []byte) {
	c.check(dst, src)
	u := rcx.Size[W]()
	a, b := EncryptBlock(rcx.Load[W](src), rcx.Load[W](src[u:]), c.s)
	rcx.Store(dst, a)
	rcx.Store(dst[u:], b)
}

func (c *Cipher[W]) Decrypt(dst, src []byte) {
	c.check(dst, src)
	u := rcx.Size[W]()
	a, b := DecryptBlock(rcx.Load[W](src), rcx.Load[W](src[u:]), c.s)
	rcx.Store(dst, a)
	rcx.Store(dst[u:], b)
}

func (c *Cipher[W]) check(dst, src []byte) {
	bs := c.BlockSize()
	if len(src) < bs {
		panic("rc5: input not full block")
	}
	if len(dst) < bs {
		panic("rc5: output not full block")
	}
	if subtle.InexactOverlap(dst[:bs], src[:bs]) {
		panic("rc5: invalid buffer overlap")
	}
}
