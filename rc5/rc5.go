// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rc5 implements the RC5 block cipher with a variable word size
(16, 32 or 64 bits), a variable number of rounds and keys of up to 255
bytes, as described by Rivest in "The RC5 Encryption Algorithm" (1994).

A block is a pair of little-endian words, so RC5-32 has an 8 byte block.
Blocks are transformed independently of each other; the package offers no
chaining mode and applies no padding. Input that is not a whole number of
blocks is rejected.

RC5 is a legacy design. It is provided for interoperability with existing
data and must not be used in new protocols.
*/
package rc5 // import "github.com/rcfamily/rcx/rc5"

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"strconv"

	"github.com/rcfamily/rcx/ecb"
	"github.com/rcfamily/rcx/internal/rcx"
)

const (
	// DefaultRounds is the round count used when zero is requested.
	DefaultRounds = 12
	// MaxRounds is the largest supported round count.
	MaxRounds = 255
	// MaxKeySize is the largest supported key, in bytes.
	MaxKeySize = 255
)

// Word is the set of word types RC5 can be instantiated with.
type Word = rcx.Word

// ErrInvalidInputLength is returned by Encrypt and Decrypt when the input is
// not a whole number of blocks.
var ErrInvalidInputLength = errors.New("rc5: input not full blocks")

type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(k))
}

type RoundsError int

func (r RoundsError) Error() string {
	return "rc5: invalid round count " + strconv.Itoa(int(r))
}

type WordSizeError int

func (w WordSizeError) Error() string {
	return "rc5: invalid word size " + strconv.Itoa(int(w))
}

// BlockSize returns the block size in bytes for a word size in bits, or 0
// if width is not 16, 32 or 64.
func BlockSize(width int) int {
	switch width {
	case 16, 32, 64:
		return 2 * width / 8
	}
	return 0
}

// Encrypt encrypts plaintext with an RC5 key of the given word width and
// round count, one block at a time. A rounds value of zero selects
// DefaultRounds. len(plaintext) must be a multiple of BlockSize(width).
func Encrypt(key, plaintext []byte, width, rounds int) ([]byte, error) {
	return crypt(key, plaintext, width, rounds, ecb.NewEncrypter)
}

// Decrypt is the inverse of Encrypt.
func Decrypt(key, ciphertext []byte, width, rounds int) ([]byte, error) {
	return crypt(key, ciphertext, width, rounds, ecb.NewDecrypter)
}

func crypt(key, in []byte, width, rounds int, mode func(cipher.Block, int) cipher.BlockMode) ([]byte, error) {
	if rounds == 0 {
		rounds = DefaultRounds
	}
	b, err := NewCipher(key, width, rounds)
	if err != nil {
		return nil, err
	}
	bs := b.BlockSize()
	if len(in)%bs != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidInputLength, len(in), bs)
	}
	out := make([]byte, len(in))
	mode(b, 0).CryptBlocks(out, in)
	return out, nil
}
