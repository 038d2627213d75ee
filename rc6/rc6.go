/*
Package rc6 implements the RC6 block cipher with 32-bit words and a 16 byte
block.

RC6 (Rivest cipher 6) is a symmetric key block cipher derived from RC5. It was designed by Ron Rivest, Matt Robshaw, Ray Sidney, and Yiqun Lisa Yin to meet the requirements of the Advanced Encryption Standard (AES) competition.

It shares RC5's key schedule: the same P and Q constants and the same
mixing pass, producing 2r+4 words instead of 2r+2. Keys may be 0 to 255
bytes long; 16, 24 and 32 bytes are the common sizes.

Abstract paraphrased from Wikipedia: https://en.wikipedia.org/wiki/RC6

Based on an implementation ©2017 by Jon Jenkins <jon@mj12.su>. Released under MIT license.
*/
package rc6 // import "github.com/rcfamily/rcx/rc6"

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"math/bits"
	"strconv"

	"github.com/rcfamily/rcx/internal/rcx"
	"github.com/rcfamily/rcx/internal/subtle"
)

// BlockSize is the RC6 block size in bytes.
const BlockSize = 16

const defaultRounds = 20

type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc6: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is an RC6 key schedule. It implements cipher.Block.
type Cipher struct {
	rounds   int
	keySched []uint32
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns an RC6-32/20 cipher for key.
func NewCipher(key []byte) (*Cipher, error) {
	return NewCipherRounds(key, defaultRounds)
}

// NewCipherRounds is like NewCipher with a caller chosen round count
// between 1 and 255.
func NewCipherRounds(key []byte, rounds int) (*Cipher, error) {
	if len(key) > 255 {
		return nil, KeySizeError(len(key))
	}
	if rounds < 1 || rounds > 255 {
		return nil, errors.New("rc6: invalid round count " + strconv.Itoa(rounds))
	}
	return &Cipher{
		rounds:   rounds,
		keySched: rcx.Expand[uint32](key, 2*rounds+4),
	}, nil
}

// BlockSize returns the block size of RC6, which is always 16.
func (*Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts one block of data.
func (c *Cipher) Encrypt(dst, src []byte) {
	check(dst, src)
	s := c.keySched
	a := binary.LittleEndian.Uint32(src[0:])
	b := binary.LittleEndian.Uint32(src[4:])
	cc := binary.LittleEndian.Uint32(src[8:])
	d := binary.LittleEndian.Uint32(src[12:])

	b += s[0]
	d += s[1]
	for i := 1; i <= c.rounds; i++ {
		t := bits.RotateLeft32(b*(2*b+1), 5)
		u := bits.RotateLeft32(d*(2*d+1), 5)
		a = rcx.RotateLeft(a^t, u) + s[2*i]
		cc = rcx.RotateLeft(cc^u, t) + s[2*i+1]
		a, b, cc, d = b, cc, d, a
	}
	a += s[2*c.rounds+2]
	cc += s[2*c.rounds+3]

	binary.LittleEndian.PutUint32(dst[0:], a)
	binary.LittleEndian.PutUint32(dst[4:], b)
	binary.LittleEndian.PutUint32(dst[8:], cc)
	binary.LittleEndian.PutUint32(dst[12:], d)
}

// Decrypt decrypts one block of data.
func (c *Cipher) Decrypt(dst, src []byte) {
	check(dst, src)
	s := c.keySched
	a := binary.LittleEndian.Uint32(src[0:])
	b := binary.LittleEndian.Uint32(src[4:])
	cc := binary.LittleEndian.Uint32(src[8:])
	d := binary.LittleEndian.Uint32(src[12:])

	cc -= s[2*c.rounds+3]
	a -= s[2*c.rounds+2]
	for i := c.rounds; i >= 1; i-- {
		a, b, cc, d = d, a, b, cc
		u := bits.RotateLeft32(d*(2*d+1), 5)
		t := bits.RotateLeft32(b*(2*b+1), 5)
		cc = rcx.RotateRight(cc-s[2*i+1], t) ^ u
		a = rcx.RotateRight(a-s[2*i], u) ^ t
	}
	d -= s[1]
	b -= s[0]

	binary.LittleEndian.PutUint32(dst[0:], a)
	binary.LittleEndian.PutUint32(dst[4:], b)
	binary.LittleEndian.PutUint32(dst[8:], cc)
	binary.LittleEndian.PutUint32(dst[12:], d)
}

func check(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rc6: invalid buffer overlap")
	}
}
