// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rcx holds the word arithmetic and key expansion shared by the
// RC5 and RC6 ciphers. Everything here is written once against the Word
// constraint and instantiated for 16, 32 and 64-bit words.
package rcx // import "github.com/rcfamily/rcx/internal/rcx"

import (
	"encoding/binary"
	"math/bits"
)

// Word is an unsigned machine word. Addition and subtraction wrap modulo
// 2^w, which the key schedule and the round function rely on.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// Magic constants Odd((e-2)·2^w) and Odd((φ-1)·2^w).
const (
	p16 uint16 = 0xB7E1
	q16 uint16 = 0x9E37
	p32 uint32 = 0xB7E15163
	q32 uint32 = 0x9E3779B9
	p64 uint64 = 0xB7E151628AED2A6B
	q64 uint64 = 0x9E3779B97F4A7C15
)

// Bits returns the width of W in bits.
func Bits[W Word]() uint {
	return uint(bits.OnesCount64(uint64(^W(0))))
}

// Size returns the width of W in bytes.
func Size[W Word]() int {
	return int(Bits[W]() / 8)
}

// Magic returns the P and Q constants for the width of W.
func Magic[W Word]() (p, q W) {
	var pw, qw uint64
	switch Bits[W]() {
	case 16:
		pw, qw = uint64(p16), uint64(q16)
	case 32:
		pw, qw = uint64(p32), uint64(q32)
	default:
		pw, qw = p64, q64
	}
	return W(pw), W(qw)
}

// RotateLeft returns x rotated left by n mod w bits. A zero amount leaves x
// unchanged.
func RotateLeft[W Word](x, n W) W {
	w := Bits[W]()
	s := uint(n) & (w - 1)
	if s == 0 {
		return x
	}
	return x<<s | x>>(w-s)
}

// RotateRight returns x rotated right by n mod w bits.
func RotateRight[W Word](x, n W) W {
	w := Bits[W]()
	s := uint(n) & (w - 1)
	if s == 0 {
		return x
	}
	return x>>s | x<<(w-s)
}

// Load decodes the first Size[W]() bytes of b as a little-endian word.
func Load[W Word](b []byte) W {
	switch Bits[W]() {
	case 16:
		return W(binary.LittleEndian.Uint16(b))
	case 32:
		return W(binary.LittleEndian.Uint32(b))
	default:
		return W(binary.LittleEndian.Uint64(b))
	}
}

// Store encodes v into the first Size[W]() bytes of b, little-endian.
func Store[W Word](b []byte, v W) {
	switch Bits[W]() {
	case 16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}
