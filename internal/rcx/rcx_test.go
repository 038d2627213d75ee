// Copyright 2026 The rcx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rcx

import (
	"bytes"
	"math/bits"
	"slices"
	"testing"
	"testing/quick"
)

func TestBits(t *testing.T) {
	if got := Bits[uint16](); got != 16 {
		t.Errorf("Bits[uint16] = %d", got)
	}
	if got := Bits[uint32](); got != 32 {
		t.Errorf("Bits[uint32] = %d", got)
	}
	if got := Bits[uint64](); got != 64 {
		t.Errorf("Bits[uint64] = %d", got)
	}
	if got := Size[uint64](); got != 8 {
		t.Errorf("Size[uint64] = %d", got)
	}
}

func TestMagic(t *testing.T) {
	p16, q16 := Magic[uint16]()
	p32, q32 := Magic[uint32]()
	p64, q64 := Magic[uint64]()
	if p16 != 0xB7E1 || q16 != 0x9E37 {
		t.Errorf("w=16: got P=%#x Q=%#x", p16, q16)
	}
	if p32 != 0xB7E15163 || q32 != 0x9E3779B9 {
		t.Errorf("w=32: got P=%#x Q=%#x", p32, q32)
	}
	if p64 != 0xB7E151628AED2A6B || q64 != 0x9E3779B97F4A7C15 {
		t.Errorf("w=64: got P=%#x Q=%#x", p64, q64)
	}
}

func TestRotateMatchesMathBits(t *testing.T) {
	f32 := func(x, n uint32) bool {
		return RotateLeft(x, n) == bits.RotateLeft32(x, int(n&31)) &&
			RotateRight(x, n) == bits.RotateLeft32(x, -int(n&31))
	}
	if err := quick.Check(f32, nil); err != nil {
		t.Error(err)
	}
	f16 := func(x, n uint16) bool {
		return RotateLeft(x, n) == bits.RotateLeft16(x, int(n&15)) &&
			RotateRight(x, n) == bits.RotateLeft16(x, -int(n&15))
	}
	if err := quick.Check(f16, nil); err != nil {
		t.Error(err)
	}
	f64 := func(x, n uint64) bool {
		return RotateLeft(x, n) == bits.RotateLeft64(x, int(n&63)) &&
			RotateRight(RotateLeft(x, n), n) == x
	}
	if err := quick.Check(f64, nil); err != nil {
		t.Error(err)
	}
}

func TestRotateEdgeAmounts(t *testing.T) {
	const x uint32 = 0x80000001
	for _, n := range []uint32{0, 32, 64, 0xFFFFFFE0} {
		if got := RotateLeft(x, n); got != x {
			t.Errorf("RotateLeft(%#x, %d) = %#x, want identity", x, n, got)
		}
		if got := RotateRight(x, n); got != x {
			t.Errorf("RotateRight(%#x, %d) = %#x, want identity", x, n, got)
		}
	}
	if got := RotateLeft(x, 33); got != 0x00000003 {
		t.Errorf("RotateLeft(%#x, 33) = %#x", x, got)
	}
	if got := RotateLeft(uint16(0x8001), 17); got != 0x0003 {
		t.Errorf("RotateLeft16 by 17 = %#x", got)
	}
}

func TestLoadStore(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if got := Load[uint16](b); got != 0x0201 {
		t.Errorf("Load16 = %#x", got)
	}
	if got := Load[uint32](b); got != 0x04030201 {
		t.Errorf("Load32 = %#x", got)
	}
	if got := Load[uint64](b); got != 0x0807060504030201 {
		t.Errorf("Load64 = %#x", got)
	}
	out := make([]byte, 8)
	Store(out, uint64(0x0807060504030201))
	if !bytes.Equal(out, b) {
		t.Errorf("Store64 = %x", out)
	}
	out = make([]byte, 4)
	Store(out, uint32(0x04030201))
	if !bytes.Equal(out, b[:4]) {
		t.Errorf("Store32 = %x", out)
	}
}

var expandTests = []struct {
	name string
	got  func() []uint64
	want []uint64
}{
	{
		name: "empty key w=32 t=4",
		got:  func() []uint64 { return widen(Expand[uint32](nil, 4)) },
		want: []uint64{0xd1ce682a, 0x71b3f2bb, 0x1727b96c, 0x3329bb3a},
	},
	{
		name: "one byte key w=16 t=4",
		got:  func() []uint64 { return widen(Expand[uint16]([]byte{0x01}, 4)) },
		want: []uint64{0xc8dd, 0x36e4, 0xc1be, 0x212a},
	},
}

func widen[W Word](s []W) []uint64 {
	out := make([]uint64, len(s))
	for i, v := range s {
		out[i] = uint64(v)
	}
	return out
}

func TestExpand(t *testing.T) {
	for _, tt := range expandTests {
		got := tt.got()
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d words, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: S[%d] = %#x, want %#x", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExpandLongKey(t *testing.T) {
	// More key words than table words exercises the max(t, c) bound.
	key := bytes.Repeat([]byte{0xA5}, 255)
	s := Expand[uint16](key, 4)
	if len(s) != 4 {
		t.Fatalf("got %d words", len(s))
	}
	if s2 := Expand[uint16](key, 4); !slices.Equal(s, s2) {
		t.Errorf("Expand is not deterministic")
	}
}

