// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"strconv"
	"strings"
)

// BitStringFromUint64 returns the binary representation of v as a bit string.
// The result is padded with leading zeros up to a multiple of 8 bits and then
// padded with trailing zeros up to minBits.
func BitStringFromUint64(v uint64, minBits int) BitString {
	s := strconv.FormatUint(v, 2)
	if r := len(s) % 8; r != 0 {
		s = strings.Repeat("0", 8-r) + s
	}
	return padBits(s, minBits)
}

// BitStringFromBytes returns the bits of b, most significant bit first,
// padded with trailing zeros up to minBits.
func BitStringFromBytes(b []byte, minBits int) BitString {
	var sb strings.Builder
	sb.Grow(max(len(b)*8, minBits))
	for _, c := range b {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if c&mask != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return padBits(sb.String(), minBits)
}

func padBits(s string, minBits int) BitString {
	if len(s) < minBits {
		s += strings.Repeat("0", minBits-len(s))
	}
	return BitString(s)
}

// Uint64 interprets s as a binary number, most significant bit first. Trailing
// octets consisting entirely of zero bits are treated as padding and ignored,
// so that '11000000' and '11000000 00000000' both yield 192. If the value does
// not fit into a uint64 or s contains characters other than '0' and '1', ok is
// false.
func (s BitString) Uint64() (v uint64, ok bool) {
	for len(s) > 8 && len(s)%8 == 0 && s[len(s)-8:] == "00000000" {
		s = s[:len(s)-8]
	}
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(string(s), 2, 64)
	return v, err == nil
}

// Bytes packs the bits of s into bytes. The last byte is padded with zero bits.
// Characters other than '1' are treated as zero bits.
func (s BitString) Bytes() []byte {
	b := make([]byte, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			b[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b
}

// Len returns the number of bits in s.
func (s BitString) Len() int {
	return len(s)
}
