// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"strings"

	"codello.dev/asn1tree"
)

//region [UNIVERSAL 3] BIT STRING

// decodeBitString decodes the contents of a primitive BIT STRING. It returns the
// bits and the number of unused bits in the final octet.
func decodeBitString(b []byte) (string, int, error) {
	if len(b) == 0 {
		return "", 0, errors.New("bit string is missing the unused bits octet")
	}
	unused := int(b[0])
	if unused > 7 {
		return "", 0, fmt.Errorf("bit string has %d unused bits, must be 7 or less", unused)
	}
	if unused > 0 && len(b) == 1 {
		return "", 0, errors.New("empty bit string with unused bits")
	}
	data := b[1:]
	var s strings.Builder
	s.Grow(len(data) * 8)
	for _, c := range data {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if c&mask != 0 {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
		}
	}
	return s.String()[:len(data)*8-unused], unused, nil
}

// appendBitString appends the contents of a primitive BIT STRING to dst. Unused
// bits in the final octet are set to pad.
func appendBitString(dst []byte, s asn1tree.BitString, pad byte) ([]byte, error) {
	if pad != '0' && pad != '1' {
		return dst, fmt.Errorf("%w: bit string padding %q", ErrInvalidArgument, pad)
	}
	if !s.IsValid() {
		return dst, errors.New("bit string contains characters other than 0 and 1")
	}
	unused := (8 - len(s)%8) % 8
	padded := asn1tree.BitString(string(s) + strings.Repeat(string(pad), unused))
	dst = append(dst, byte(unused))
	return append(dst, padded.Bytes()...), nil
}

//endregion
