// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"math"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/bigint"
)

//region [UNIVERSAL 2] INTEGER

var errEmptyInteger = errors.New("integer must not be empty")

// decodeInt decodes a two's complement integer. Values that do not fit into an
// int64 are decoded using a.
func decodeInt(b []byte, a bigint.Arith) (asn1tree.Int, error) {
	if len(b) == 0 {
		return asn1tree.Int{}, errEmptyInteger
	}
	if len(b) <= 8 {
		v := int64(int8(b[0])) // sign extension
		for _, c := range b[1:] {
			v = v<<8 | int64(c)
		}
		return asn1tree.NewInt(v), nil
	}

	neg := b[0]&0x80 != 0
	mag := b
	if neg {
		mag = make([]byte, len(b))
		for i, c := range b {
			mag[i] = ^c
		}
	}
	x, err := a.FromBytes(mag)
	if err != nil {
		return asn1tree.Int{}, err
	}
	if neg {
		one, err := a.FromUint64(1)
		if err != nil {
			return asn1tree.Int{}, err
		}
		x = x.Add(one).Neg()
	}
	return asn1tree.ParseInt(x.String())
}

// appendInt appends the minimal two's complement encoding of i to dst. Values
// outside the range of an int64 are encoded using a.
func appendInt(dst []byte, i asn1tree.Int, a bigint.Arith) ([]byte, error) {
	if v, ok := i.Int64(); ok {
		// For negative values encode the inverted bits of |v|-1.
		if v < 0 {
			return appendTwosComplement(dst, uint64Bytes(uint64(-(v + 1))), true), nil
		}
		return appendTwosComplement(dst, uint64Bytes(uint64(v)), false), nil
	}
	x, err := a.Parse(i.String())
	if err != nil {
		return dst, err
	}
	neg := x.Sign() < 0
	m := x.Abs()
	if neg {
		one, err := a.FromUint64(1)
		if err != nil {
			return dst, err
		}
		m = m.Sub(one)
	}
	return appendTwosComplement(dst, m.Bytes(), neg), nil
}

// appendTwosComplement appends the two's complement representation of a value
// to dst. For non-negative values mag is the magnitude, for negative values mag
// is the magnitude minus one. Leading zeros of mag must have been removed.
func appendTwosComplement(dst []byte, mag []byte, neg bool) []byte {
	var pad byte
	if neg {
		pad = 0xFF
	}
	if len(mag) == 0 || mag[0]&0x80 != 0 {
		dst = append(dst, pad)
	}
	for _, c := range mag {
		dst = append(dst, c^pad)
	}
	return dst
}

// uint64Bytes returns the big-endian representation of v without leading
// zeros.
func uint64Bytes(v uint64) []byte {
	var b []byte
	for ; v > 0; v >>= 8 {
		b = append(b, byte(v))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

//endregion

//region [UNIVERSAL 9] REAL

// decodeReal decodes the special real values zero, PLUS-INFINITY and
// MINUS-INFINITY.
func decodeReal(b []byte) (asn1tree.Value, error) {
	switch {
	case len(b) == 0:
		return asn1tree.Real(0), nil
	case len(b) == 1 && b[0] == 0x40:
		return asn1tree.Real(math.Inf(1)), nil
	case len(b) == 1 && b[0] == 0x41:
		return asn1tree.Real(math.Inf(-1)), nil
	}
	return nil, fmt.Errorf("%w: real encoding % X", ErrNotImplemented, b)
}

func encodeReal(f float64) ([]byte, error) {
	switch {
	case f == 0:
		return nil, nil
	case math.IsInf(f, 1):
		return []byte{0x40}, nil
	case math.IsInf(f, -1):
		return []byte{0x41}, nil
	}
	return nil, fmt.Errorf("%w: real value %v", ErrNotImplemented, f)
}

//endregion
