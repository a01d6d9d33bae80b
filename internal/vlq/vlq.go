// Package vlq implements [Variable-length quantity] encoding as used in BER
// for high tag numbers and object identifier components. A VLQ is a base-128
// representation of an unsigned integer where the eighth bit of each byte
// marks continuation.
//
// Values are not limited to 64 bits. Decoding continues in arbitrary
// precision once the native accumulator would overflow.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"codello.dev/asn1tree/bigint"
)

var (
	// ErrTruncated indicates that the input ended before a byte without the
	// continuation bit was found.
	ErrTruncated = errors.New("vlq: missing terminating byte")
	// ErrOverflow indicates that a value does not fit into 64 bits and no
	// arbitrary-precision arithmetic was provided.
	ErrOverflow = errors.New("vlq: value exceeds 64 bits")
	// ErrNotMinimal indicates that a VLQ starts with a 0x80 byte.
	ErrNotMinimal = errors.New("vlq: not minimally encoded")
)

// Decode parses a VLQ from the start of b and returns the number of bytes
// consumed. Values that fit into 64 bits are returned in v. Larger values are
// accumulated using a and returned in big, in which case v is 0. If a is nil
// such values fail with [ErrOverflow]. Errors of a are returned as-is.
//
// Decode accepts leading 0x80 bytes. Use [DecodeMinimal] to reject them.
func Decode(b []byte, a bigint.Arith) (v uint64, big bigint.Int, n int, err error) {
	return decode(b, a, false)
}

// DecodeMinimal works like [Decode] but fails with [ErrNotMinimal] if b starts
// with a 0x80 byte.
func DecodeMinimal(b []byte, a bigint.Arith) (v uint64, big bigint.Int, n int, err error) {
	return decode(b, a, true)
}

func decode(b []byte, a bigint.Arith, minimal bool) (v uint64, big bigint.Int, n int, err error) {
	if minimal && len(b) > 0 && b[0] == 0x80 {
		return 0, nil, 1, ErrNotMinimal
	}
	for n < len(b) {
		c := b[n]
		n++
		switch {
		case big != nil:
			var d bigint.Int
			if d, err = a.FromUint64(uint64(c & 0x7f)); err != nil {
				return 0, nil, n, err
			}
			big = big.Lsh(7).Add(d)
		case v > math.MaxUint64>>7:
			if a == nil {
				return 0, nil, n, ErrOverflow
			}
			var d bigint.Int
			if big, err = a.FromUint64(v); err != nil {
				return 0, nil, n, err
			}
			if d, err = a.FromUint64(uint64(c & 0x7f)); err != nil {
				return 0, nil, n, err
			}
			big = big.Lsh(7).Add(d)
			v = 0
		default:
			v = v<<7 | uint64(c&0x7f)
		}
		if c&0x80 == 0 {
			return v, big, n, nil
		}
	}
	return 0, nil, n, ErrTruncated
}

// Length returns the number of bytes needed to encode n as a VLQ.
func Length[T constraints.Unsigned](n T) int {
	l := 1
	for i := n >> 7; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the VLQ encoding of i to dst and returns the extended slice.
func Append[T constraints.Unsigned](dst []byte, i T) []byte {
	for j := Length(i) - 1; j >= 0; j-- {
		b := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// AppendBytes appends the VLQ encoding of the unsigned big-endian magnitude mag
// to dst and returns the extended slice. Leading zero bytes in mag are ignored.
func AppendBytes(dst []byte, mag []byte) []byte {
	for len(mag) > 0 && mag[0] == 0 {
		mag = mag[1:]
	}
	if len(mag) == 0 {
		return append(dst, 0)
	}
	n := len(mag)*8 - leadingZeros(mag[0])
	for g := (n+6)/7 - 1; g >= 0; g-- {
		var c byte
		for k := 6; k >= 0; k-- {
			pos := g*7 + k
			idx := len(mag) - 1 - pos/8
			if idx >= 0 && mag[idx]>>(pos%8)&1 == 1 {
				c |= 1 << k
			}
		}
		if g > 0 {
			c |= 0x80
		}
		dst = append(dst, c)
	}
	return dst
}

func leadingZeros(b byte) int {
	n := 0
	for mask := byte(0x80); mask != 0 && b&mask == 0; mask >>= 1 {
		n++
	}
	return n
}
