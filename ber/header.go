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
	"codello.dev/asn1tree/internal/vlq"
)

// header represents the identifier and length octets of an encoded data value.
// Length is the number of contents octets.
type header struct {
	Tag         asn1tree.Tag
	Constructed bool
	Length      int
}

// cursor is the read position of a decoding operation within a bounded region
// of the input. The region ends at end, which is either the end of the input or
// the end of the enclosing constructed value.
type cursor struct {
	data []byte
	off  int
	end  int
}

// remaining returns the number of bytes left in the region of c.
func (c *cursor) remaining() int {
	return c.end - c.off
}

// bytes returns the unread bytes of the region of c.
func (c *cursor) bytes() []byte {
	return c.data[c.off:c.end]
}

// decodeHeader reads the identifier and length octets at cur. If root is true,
// running out of input is reported as ErrPartialPDU, otherwise as ErrMalformed.
// On success cur is positioned at the first contents octet.
func (d *decoder) decodeHeader(cur *cursor, root bool) (h header, err error) {
	start := cur.off
	if cur.remaining() < 1 {
		return h, d.truncated(root, start, h.Tag, errTruncated)
	}
	b := cur.data[cur.off]
	cur.off++
	h.Tag.Class = asn1tree.Class(b >> 6)
	h.Constructed = b&0x20 == 0x20
	h.Tag.Number = asn1tree.Uint(uint64(b & 0x1f))

	// If the bottom five bits are set, then the tag number is base 128 encoded
	// in the following octets.
	if b&0x1f == 0x1f {
		v, big, n, err := vlq.DecodeMinimal(cur.bytes(), d.opts.Arith)
		cur.off += n
		if errors.Is(err, vlq.ErrTruncated) {
			return h, d.truncated(root, start, asn1tree.Tag{}, errors.New("truncated high tag number"))
		} else if err != nil {
			return h, d.wrap(start, asn1tree.Tag{}, err)
		}
		h.Tag.Number = asn1tree.Uint(v)
		if big != nil {
			if h.Tag.Number, err = asn1tree.ParseNumber(big.String()); err != nil {
				return h, d.wrap(start, asn1tree.Tag{}, err)
			}
		}
	}

	if cur.remaining() < 1 {
		return h, d.truncated(root, start, h.Tag, errors.New("missing length octet"))
	}
	b = cur.data[cur.off]
	cur.off++
	switch {
	case b&0x80 == 0:
		// The length is encoded in the bottom 7 bits.
		h.Length = int(b)
	case b == 0x80:
		return h, d.wrap(start, h.Tag, errIndefinite)
	case b == 0xff:
		return h, d.wrap(start, h.Tag, errReservedLength)
	default:
		// Bottom 7 bits give the number of length bytes to follow.
		numBytes := int(b & 0x7f)
		if cur.remaining() < numBytes {
			return h, d.truncated(root, start, h.Tag, fmt.Errorf("expected %d length octets, received %d", numBytes, cur.remaining()))
		}
		for _, c := range cur.data[cur.off : cur.off+numBytes] {
			if h.Length > math.MaxInt>>8 {
				return h, d.wrap(start, h.Tag, errLengthTooLarge)
			}
			h.Length = h.Length<<8 | int(c)
		}
		cur.off += numBytes
		if err = d.profile.CheckLongLength(h.Length, numBytes); err != nil {
			return h, d.wrap(start, h.Tag, err)
		}
	}
	return h, nil
}

// appendHeader appends the identifier and length octets of h to dst. Tag
// numbers that do not fit into 64 bits are encoded using a.
func appendHeader(dst []byte, h header, a bigint.Arith) ([]byte, error) {
	b := byte(h.Tag.Class) << 6
	if h.Constructed {
		b |= 0x20
	}
	num, ok := h.Tag.Number.Uint64()
	switch {
	case ok && num < 31:
		dst = append(dst, b|byte(num))
	case ok:
		dst = vlq.Append(append(dst, b|0x1f), num)
	default:
		x, err := a.Parse(h.Tag.Number.String())
		if err != nil {
			return dst, err
		}
		dst = vlq.AppendBytes(append(dst, b|0x1f), x.Bytes())
	}
	return appendLength(dst, h.Length), nil
}

// appendLength appends the definite length l to dst using the short form if
// possible and the minimal long form otherwise.
func appendLength(dst []byte, l int) []byte {
	if l < 128 {
		return append(dst, byte(l))
	}
	numBytes := 1
	for v := l; v > 255; v >>= 8 {
		numBytes++
	}
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(l>>(8*i)))
	}
	return dst
}
