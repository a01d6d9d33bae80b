// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"io"

	"codello.dev/asn1tree"
)

// DefaultMaxPDUSize is the maximum number of bytes a [Decoder] buffers for a
// single data value if [Decoder.MaxPDUSize] is zero.
const DefaultMaxPDUSize = 16 << 20

// readSize is the number of bytes requested from the underlying reader at once.
const readSize = 4096

// maxConsecutiveEmptyReads is the maximum number of empty reads before
// [Decoder] returns [io.ErrNoProgress].
const maxConsecutiveEmptyReads = 100

// Decoder reads a stream of concatenated BER data values. Each call to
// [Decoder.Decode] buffers input until a complete data value is available.
// Decoding is restarted from the beginning of the data value whenever more
// input arrives, so a Decoder works with any [io.Reader].
type Decoder struct {
	// MaxPDUSize limits the number of bytes buffered for a single data value.
	// If zero, DefaultMaxPDUSize is used.
	MaxPDUSize int

	c    *Codec
	r    io.Reader
	tags asn1tree.TagMap
	buf  []byte // unconsumed input
	off  int64  // number of bytes consumed by previous data values
	err  error  // error returned by r
}

// NewDecoder returns a Decoder reading data values from r. Non-universal tags
// are resolved using tags and the tag map of c.
func (c *Codec) NewDecoder(r io.Reader, tags asn1tree.TagMap) *Decoder {
	return &Decoder{c: c, r: r, tags: tags}
}

// InputOffset returns the number of bytes consumed by the data values decoded
// so far.
func (d *Decoder) InputOffset() int64 {
	return d.off
}

// Buffered returns the input that has been read from the underlying reader but
// not been decoded yet. The slice is valid until the next call to Decode.
func (d *Decoder) Buffered() []byte {
	return d.buf
}

// Decode decodes the next data value. At the end of the input Decode returns
// [io.EOF]. If the input ends within a data value, the error is
// [io.ErrUnexpectedEOF]. Errors in the input are reported as [*SyntaxError]
// with offsets relative to the start of the stream.
func (d *Decoder) Decode() (*asn1tree.Node, error) {
	maxSize := d.MaxPDUSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPDUSize
	}
	for {
		if len(d.buf) > 0 {
			n, rest, err := d.c.Decode(d.buf, d.tags)
			if err == nil {
				d.off += int64(len(d.buf) - len(rest))
				d.buf = rest
				return n, nil
			}
			if !errors.Is(err, ErrPartialPDU) {
				return nil, d.relocate(err)
			}
			if len(d.buf) >= maxSize {
				return nil, &SyntaxError{Kind: ErrMalformed, ByteOffset: int(d.off),
					Err: fmt.Errorf("data value exceeds %d bytes", maxSize)}
			}
			d.c.opts.Logger.Debug("partial data value, reading more input", "offset", d.off, "buffered", len(d.buf))
		}
		if d.err != nil {
			if d.err != io.EOF {
				return nil, d.err
			}
			if len(d.buf) == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		d.fill(maxSize - len(d.buf))
	}
}

// fill reads up to limit bytes from the underlying reader into the buffer.
func (d *Decoder) fill(limit int) {
	n := min(readSize, max(limit, 1))
	if cap(d.buf)-len(d.buf) < n {
		buf := make([]byte, len(d.buf), len(d.buf)+max(n, len(d.buf)))
		copy(buf, d.buf)
		d.buf = buf
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		m, err := d.r.Read(d.buf[len(d.buf) : len(d.buf)+n])
		if m < 0 {
			panic("ber: reader returned negative count from Read")
		}
		d.buf = d.buf[:len(d.buf)+m]
		if err != nil {
			d.err = err
			return
		}
		if m > 0 {
			return
		}
	}
	d.err = io.ErrNoProgress
}

// relocate makes the byte offset of a *SyntaxError relative to the start of the
// stream.
func (d *Decoder) relocate(err error) error {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	moved := *se
	moved.ByteOffset += int(d.off)
	return &moved
}
