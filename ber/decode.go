// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"codello.dev/asn1tree"
)

// Decode decodes the data value at the start of data. Tags in namespaces other
// than [asn1tree.ClassUniversal] are resolved using tags and the tag map of c.
// Unmapped tags produce [asn1tree.Incomplete] values.
//
// Decode returns the bytes following the decoded data value in rest. The number
// of bytes consumed is len(data)-len(rest). This can be used to split a stream
// of concatenated data values.
//
// If data is empty the error is [ErrInvalidArgument]. If data ends before the
// outermost data value is complete the error is [ErrPartialPDU]. Callers can
// retry with more data in this case. All other decoding errors are
// [ErrMalformed] or [ErrNotImplemented].
func (c *Codec) Decode(data []byte, tags asn1tree.TagMap) (n *asn1tree.Node, rest []byte, err error) {
	switch len(data) {
	case 0:
		return nil, data, &SyntaxError{Kind: ErrInvalidArgument, Err: errEmpty}
	case 1:
		return nil, data, &SyntaxError{Kind: ErrPartialPDU, Err: errTruncated}
	}
	d := &decoder{Codec: c, tags: c.tagMap(tags)}
	cur := &cursor{data: data, end: len(data)}
	if n, err = d.decodeNode(cur, true, 0); err != nil {
		return nil, data, err
	}
	return n, data[cur.off:], nil
}

// Complete decodes the contents of an [asn1tree.Incomplete] node as kind. The
// tag and constructed flag of n are kept. This is used to resolve values whose
// type only becomes known after decoding, such as the contents of an
// ASN.1 CHOICE.
func (c *Codec) Complete(n *asn1tree.Node, kind asn1tree.Kind, tags asn1tree.TagMap) (*asn1tree.Node, error) {
	if n == nil {
		return nil, &SyntaxError{Kind: ErrInvalidArgument, Err: errNoValue}
	}
	raw, ok := n.Value.(asn1tree.Incomplete)
	if !ok {
		return nil, &SyntaxError{Kind: ErrInvalidArgument, Tag: n.Tag, Err: fmt.Errorf("cannot complete a %v value", n.Kind())}
	}
	if kind == asn1tree.KindIncomplete || !kind.IsValid() {
		return nil, &SyntaxError{Kind: ErrInvalidArgument, Tag: n.Tag, Err: fmt.Errorf("invalid kind %v", kind)}
	}
	d := &decoder{Codec: c, tags: c.tagMap(tags)}
	h := header{Tag: n.Tag, Constructed: n.Constructed, Length: len(raw)}
	v, err := d.decodeValue(h, kind, cursor{data: raw, end: len(raw)}, 0)
	if err != nil {
		return nil, d.wrap(0, n.Tag, err)
	}
	ret := &asn1tree.Node{Tag: n.Tag, Constructed: n.Constructed, Value: v}
	if err = d.profile.CheckNode(ret); err != nil {
		return nil, d.wrap(0, n.Tag, err)
	}
	return ret, nil
}

// decoder holds the state of a single decoding operation.
type decoder struct {
	*Codec
	tags asn1tree.TagMap
}

// truncated returns the error for input that ended prematurely. At the root of
// a decoding operation this is ErrPartialPDU. Within a constructed value the
// enclosing length bounds the data, so running out of data is ErrMalformed.
func (d *decoder) truncated(root bool, off int, tag asn1tree.Tag, err error) error {
	kind := ErrMalformed
	if root {
		kind = ErrPartialPDU
	}
	return &SyntaxError{Kind: kind, ByteOffset: off, Tag: tag, Err: err}
}

// wrap converts err into a *SyntaxError at the given offset. Errors that are
// already a *SyntaxError are returned unchanged.
func (d *decoder) wrap(off int, tag asn1tree.Tag, err error) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		return err
	}
	return &SyntaxError{Kind: classify(err), ByteOffset: off, Tag: tag, Err: err}
}

// resolve returns the kind used to decode a value tagged t.
func (d *decoder) resolve(t asn1tree.Tag) (asn1tree.Kind, bool) {
	if t.Class == asn1tree.ClassUniversal {
		return asn1tree.KindForUniversal(t.Number)
	}
	return d.tags.Lookup(t)
}

// decodeNode decodes the data value at cur and advances cur past it.
func (d *decoder) decodeNode(cur *cursor, root bool, depth int) (*asn1tree.Node, error) {
	start := cur.off
	if depth > d.opts.MaxDepth {
		return nil, d.wrap(start, asn1tree.Tag{}, errMaxDepth)
	}
	h, err := d.decodeHeader(cur, root)
	if err != nil {
		return nil, err
	}
	if h.Length > cur.remaining() {
		return nil, d.truncated(root, start, h.Tag, fmt.Errorf("expected byte length %d, received %d", h.Length, cur.remaining()))
	}
	body := cursor{data: cur.data, off: cur.off, end: cur.off + h.Length}
	cur.off = body.end

	n := &asn1tree.Node{Tag: h.Tag, Constructed: h.Constructed}
	kind, ok := d.resolve(h.Tag)
	switch {
	case ok:
		if n.Value, err = d.decodeValue(h, kind, body, depth); err != nil {
			return nil, d.wrap(start, h.Tag, err)
		}
	case h.Tag.Class == asn1tree.ClassUniversal:
		return nil, d.wrap(start, h.Tag, errors.New("no decoder for universal tag"))
	default:
		d.opts.Logger.Debug("deferring unmapped tag", "tag", h.Tag, "offset", start, "length", h.Length)
		n.Value = asn1tree.Incomplete(clone(body.bytes()))
	}
	if err = d.profile.CheckNode(n); err != nil {
		return nil, d.wrap(start, h.Tag, err)
	}
	return n, nil
}

// decodeValue decodes the contents octets in body as kind.
func (d *decoder) decodeValue(h header, kind asn1tree.Kind, body cursor, depth int) (asn1tree.Value, error) {
	switch {
	case kind == asn1tree.KindSequence || kind == asn1tree.KindSet:
		if !h.Constructed {
			return nil, fmt.Errorf("%v must be constructed", kind)
		}
		return d.decodeChildren(kind, body, depth)
	case h.Constructed && (kind.IsString() || kind == asn1tree.KindBitString):
		return d.decodeSegmented(kind, body, depth)
	case h.Constructed:
		return nil, fmt.Errorf("%v must be primitive", kind)
	}

	contents := body.bytes()
	if err := d.profile.CheckContents(kind, contents); err != nil {
		return nil, err
	}
	switch kind {
	case asn1tree.KindBoolean:
		if len(contents) != 1 {
			return nil, fmt.Errorf("boolean must have length 1, got %d", len(contents))
		}
		return asn1tree.Boolean(contents[0] != 0x00), nil
	case asn1tree.KindNull:
		if len(contents) != 0 {
			return nil, fmt.Errorf("null must have length 0, got %d", len(contents))
		}
		return asn1tree.Null{}, nil
	case asn1tree.KindInteger:
		i, err := decodeInt(contents, d.opts.Arith)
		return asn1tree.Integer{Int: i}, err
	case asn1tree.KindEnumerated:
		i, err := decodeInt(contents, d.opts.Arith)
		return asn1tree.Enumerated{Int: i}, err
	case asn1tree.KindReal:
		return decodeReal(contents)
	case asn1tree.KindBitString:
		s, _, err := decodeBitString(contents)
		return asn1tree.BitString(s), err
	case asn1tree.KindOctetString:
		return asn1tree.OctetString(clone(contents)), nil
	case asn1tree.KindObjectIdentifier:
		s, err := decodeOID(contents, d.opts.Arith, false)
		return asn1tree.ObjectIdentifier(s), err
	case asn1tree.KindRelativeOID:
		s, err := decodeOID(contents, d.opts.Arith, true)
		return asn1tree.RelativeOID(s), err
	case asn1tree.KindUTCTime, asn1tree.KindGeneralizedTime:
		return decodeTime(kind, contents, d.opts.Location)
	}
	if kind.IsString() {
		return asn1tree.String{Type: kind, Bytes: clone(contents)}, nil
	}
	return nil, fmt.Errorf("no decoder for %v", kind)
}

// decodeChildren decodes the elements of a SEQUENCE or SET. The elements must
// exactly fill body.
func (d *decoder) decodeChildren(kind asn1tree.Kind, body cursor, depth int) (asn1tree.Value, error) {
	var children []*asn1tree.Node
	var prev []byte // encoding of the previous SET element
	sorted := kind == asn1tree.KindSet && d.profile.SortSets()
	for body.remaining() > 0 {
		start := body.off
		child, err := d.decodeNode(&body, false, depth+1)
		if err != nil {
			return nil, err
		}
		if sorted {
			enc := body.data[start:body.off]
			if prev != nil && bytes.Compare(prev, enc) > 0 {
				return nil, d.wrap(start, child.Tag, errUnsortedSet)
			}
			prev = enc
		}
		children = append(children, child)
	}
	if kind == asn1tree.KindSet {
		return asn1tree.Set(children), nil
	}
	return asn1tree.Sequence(children), nil
}

// decodeSegmented reassembles a string using the constructed encoding. Its
// segments are OCTET STRING values (BIT STRING values for bit strings) or
// values of the string type itself. Segments may be constructed.
func (d *decoder) decodeSegmented(kind asn1tree.Kind, body cursor, depth int) (asn1tree.Value, error) {
	if kind == asn1tree.KindBitString {
		var bits strings.Builder
		partial := false // previous segment had unused bits
		err := d.walkSegments(kind, &body, depth, func(contents []byte) error {
			if partial {
				return errors.New("unused bits in non-final segment")
			}
			s, unused, err := decodeBitString(contents)
			partial = unused > 0
			bits.WriteString(s)
			return err
		})
		return asn1tree.BitString(bits.String()), err
	}

	buf := []byte{}
	err := d.walkSegments(kind, &body, depth, func(contents []byte) error {
		buf = append(buf, contents...)
		return nil
	})
	if kind == asn1tree.KindOctetString {
		return asn1tree.OctetString(buf), err
	}
	return asn1tree.String{Type: kind, Bytes: buf}, err
}

// walkSegments calls f with the contents of every primitive segment in cur.
func (d *decoder) walkSegments(kind asn1tree.Kind, cur *cursor, depth int, f func([]byte) error) error {
	segmentNumber := asn1tree.TagOctetString
	if kind == asn1tree.KindBitString {
		segmentNumber = asn1tree.TagBitString
	}
	for cur.remaining() > 0 {
		start := cur.off
		if depth+1 > d.opts.MaxDepth {
			return d.wrap(start, asn1tree.Tag{}, errMaxDepth)
		}
		h, err := d.decodeHeader(cur, false)
		if err != nil {
			return err
		}
		if h.Length > cur.remaining() {
			return d.truncated(false, start, h.Tag, fmt.Errorf("expected byte length %d, received %d", h.Length, cur.remaining()))
		}
		num, _ := h.Tag.Number.Uint64()
		if h.Tag.Class != asn1tree.ClassUniversal || h.Tag.Number.IsBig() ||
			(num != segmentNumber && num != kind.UniversalNumber()) {
			return d.wrap(start, h.Tag, fmt.Errorf("invalid segment in constructed %v", kind))
		}
		seg := cursor{data: cur.data, off: cur.off, end: cur.off + h.Length}
		cur.off = seg.end
		if h.Constructed {
			err = d.walkSegments(kind, &seg, depth+1, f)
		} else {
			err = f(seg.bytes())
		}
		if err != nil {
			return d.wrap(start, h.Tag, err)
		}
	}
	return nil
}

// clone returns a copy of b that is never nil.
func clone(b []byte) []byte {
	return append([]byte{}, b...)
}
