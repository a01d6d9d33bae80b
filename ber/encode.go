// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"codello.dev/asn1tree"
)

// Encode returns the encoding of the value tree rooted at n.
//
// Values are encoded bottom-up. Strings and bit strings that are marked as
// constructed are encoded using a single primitive segment. If the encoding
// fails, the error is a [*StructuralError].
func (c *Codec) Encode(n *asn1tree.Node) ([]byte, error) {
	return c.Append(nil, n)
}

// Append appends the encoding of n to dst and returns the extended buffer.
func (c *Codec) Append(dst []byte, n *asn1tree.Node) ([]byte, error) {
	e := &encoder{c}
	return e.appendNode(dst, n, 0)
}

// encoder holds the state of a single encoding operation.
type encoder struct {
	*Codec
}

// wrap converts err into a *StructuralError. Errors that are already a
// *StructuralError are returned unchanged.
func (e *encoder) wrap(tag asn1tree.Tag, err error) error {
	var se *StructuralError
	if errors.As(err, &se) {
		return err
	}
	return &StructuralError{Kind: classify(err), Tag: tag, Err: err}
}

func (e *encoder) appendNode(dst []byte, n *asn1tree.Node, depth int) ([]byte, error) {
	if n == nil || n.Value == nil {
		return dst, &StructuralError{Kind: ErrInvalidArgument, Err: errNoValue}
	}
	if depth > e.opts.MaxDepth {
		return dst, e.wrap(n.Tag, errMaxDepth)
	}
	if !n.Tag.Class.IsValid() {
		return dst, e.wrap(n.Tag, fmt.Errorf("invalid class %v", n.Tag.Class))
	}
	if err := e.profile.CheckNode(n); err != nil {
		return dst, e.wrap(n.Tag, err)
	}
	contents, err := e.contents(n, depth)
	if err != nil {
		return dst, e.wrap(n.Tag, err)
	}
	dst, err = appendHeader(dst, header{n.Tag, n.Constructed, len(contents)}, e.opts.Arith)
	if err != nil {
		return dst, e.wrap(n.Tag, err)
	}
	return append(dst, contents...), nil
}

// contents returns the contents octets of n.
func (e *encoder) contents(n *asn1tree.Node, depth int) ([]byte, error) {
	k := n.Kind()
	switch {
	case k == asn1tree.KindSequence || k == asn1tree.KindSet:
		if !n.Constructed {
			return nil, fmt.Errorf("%v must be constructed", k)
		}
	case k == asn1tree.KindIncomplete:
	case n.Constructed && (k.IsString() || k == asn1tree.KindBitString):
		return e.segment(n)
	case n.Constructed:
		return nil, fmt.Errorf("%v must be primitive", k)
	}
	return e.primitive(n.Value, depth)
}

// segment encodes a constructed string as a single primitive segment.
func (e *encoder) segment(n *asn1tree.Node) ([]byte, error) {
	contents, err := e.primitive(n.Value, 0)
	if err != nil {
		return nil, err
	}
	num := asn1tree.TagOctetString
	if n.Kind() == asn1tree.KindBitString {
		num = asn1tree.TagBitString
	}
	seg := appendLength([]byte{byte(num)}, len(contents))
	return append(seg, contents...), nil
}

func (e *encoder) primitive(v asn1tree.Value, depth int) ([]byte, error) {
	switch v := v.(type) {
	case asn1tree.Boolean:
		if v {
			return []byte{0xFF}, nil
		}
		return []byte{0x00}, nil
	case asn1tree.Integer:
		return appendInt(nil, v.Int, e.opts.Arith)
	case asn1tree.Enumerated:
		return appendInt(nil, v.Int, e.opts.Arith)
	case asn1tree.Null:
		return nil, nil
	case asn1tree.Real:
		return encodeReal(float64(v))
	case asn1tree.BitString:
		return appendBitString(nil, v, e.opts.BitStringPadding)
	case asn1tree.OctetString:
		return v, nil
	case asn1tree.String:
		if !v.Type.IsCharacterRestricted() && v.Type != asn1tree.KindCharacterString {
			return nil, fmt.Errorf("%v is not a character string kind", v.Type)
		}
		return v.Bytes, nil
	case asn1tree.ObjectIdentifier:
		comps, err := v.Components()
		if err != nil {
			return nil, err
		}
		return appendOID(nil, comps, e.opts.Arith, false)
	case asn1tree.RelativeOID:
		comps, err := v.Components()
		if err != nil {
			return nil, err
		}
		return appendOID(nil, comps, e.opts.Arith, true)
	case asn1tree.Time:
		return formatTime(v, e.opts.Location)
	case asn1tree.Sequence:
		return e.appendChildren(v, depth, false)
	case asn1tree.Set:
		return e.appendChildren(v, depth, e.profile.SortSets())
	case asn1tree.Incomplete:
		return v, nil
	}
	return nil, fmt.Errorf("unsupported value %T", v)
}

// appendChildren encodes the elements of a SEQUENCE or SET. If sorted is true
// the encodings are ordered ascending as unsigned byte strings.
func (e *encoder) appendChildren(children []*asn1tree.Node, depth int, sorted bool) ([]byte, error) {
	if !sorted {
		var (
			dst []byte
			err error
		)
		for _, child := range children {
			if dst, err = e.appendNode(dst, child, depth+1); err != nil {
				return nil, err
			}
		}
		return dst, nil
	}
	encs := make([][]byte, len(children))
	for i, child := range children {
		enc, err := e.appendNode(nil, child, depth+1)
		if err != nil {
			return nil, err
		}
		encs[i] = enc
	}
	slices.SortStableFunc(encs, bytes.Compare)
	return bytes.Join(encs, nil), nil
}
