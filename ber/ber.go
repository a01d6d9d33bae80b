// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements the ASN.1 Basic Encoding Rules (BER). The Basic
// Encoding Rules are defined in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// A [Codec] converts between encoded data values and value trees of the
// asn1tree package. The following limitations apply:
//
//   - The indefinite-length form is rejected.
//   - REAL values other than zero and the infinities cannot be decoded or
//     encoded.
//   - Universal types without a corresponding asn1tree.Kind cannot be decoded.
//
// Values with a tag outside the universal namespace are decoded according to a
// [asn1tree.TagMap]. Values whose tag is not mapped are decoded as
// [asn1tree.Incomplete] and can be resolved later using [Codec.Complete].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import (
	"codello.dev/asn1tree"
)

// A Codec encodes and decodes value trees. A Codec is immutable and can be used
// by multiple goroutines concurrently. Each operation keeps its own state.
type Codec struct {
	opts    Options
	profile Profile
}

// NewCodec returns a codec for the Basic Encoding Rules.
func NewCodec(opts Options) *Codec {
	return NewProfileCodec(opts, nil)
}

// NewProfileCodec returns a codec for the Basic Encoding Rules restricted by p.
// If p is nil, no restrictions apply.
func NewProfileCodec(opts Options, p Profile) *Codec {
	if p == nil {
		p = basicProfile{}
	}
	return &Codec{opts: opts.withDefaults(), profile: p}
}

// Options returns the options of c with defaults applied.
func (c *Codec) Options() Options {
	return c.opts
}

// tagMap returns the effective tag map for a decoding call.
func (c *Codec) tagMap(tags asn1tree.TagMap) asn1tree.TagMap {
	switch {
	case len(tags) == 0:
		return c.opts.Tags
	case len(c.opts.Tags) == 0:
		return tags
	}
	return asn1tree.Merge(tags, c.opts.Tags)
}
