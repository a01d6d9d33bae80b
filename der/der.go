// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the ASN.1 Distinguished Encoding Rules (DER). DER is a
// subset of the Basic Encoding Rules that allows exactly one encoding for every
// value. The Distinguished Encoding Rules are defined in [Rec. ITU-T X.690].
//
// DER is implemented as a [ber.Profile]. A codec returned by [NewCodec] is a
// regular [ber.Codec] that additionally enforces the following restrictions on
// both decoding and encoding:
//
//   - Lengths use the shortest possible form.
//   - BOOLEAN values are encoded as 0x00 or 0xFF.
//   - Unused bits of a BIT STRING are zero.
//   - BIT STRING, OCTET STRING and character strings use the primitive
//     encoding.
//   - UTCTime and GeneralizedTime values include seconds and use the "Z" zone
//     designator. Fractional seconds have no trailing zeros and use "." as the
//     decimal separator.
//   - The elements of a SET and SET OF are sorted by their encodings.
//
// Violations are reported as [ber.ErrMalformed].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

import (
	"bytes"
	"errors"
	"fmt"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
)

// NewCodec returns a codec for the Distinguished Encoding Rules. The
// BitStringPadding option is ignored, unused bits are always zero.
func NewCodec(opts ber.Options) *ber.Codec {
	opts.BitStringPadding = '0'
	return ber.NewProfileCodec(opts, Profile{})
}

// Profile implements the restrictions of the Distinguished Encoding Rules.
type Profile struct{}

var (
	errLongLength   = errors.New("length must use the shortest possible form")
	errBoolean      = errors.New("boolean must be encoded as 0x00 or 0xFF")
	errUnusedBits   = errors.New("unused bits of a bit string must be zero")
	errConstructed  = errors.New("strings must use the primitive encoding")
	errTimeZone     = errors.New("time must be in UTC and end in Z")
	errTimeSeconds  = errors.New("time must include seconds")
	errTimeFraction = errors.New("fractional seconds must use '.' and have no trailing zeros")
)

// CheckLongLength rejects lengths that could be encoded in fewer octets.
func (Profile) CheckLongLength(length, numOctets int) error {
	if length < 128 {
		return errLongLength
	}
	if length>>(8*(numOctets-1)) == 0 {
		return errLongLength
	}
	return nil
}

func (Profile) CheckContents(kind asn1tree.Kind, contents []byte) error {
	switch kind {
	case asn1tree.KindBoolean:
		if len(contents) == 1 && contents[0] != 0x00 && contents[0] != 0xFF {
			return errBoolean
		}
	case asn1tree.KindBitString:
		if len(contents) < 2 || contents[0] > 7 {
			return nil
		}
		if mask := byte(1)<<contents[0] - 1; contents[len(contents)-1]&mask != 0 {
			return errUnusedBits
		}
	case asn1tree.KindUTCTime, asn1tree.KindGeneralizedTime:
		if len(contents) == 0 || contents[len(contents)-1] != 'Z' {
			return errTimeZone
		}
		if bytes.IndexByte(contents, ',') >= 0 {
			return errTimeFraction
		}
		if i := bytes.IndexByte(contents, '.'); i >= 0 && contents[len(contents)-2] == '0' {
			return errTimeFraction
		}
	}
	return nil
}

// CheckNode rejects constructed strings and times that are not in UTC or have
// less than seconds precision.
func (Profile) CheckNode(n *asn1tree.Node) error {
	k := n.Kind()
	if n.Constructed && (k.IsString() || k == asn1tree.KindBitString) {
		return fmt.Errorf("%w: %v", errConstructed, k)
	}
	if t, ok := n.Value.(asn1tree.Time); ok {
		if t.Zone != asn1tree.ZoneUTC {
			return errTimeZone
		}
		if t.Precision < asn1tree.PrecisionSeconds {
			return errTimeSeconds
		}
	}
	return nil
}

// SortSets reports true. The elements of a SET are sorted by their encodings.
func (Profile) SortSets() bool { return true }
