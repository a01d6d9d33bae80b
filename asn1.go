// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1tree implements a generic tree representation of ASN.1 values as
// defined in [Rec. ITU-T X.680]. Encoding and decoding of trees using the
// Basic and Distinguished Encoding Rules is implemented in the subpackages ber
// and der.
//
// # The Value Tree
//
// A decoded ASN.1 value is represented by a [Node]. A node carries the
// identifier of the encoding (its [Tag] and whether it was constructed) and
// a [Value]. The set of [Value] types is closed. It consists of one type per
// supported universal type and the [Incomplete] type that holds the raw
// contents of values whose type could not be determined during decoding.
// [Sequence] and [Set] values own their child nodes.
//
// Tags in the [ClassUniversal] namespace determine the type of a value. Values
// using other tag classes are interpreted using a [TagMap] or left
// [Incomplete].
//
// # Arbitrary-precision Numbers
//
// ASN.1 puts no limit on the size of integers, tag numbers or object
// identifier components. The types [Int] and [Number] hold such values
// natively if they fit into 64 bits and as decimal text otherwise. Arithmetic
// on large values is performed by the codecs using the bigint package.
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1tree

import (
	"strings"
)

// Tag constitutes an ASN.1 tag, consisting of its class and number. For
// details, see Section 8 of Rec. ITU-T X.680.
type Tag struct {
	Class  Class
	Number Number
}

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer equal to the two
// most significant bits of a BER identifier octet. Class values whose value
// exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// UniversalTag returns the tag with number n in the [ClassUniversal] namespace.
func UniversalTag(n uint64) Tag {
	return Tag{ClassUniversal, Uint(n)}
}

// String returns a string representation t in a format similar to the one used
// in ASN.1 notation. The tag number is enclosed by square brackets and prefixed
// with the class used. To avoid ambiguity the UNIVERSAL word is used for
// universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	if t.Class == ClassContextSpecific {
		return "[" + t.Number.String() + "]"
	}
	return "[" + strings.ToUpper(t.Class.String()) + " " + t.Number.String() + "]"
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to be
// used by encoding rules. This assignment is defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const TagReserved = 0

// These are the ASN.1 tag numbers defined in the [ClassUniversal] namespace.
// These assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean          uint64 = 1
	TagInteger          uint64 = 2
	TagBitString        uint64 = 3
	TagOctetString      uint64 = 4
	TagNull             uint64 = 5
	TagOID              uint64 = 6
	TagObjectDescriptor uint64 = 7
	TagExternal         uint64 = 8
	TagReal             uint64 = 9
	TagEnumerated       uint64 = 10
	TagEmbeddedPDV      uint64 = 11
	TagUTF8String       uint64 = 12
	TagRelativeOID      uint64 = 13
	TagTime             uint64 = 14
	TagSequence         uint64 = 16
	TagSet              uint64 = 17
	TagNumericString    uint64 = 18
	TagPrintableString  uint64 = 19
	TagTeletexString    uint64 = 20
	TagT61String               = TagTeletexString
	TagVideotexString   uint64 = 21
	TagIA5String        uint64 = 22
	TagUTCTime          uint64 = 23
	TagGeneralizedTime  uint64 = 24
	TagGraphicString    uint64 = 25
	TagVisibleString    uint64 = 26
	TagISO646String            = TagVisibleString
	TagGeneralString    uint64 = 27
	TagUniversalString  uint64 = 28
	TagCharacterString  uint64 = 29
	TagBMPString        uint64 = 30
)
