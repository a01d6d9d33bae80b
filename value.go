// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"strconv"
	"strings"
	"time"
)

// Value is the payload of a [Node]. The set of Value implementations is closed,
// only types defined in this package implement Value.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	value()
}

//region [UNIVERSAL 1] BOOLEAN

// Boolean is the value of an ASN.1 BOOLEAN.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) value()     {}

//endregion

//region [UNIVERSAL 2] INTEGER

// Integer is the value of an ASN.1 INTEGER of arbitrary size.
type Integer struct{ Int }

func (Integer) Kind() Kind { return KindInteger }
func (Integer) value()     {}

//endregion

//region [UNIVERSAL 3] BIT STRING

// BitString is the value of an ASN.1 BIT STRING. Each character of the string
// is a single bit, either '0' or '1', most significant bit first. The number of
// bits does not need to be a multiple of 8.
//
// See also section 22 of Rec. ITU-T X.680.
type BitString string

func (BitString) Kind() Kind { return KindBitString }
func (BitString) value()     {}

// IsValid reports whether s only consists of '0' and '1' characters.
func (s BitString) IsValid() bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

//endregion

//region [UNIVERSAL 4] OCTET STRING

// OctetString is the value of an ASN.1 OCTET STRING.
type OctetString []byte

func (OctetString) Kind() Kind { return KindOctetString }
func (OctetString) value()     {}

//endregion

//region [UNIVERSAL 5] NULL

// Null is the value of an ASN.1 NULL.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) value()     {}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// An ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER in dot-separated notation.
// Components are decimal numbers of arbitrary size. The semantics of an object
// identifier are specified in [Rec. ITU-T X.660].
//
// See also section 32 of Rec. ITU-T X.680.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
type ObjectIdentifier string

func (ObjectIdentifier) Kind() Kind { return KindObjectIdentifier }
func (ObjectIdentifier) value()     {}

// Components parses the dot-separated components of oid.
func (oid ObjectIdentifier) Components() ([]Number, error) {
	return parseComponents(string(oid))
}

//endregion

//region [UNIVERSAL 9] REAL

// Real is the value of an ASN.1 REAL. Only zero and the infinities can be
// encoded.
type Real float64

func (Real) Kind() Kind { return KindReal }
func (Real) value()     {}

//endregion

//region [UNIVERSAL 10] ENUMERATED

// Enumerated is the value of an ASN.1 ENUMERATED.
type Enumerated struct{ Int }

func (Enumerated) Kind() Kind { return KindEnumerated }
func (Enumerated) value()     {}

//endregion

//region [UNIVERSAL 13] RELATIVE-OID

// RelativeOID is an ASN.1 RELATIVE-OID in dot-separated notation.
//
// See also section 33 of Rec. ITU-T X.680.
type RelativeOID string

func (RelativeOID) Kind() Kind { return KindRelativeOID }
func (RelativeOID) value()     {}

// Components parses the dot-separated components of oid.
func (oid RelativeOID) Components() ([]Number, error) {
	return parseComponents(string(oid))
}

//endregion

//region [UNIVERSAL 16] SEQUENCE

// Sequence is the value of an ASN.1 SEQUENCE or SEQUENCE OF. The order of its
// elements is significant.
type Sequence []*Node

func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) value()     {}

//endregion

//region [UNIVERSAL 17] SET

// Set is the value of an ASN.1 SET or SET OF. The order of elements is
// preserved when encoding using BER. DER encodes elements in canonical order.
type Set []*Node

func (Set) Kind() Kind { return KindSet }
func (Set) value()     {}

//endregion

//region Strings

// String is the value of an ASN.1 character string type. Type must be one of
// the character string kinds. The contents are kept as encoded. Use
// [String.Text] to decode them.
type String struct {
	Type  Kind
	Bytes []byte
}

func (s String) Kind() Kind { return s.Type }
func (String) value()       {}

//endregion

//region Times

// Precision indicates the least significant time component present in an
// encoded UTCTime or GeneralizedTime.
type Precision uint8

const (
	PrecisionHours Precision = iota
	PrecisionMinutes
	PrecisionSeconds
	PrecisionFractions
)

func (p Precision) String() string {
	switch p {
	case PrecisionHours:
		return "hours"
	case PrecisionMinutes:
		return "minutes"
	case PrecisionSeconds:
		return "seconds"
	case PrecisionFractions:
		return "fractions"
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

// Zone indicates how the time zone of an encoded UTCTime or GeneralizedTime is
// expressed.
type Zone uint8

const (
	ZoneUTC   Zone = iota // trailing Z
	ZoneLocal             // no zone designator
	ZoneDiff              // numeric offset such as +0200
)

func (z Zone) String() string {
	switch z {
	case ZoneUTC:
		return "utc"
	case ZoneLocal:
		return "local"
	case ZoneDiff:
		return "diff"
	}
	return "Zone(" + strconv.Itoa(int(z)) + ")"
}

// Time is the value of an ASN.1 UTCTime or GeneralizedTime. Type must be
// [KindUTCTime] or [KindGeneralizedTime]. Precision and Zone control the
// encoded form. Fractional seconds have the resolution of [time.Time], one
// nanosecond.
type Time struct {
	Type      Kind
	Time      time.Time
	Precision Precision
	Zone      Zone
}

func (t Time) Kind() Kind { return t.Type }
func (Time) value()       {}

// String returns an ISO 8601 compatible representation of t.
func (t Time) String() string {
	tt := t.Time
	b := strings.Builder{}
	b.Grow(34)
	b.WriteString(itoaN(tt.Year(), 4))
	b.WriteByte('-')
	b.WriteString(itoaN(int(tt.Month()), 2))
	b.WriteByte('-')
	b.WriteString(itoaN(tt.Day(), 2))
	b.WriteByte('T')
	b.WriteString(itoaN(tt.Hour(), 2))
	b.WriteByte(':')
	b.WriteString(itoaN(tt.Minute(), 2))
	b.WriteByte(':')
	b.WriteString(itoaN(tt.Second(), 2))
	if tt.Nanosecond() > 0 {
		s := strconv.FormatFloat(float64(tt.Nanosecond())/float64(time.Second), 'f', -1, 64)
		b.WriteString(s[1:])
	}
	if t.Zone == ZoneLocal {
		return b.String()
	}
	_, offset := tt.Zone()
	offset /= 60
	if offset == 0 {
		b.WriteByte('Z')
		return b.String()
	}
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	b.WriteString(itoaN(offset/60, 2))
	b.WriteByte(':')
	b.WriteString(itoaN(offset%60, 2))
	return b.String()
}

// itoaN formats i as a decimal with at least n digits.
func itoaN(i int, n int) string {
	s := strconv.Itoa(i)
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

//endregion

// Incomplete holds the raw contents octets of a value whose universal type
// could not be determined during decoding. The tag of the value is kept by
// the enclosing [Node].
type Incomplete []byte

func (Incomplete) Kind() Kind { return KindIncomplete }
func (Incomplete) value()     {}

func parseComponents(s string) ([]Number, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	ret := make([]Number, len(parts))
	for i, p := range parts {
		n, err := ParseNumber(p)
		if err != nil {
			return nil, err
		}
		ret[i] = n
	}
	return ret, nil
}
