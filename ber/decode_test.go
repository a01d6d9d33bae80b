// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/bigint"
)

func TestCodec_Decode(t *testing.T) {
	c := NewCodec(Options{})
	tests := map[string]struct {
		data string
		want *asn1tree.Node
	}{
		"True":          {"0101ff", asn1tree.NewBoolean(true)},
		"TrueNonCanon":  {"0101f3", asn1tree.NewBoolean(true)},
		"False":         {"010100", asn1tree.NewBoolean(false)},
		"Zero":          {"020100", asn1tree.NewInteger(0)},
		"127":           {"02017f", asn1tree.NewInteger(127)},
		"128":           {"02020080", asn1tree.NewInteger(128)},
		"-128":          {"020180", asn1tree.NewInteger(-128)},
		"-129":          {"0202ff7f", asn1tree.NewInteger(-129)},
		"MinInt64":      {"02088000000000000000", asn1tree.NewInteger(math.MinInt64)},
		"MaxUint64":     {"020900ffffffffffffffff", mustInteger(t, "18446744073709551615")},
		"NegMaxUint64":  {"0209ff0000000000000001", mustInteger(t, "-18446744073709551615")},
		"Enumerated":    {"0a0105", asn1tree.NewEnumerated(5)},
		"Null":          {"0500", asn1tree.NewNull()},
		"RealZero":      {"0900", asn1tree.NewReal(0)},
		"RealInf":       {"090140", asn1tree.NewReal(math.Inf(1))},
		"RealNegInf":    {"090141", asn1tree.NewReal(math.Inf(-1))},
		"BitString":     {"0304066e5dc0", asn1tree.NewBitString("011011100101110111")},
		"EmptyBits":     {"030100", asn1tree.NewBitString("")},
		"SingleBit":     {"03020700", asn1tree.NewBitString("0")},
		"OctetString":   {"0403010203", asn1tree.NewOctetString([]byte{1, 2, 3})},
		"EmptyOctets":   {"0400", asn1tree.NewOctetString([]byte{})},
		"OID":           {"06062a864886f70d", asn1tree.NewObjectIdentifier("1.2.840.113549")},
		"OIDJointISO":   {"0602824f", asn1tree.NewObjectIdentifier("2.255")},
		"OIDBigSecond":  {"060a8280808080808080804f", asn1tree.NewObjectIdentifier("2.18446744073709551615")},
		"OIDMaxUint64":  {"060e2a864881ffffffffffffffff7f01", asn1tree.NewObjectIdentifier("1.2.840.18446744073709551615.1")},
		"RelativeOID":   {"0d03c27b03", asn1tree.NewRelativeOID("8571.3")},
		"UTF8String":    {"0c03666f6f", asn1tree.NewStringBytes(asn1tree.KindUTF8String, []byte("foo"))},
		"BMPString":     {"1e0400680069", asn1tree.NewStringBytes(asn1tree.KindBMPString, []byte{0, 'h', 0, 'i'})},
		"EmptySequence": {"3000", asn1tree.NewSequence()},
		"Sequence":      {"30060201010101ff", asn1tree.NewSequence(asn1tree.NewInteger(1), asn1tree.NewBoolean(true))},
		"Set":           {"3103020105", asn1tree.NewSet(asn1tree.NewInteger(5))},
		"Private":       {"c70101", asn1tree.Private(7, asn1tree.NewIncomplete([]byte{1}))},
		"HighTag":       {"5f81000101", asn1tree.Application(128, asn1tree.NewIncomplete([]byte{1}))},
		"MaxUint64Tag":  {"5f81ffffffffffffffff7f0101", asn1tree.Application(math.MaxUint64, asn1tree.NewIncomplete([]byte{1}))},
		"ContextConstructed": {"a0030101ff", &asn1tree.Node{
			Tag:         asn1tree.Tag{Class: asn1tree.ClassContextSpecific},
			Constructed: true,
			Value:       asn1tree.Incomplete{0x01, 0x01, 0xff},
		}},
		"GeneralizedTime": {"180f32303138303331383031303230335a", asn1tree.NewGeneralizedTime(
			time.Date(2018, 3, 18, 1, 2, 3, 0, time.UTC), asn1tree.PrecisionSeconds, asn1tree.ZoneUTC)},
		"UTCTime": {"170b313830333138303130325a", asn1tree.NewUTCTime(
			time.Date(2018, 3, 18, 1, 2, 0, 0, time.UTC), asn1tree.PrecisionMinutes, asn1tree.ZoneUTC)},
		"UTCTime1999": {"170d3939313233313233353935395a", asn1tree.NewUTCTime(
			time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC), asn1tree.PrecisionSeconds, asn1tree.ZoneUTC)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, rest, err := c.Decode(mustHex(t, tc.data), nil)
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", tc.data, err)
			}
			if len(rest) != 0 {
				t.Errorf("Decode(%s) rest = % X, want empty", tc.data, rest)
			}
			assertNode(t, got, tc.want)
		})
	}
}

func TestCodec_DecodeConstructedString(t *testing.T) {
	c := NewCodec(Options{})
	tests := map[string]struct {
		data string
		want asn1tree.Value
	}{
		"OctetString": {"2403040101", asn1tree.OctetString{0x01}},
		"Nested":      {"2409040361626324020400", asn1tree.OctetString("abc")},
		"Empty":       {"2400", asn1tree.OctetString{}},
		"UTF8String":  {"2c0704026869040121", asn1tree.String{Type: asn1tree.KindUTF8String, Bytes: []byte("hi!")}},
		"SameType":    {"2c050c03686921", asn1tree.String{Type: asn1tree.KindUTF8String, Bytes: []byte("hi!")}},
		"BitString":   {"23090303006e5d030206c0", asn1tree.BitString("011011100101110111")},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, _, err := c.Decode(mustHex(t, tc.data), nil)
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", tc.data, err)
			}
			if !got.Constructed {
				t.Errorf("Decode(%s).Constructed = false, want true", tc.data)
			}
			assertNode(t, got, &asn1tree.Node{Tag: got.Tag, Constructed: true, Value: tc.want})
		})
	}
}

func TestCodec_DecodeError(t *testing.T) {
	c := NewCodec(Options{})
	tests := map[string]struct {
		data    string
		wantErr error
	}{
		"Empty":                 {"", ErrInvalidArgument},
		"SingleByte":            {"01", ErrPartialPDU},
		"TruncatedHighTag":      {"5f8180", ErrPartialPDU},
		"NestedTruncatedTag":    {"30035f8180", ErrMalformed},
		"TruncatedContents":     {"010201", ErrPartialPDU},
		"NestedTruncated":       {"3003010201", ErrMalformed},
		"TruncatedLength":       {"048301ff", ErrPartialPDU},
		"NestedTruncatedLength": {"3003048301", ErrMalformed},
		"MissingLength":         {"1f81", ErrPartialPDU},
		"NestedMissingLength":   {"30040401ff00", ErrMalformed},
		"Indefinite":            {"30800000", ErrMalformed},
		"IndefiniteOctets":      {"0480", ErrMalformed},
		"ReservedLength":        {"04ff00", ErrMalformed},
		"LengthOverflow":        {"0489010000000000000000", ErrMalformed},
		"BooleanLength":         {"0102ffff", ErrMalformed},
		"EmptyBoolean":          {"0100", ErrMalformed},
		"ConstructedBoolean":    {"210100", ErrMalformed},
		"ConstructedInteger":    {"220100", ErrMalformed},
		"ConstructedNull":       {"2500", ErrMalformed},
		"ConstructedOID":        {"2600", ErrMalformed},
		"ConstructedTime":       {"3800", ErrMalformed},
		"PrimitiveSequence":     {"1000", ErrMalformed},
		"PrimitiveSet":          {"1100", ErrMalformed},
		"EmptyInteger":          {"0200", ErrMalformed},
		"NullLength":            {"050100", ErrMalformed},
		"EmptyOID":              {"0600", ErrMalformed},
		"EmptyRelativeOID":      {"0d00", ErrMalformed},
		"TruncatedOID":          {"06022a86", ErrMalformed},
		"NonMinimalOID":         {"06032a8001", ErrMalformed},
		"NonMinimalTag":         {"5f800101", ErrMalformed},
		"EmptyBitString":        {"0300", ErrMalformed},
		"UnusedBits":            {"030108", ErrMalformed},
		"UnusedBitsNoData":      {"030101", ErrMalformed},
		"UnusedBitsTooLarge":    {"030208ff", ErrMalformed},
		"Real":                  {"090142", ErrNotImplemented},
		"BinaryReal":            {"0903800101", ErrNotImplemented},
		"External":              {"0800", ErrMalformed},
		"UnknownUniversal":      {"0f00", ErrMalformed},
		"ReservedUniversal":     {"0000", ErrMalformed},
		"Hour24":                {"180a32303138303331383234", ErrMalformed},
		"UTCTimeWithoutZone":    {"170a31383033313830313031", ErrMalformed},
		"InvalidMonth":          {"180b323031383133313830315a", ErrMalformed},
		"February30":            {"180b323031383032333030315a", ErrMalformed},
		"InvalidSegment":        {"2403020101", ErrMalformed},
		"BitSegmentInOctets":    {"2403030100", ErrMalformed},
		"NonFinalUnusedBits":    {"2308030206c003020000", ErrMalformed},
		"SegmentOverflow":       {"24030405ff", ErrMalformed},
		"TrailingChild":         {"300101", ErrMalformed},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := c.Decode(mustHex(t, tc.data), nil)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Decode(%s) error = %v, want %v", tc.data, err, tc.wantErr)
			}
			var se *SyntaxError
			if err != nil && !errors.As(err, &se) {
				t.Errorf("Decode(%s) error type = %T, want *SyntaxError", tc.data, err)
			}
		})
	}
}

func TestCodec_DecodeRest(t *testing.T) {
	c := NewCodec(Options{})
	data := mustHex(t, "0101ff0500")
	n, rest, err := c.Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertNode(t, n, asn1tree.NewBoolean(true))
	if want := data[3:]; string(rest) != string(want) {
		t.Errorf("Decode() rest = % X, want % X", rest, want)
	}
}

func TestCodec_DecodeErrorOffset(t *testing.T) {
	c := NewCodec(Options{})
	_, _, err := c.Decode(mustHex(t, "30090101ff020100050100"), nil)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Decode() error = %v, want *SyntaxError", err)
	}
	if se.ByteOffset != 8 {
		t.Errorf("Decode() ByteOffset = %d, want 8", se.ByteOffset)
	}
}

func TestCodec_DecodeMaxDepth(t *testing.T) {
	data := mustHex(t, "30083006300430023000")
	if _, _, err := NewCodec(Options{MaxDepth: 4}).Decode(data, nil); err != nil {
		t.Errorf("Decode() with MaxDepth 4 error = %v", err)
	}
	_, _, err := NewCodec(Options{MaxDepth: 3}).Decode(data, nil)
	if !errors.Is(err, ErrMalformed) || !errors.Is(err, errMaxDepth) {
		t.Errorf("Decode() with MaxDepth 3 error = %v, want %v", err, errMaxDepth)
	}

	// Constructed strings count towards the nesting depth as well.
	data = mustHex(t, "2406240424020400")
	_, _, err = NewCodec(Options{MaxDepth: 2}).Decode(data, nil)
	if !errors.Is(err, errMaxDepth) {
		t.Errorf("Decode() constructed string error = %v, want %v", err, errMaxDepth)
	}
}

func TestCodec_DecodeTagMap(t *testing.T) {
	tags := asn1tree.TagMap{}
	tags.Set(asn1tree.ClassContextSpecific, 0, asn1tree.KindInteger)
	tags.Set(asn1tree.ClassContextSpecific, 1, asn1tree.KindSequence)
	tags.Set(asn1tree.ClassApplication, 1, asn1tree.KindIA5String)

	c := NewCodec(Options{})
	n, _, err := c.Decode(mustHex(t, "a106800105410161"), tags)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := &asn1tree.Node{
		Tag:         asn1tree.Tag{Class: asn1tree.ClassContextSpecific, Number: asn1tree.Uint(1)},
		Constructed: true,
		Value: asn1tree.Sequence{
			asn1tree.Context(0, asn1tree.NewInteger(5)),
			asn1tree.Application(1, asn1tree.NewStringBytes(asn1tree.KindIA5String, []byte("a"))),
		},
	}
	assertNode(t, n, want)

	t.Run("CodecTags", func(t *testing.T) {
		codecTags := asn1tree.TagMap{}
		codecTags.Set(asn1tree.ClassContextSpecific, 0, asn1tree.KindBoolean)
		c := NewCodec(Options{Tags: codecTags})

		got, _, err := c.Decode(mustHex(t, "8001ff"), nil)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		assertNode(t, got, asn1tree.Context(0, asn1tree.NewBoolean(true)))

		// Tags of the call take precedence.
		got, _, err = c.Decode(mustHex(t, "800105"), tags)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		assertNode(t, got, asn1tree.Context(0, asn1tree.NewInteger(5)))
	})
}

func TestCodec_DecodeArith(t *testing.T) {
	c := NewCodec(Options{Arith: bigint.Unavailable})
	tests := map[string]string{
		"Integer": "020900ffffffffffffffff",
		"Tag":     "5f828080808080808080000101",
		"OID":     "060a8280808080808080804f",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := c.Decode(mustHex(t, data), nil)
			if !errors.Is(err, ErrNotImplemented) {
				t.Errorf("Decode(%s) error = %v, want %v", data, err, ErrNotImplemented)
			}
		})
	}
}

func TestCodec_DecodeTime(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)
	c := NewCodec(Options{Location: loc})
	tests := map[string]struct {
		data string
		want asn1tree.Time
	}{
		"Hours": {"2018031801", asn1tree.Time{Type: asn1tree.KindGeneralizedTime,
			Time: time.Date(2018, 3, 18, 1, 0, 0, 0, loc), Precision: asn1tree.PrecisionHours, Zone: asn1tree.ZoneLocal}},
		"Fraction": {"20180318010203.25Z", asn1tree.Time{Type: asn1tree.KindGeneralizedTime,
			Time: time.Date(2018, 3, 18, 1, 2, 3, 250000000, time.UTC), Precision: asn1tree.PrecisionFractions, Zone: asn1tree.ZoneUTC}},
		"Comma": {"20180318010203,5Z", asn1tree.Time{Type: asn1tree.KindGeneralizedTime,
			Time: time.Date(2018, 3, 18, 1, 2, 3, 500000000, time.UTC), Precision: asn1tree.PrecisionFractions, Zone: asn1tree.ZoneUTC}},
		"Offset": {"201803180102+0500", asn1tree.Time{Type: asn1tree.KindGeneralizedTime,
			Time: time.Date(2018, 3, 17, 20, 2, 0, 0, time.UTC), Precision: asn1tree.PrecisionMinutes, Zone: asn1tree.ZoneDiff}},
		"NegativeOffset": {"2018031801-0130", asn1tree.Time{Type: asn1tree.KindGeneralizedTime,
			Time: time.Date(2018, 3, 18, 2, 30, 0, 0, time.UTC), Precision: asn1tree.PrecisionHours, Zone: asn1tree.ZoneDiff}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			data := append(appendLength([]byte{0x18}, len(tc.data)), tc.data...)
			n, _, err := c.Decode(data, nil)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tc.data, err)
			}
			got, ok := n.Value.(asn1tree.Time)
			if !ok {
				t.Fatalf("Decode(%q) value = %T, want asn1tree.Time", tc.data, n.Value)
			}
			if !got.Time.Equal(tc.want.Time) {
				t.Errorf("Decode(%q) time = %v, want %v", tc.data, got.Time, tc.want.Time)
			}
			if got.Type != tc.want.Type || got.Precision != tc.want.Precision || got.Zone != tc.want.Zone {
				t.Errorf("Decode(%q) = %v %v %v, want %v %v %v", tc.data,
					got.Type, got.Precision, got.Zone, tc.want.Type, tc.want.Precision, tc.want.Zone)
			}
		})
	}
}

func TestCodec_Complete(t *testing.T) {
	c := NewCodec(Options{})
	n, _, err := c.Decode(mustHex(t, "a0030101ff"), nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n.Kind() != asn1tree.KindIncomplete {
		t.Fatalf("Decode() kind = %v, want %v", n.Kind(), asn1tree.KindIncomplete)
	}
	got, err := c.Complete(n, asn1tree.KindSequence, nil)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	assertNode(t, got, asn1tree.Explicit(asn1tree.Tag{Class: asn1tree.ClassContextSpecific}, asn1tree.NewBoolean(true)))

	tests := map[string]struct {
		node    *asn1tree.Node
		kind    asn1tree.Kind
		wantErr error
	}{
		"Nil":           {nil, asn1tree.KindInteger, ErrInvalidArgument},
		"NotIncomplete": {asn1tree.NewInteger(1), asn1tree.KindInteger, ErrInvalidArgument},
		"InvalidKind":   {asn1tree.NewIncomplete([]byte{1}), asn1tree.Kind(200), ErrInvalidArgument},
		"Incomplete":    {asn1tree.NewIncomplete([]byte{1}), asn1tree.KindIncomplete, ErrInvalidArgument},
		"Malformed":     {asn1tree.Context(0, asn1tree.NewIncomplete([]byte{1, 2})), asn1tree.KindBoolean, ErrMalformed},
		"Primitive":     {asn1tree.Context(0, asn1tree.NewIncomplete([]byte{})), asn1tree.KindSequence, ErrMalformed},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Complete(tc.node, tc.kind, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Complete() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCodec_DecodeLogger(t *testing.T) {
	var buf strings.Builder
	c := NewCodec(Options{Logger: newTestLogger(&buf)})
	if _, _, err := c.Decode(mustHex(t, "c70101"), nil); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "deferring unmapped tag") {
		t.Errorf("log output = %q, want unmapped tag message", buf.String())
	}
}
