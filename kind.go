// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a [Value]. Except for [KindIncomplete] every
// kind corresponds to exactly one universal ASN.1 type.
//
//go:generate stringer -type=Kind -trimprefix=Kind
type Kind uint8

// Supported kinds. KindIncomplete is the zero value and identifies values
// whose universal type has not been determined.
const (
	KindIncomplete Kind = iota
	KindBoolean
	KindInteger
	KindBitString
	KindOctetString
	KindNull
	KindObjectIdentifier
	KindReal
	KindEnumerated
	KindUTF8String
	KindRelativeOID
	KindSequence
	KindSet
	KindNumericString
	KindPrintableString
	KindTeletexString
	KindVideotexString
	KindIA5String
	KindUTCTime
	KindGeneralizedTime
	KindGraphicString
	KindVisibleString
	KindGeneralString
	KindUniversalString
	KindCharacterString
	KindBMPString
)

var universalNumbers = [...]uint64{
	KindIncomplete:       TagReserved,
	KindBoolean:          TagBoolean,
	KindInteger:          TagInteger,
	KindBitString:        TagBitString,
	KindOctetString:      TagOctetString,
	KindNull:             TagNull,
	KindObjectIdentifier: TagOID,
	KindReal:             TagReal,
	KindEnumerated:       TagEnumerated,
	KindUTF8String:       TagUTF8String,
	KindRelativeOID:      TagRelativeOID,
	KindSequence:         TagSequence,
	KindSet:              TagSet,
	KindNumericString:    TagNumericString,
	KindPrintableString:  TagPrintableString,
	KindTeletexString:    TagTeletexString,
	KindVideotexString:   TagVideotexString,
	KindIA5String:        TagIA5String,
	KindUTCTime:          TagUTCTime,
	KindGeneralizedTime:  TagGeneralizedTime,
	KindGraphicString:    TagGraphicString,
	KindVisibleString:    TagVisibleString,
	KindGeneralString:    TagGeneralString,
	KindUniversalString:  TagUniversalString,
	KindCharacterString:  TagCharacterString,
	KindBMPString:        TagBMPString,
}

// IsValid reports whether k is one of the predefined kinds.
func (k Kind) IsValid() bool {
	return int(k) < len(universalNumbers)
}

// UniversalNumber returns the tag number of k in the [ClassUniversal]
// namespace. [KindIncomplete] and invalid kinds return [TagReserved].
func (k Kind) UniversalNumber() uint64 {
	if k == KindIncomplete || !k.IsValid() {
		return TagReserved
	}
	return universalNumbers[k]
}

// KindForUniversal returns the kind identified by the universal tag number n.
// If n does not identify a supported type, ok is false.
func KindForUniversal(n Number) (k Kind, ok bool) {
	v, ok := n.Uint64()
	if !ok || v == TagReserved {
		return KindIncomplete, false
	}
	for k, num := range universalNumbers {
		if num == v {
			return Kind(k), true
		}
	}
	return KindIncomplete, false
}

// IsString reports whether values of kind k are octet strings or character
// strings. BER allows these kinds to use the constructed encoding.
func (k Kind) IsString() bool {
	return k == KindOctetString || k == KindCharacterString || k.IsCharacterRestricted()
}

// IsCharacterRestricted reports whether k is a restricted character string
// type.
func (k Kind) IsCharacterRestricted() bool {
	switch k {
	case KindUTF8String, KindNumericString, KindPrintableString, KindTeletexString,
		KindVideotexString, KindIA5String, KindGraphicString, KindVisibleString,
		KindGeneralString, KindUniversalString, KindBMPString:
		return true
	}
	return false
}

// IsTime reports whether k is one of the time kinds.
func (k Kind) IsTime() bool {
	return k == KindUTCTime || k == KindGeneralizedTime
}

// ParseKind returns the kind with the given name. Names are matched case
// insensitively against [Kind.String]. The abbreviations "oid" and "reloid"
// are accepted as well.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "oid":
		return KindObjectIdentifier, nil
	case "reloid", "relativeoid":
		return KindRelativeOID, nil
	}
	for k := range Kind(len(universalNumbers)) {
		if k != KindIncomplete && strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KindIncomplete, fmt.Errorf("asn1tree: unknown kind %q", name)
}
