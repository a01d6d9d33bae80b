// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"fmt"
	"testing"
)

func ExampleTag_String() {
	t1 := Tag{ClassApplication, Uint(17)}
	t2 := Tag{ClassContextSpecific, Uint(8)}
	t3 := UniversalTag(TagInteger)
	fmt.Println(t1.String())
	fmt.Println(t2.String())
	fmt.Println(t3.String())
	// Output:
	// [APPLICATION 17]
	// [8]
	// [UNIVERSAL 2]
}

func ExampleContext() {
	n := Context(3, NewOctetString([]byte("foo")))
	fmt.Println(n.Tag, n.Kind(), n.Constructed)
	// Output:
	// [3] OctetString false
}

func TestKindForUniversal(t *testing.T) {
	tests := map[string]struct {
		n      Number
		want   Kind
		wantOk bool
	}{
		"Boolean":   {Uint(1), KindBoolean, true},
		"BMPString": {Uint(30), KindBMPString, true},
		"Reserved":  {Uint(0), KindIncomplete, false},
		"External":  {Uint(8), KindIncomplete, false},
		"Big":       {Number{dec: "18446744073709551616"}, KindIncomplete, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := KindForUniversal(tt.n)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("KindForUniversal(%v) = %v, %v, want %v, %v", tt.n, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestKind_UniversalNumber(t *testing.T) {
	for k := range Kind(len(universalNumbers)) {
		if k == KindIncomplete {
			continue
		}
		got, ok := KindForUniversal(Uint(k.UniversalNumber()))
		if !ok || got != k {
			t.Errorf("KindForUniversal(%v.UniversalNumber()) = %v, want %v", k, got, k)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    Kind
		wantErr bool
	}{
		"Exact":     {"OctetString", KindOctetString, false},
		"Lower":     {"utf8string", KindUTF8String, false},
		"OID":       {"oid", KindObjectIdentifier, false},
		"Unknown":   {"foo", KindIncomplete, true},
		"Reserved":  {"incomplete", KindIncomplete, true},
		"Generated": {"GENERALIZEDTIME", KindGeneralizedTime, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKind_IsCharacterRestricted(t *testing.T) {
	if KindOctetString.IsCharacterRestricted() || KindCharacterString.IsCharacterRestricted() {
		t.Errorf("OctetString and CharacterString must not be character restricted")
	}
	if !KindBMPString.IsCharacterRestricted() || !KindUTF8String.IsCharacterRestricted() {
		t.Errorf("BMPString and UTF8String must be character restricted")
	}
	if !KindCharacterString.IsString() || KindBitString.IsString() {
		t.Errorf("IsString() mismatch")
	}
}

func TestRetag(t *testing.T) {
	orig := NewSequence(NewNull())
	got := Application(20, orig)
	if got == orig {
		t.Fatalf("Application() returned the original node")
	}
	if got.Tag != (Tag{ClassApplication, Uint(20)}) || !got.Constructed {
		t.Errorf("Application() = %v, constructed %v", got.Tag, got.Constructed)
	}
	if orig.Tag != UniversalTag(TagSequence) {
		t.Errorf("Application() modified the original tag: %v", orig.Tag)
	}
	if len(got.Children()) != 1 {
		t.Errorf("Children() = %v", got.Children())
	}
}
