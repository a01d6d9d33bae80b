// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"reflect"
	"testing"
)

func TestParseTagMap(t *testing.T) {
	tests := map[string]struct {
		str     string
		want    TagMap
		wantErr bool
	}{
		"Empty": {str: "", want: TagMap{}},
		"Multiple": {str: "context:0=octetstring, application:3=set,private:18446744073709551616=oid", want: TagMap{
			ClassContextSpecific: {Uint(0): KindOctetString},
			ClassApplication:     {Uint(3): KindSet},
			ClassPrivate:         {Number{dec: "18446744073709551616"}: KindObjectIdentifier},
		}},
		"MissingKind":  {str: "context:0", wantErr: true},
		"MissingClass": {str: "0=integer", wantErr: true},
		"BadClass":     {str: "universal:1=boolean", wantErr: true},
		"BadNumber":    {str: "context:x=boolean", wantErr: true},
		"BadKind":      {str: "context:1=foo", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTagMap(tt.str)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTagMap(%q) error = %v, wantErr %v", tt.str, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTagMap(%q) = %v, want %v", tt.str, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	a := TagMap{}
	a.Set(ClassContextSpecific, 0, KindInteger)
	b := TagMap{}
	b.Set(ClassContextSpecific, 0, KindBoolean)
	b.Set(ClassContextSpecific, 1, KindNull)

	m := Merge(a, b)
	if k, _ := m.Lookup(Tag{ClassContextSpecific, Uint(0)}); k != KindInteger {
		t.Errorf("Lookup([0]) = %v, want %v", k, KindInteger)
	}
	if k, ok := m.Lookup(Tag{ClassContextSpecific, Uint(1)}); !ok || k != KindNull {
		t.Errorf("Lookup([1]) = %v, %v, want %v", k, ok, KindNull)
	}
	if _, ok := m.Lookup(Tag{ClassPrivate, Uint(1)}); ok {
		t.Errorf("Lookup([PRIVATE 1]) found an entry")
	}
}
