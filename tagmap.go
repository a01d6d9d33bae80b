// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"fmt"
	"strings"
)

// TagMap maps tags in the [ClassApplication], [ClassContextSpecific] and
// [ClassPrivate] namespaces to the kind used to decode them. Entries for
// [ClassUniversal] are ignored by the codecs.
type TagMap map[Class]map[Number]Kind

// Lookup returns the kind mapped to t.
func (m TagMap) Lookup(t Tag) (Kind, bool) {
	k, ok := m[t.Class][t.Number]
	return k, ok
}

// Set maps the tag number num in namespace c to k.
func (m TagMap) Set(c Class, num uint64, k Kind) {
	m.SetTag(Tag{c, Uint(num)}, k)
}

// SetTag maps t to k.
func (m TagMap) SetTag(t Tag, k Kind) {
	inner := m[t.Class]
	if inner == nil {
		inner = make(map[Number]Kind)
		m[t.Class] = inner
	}
	inner[t.Number] = k
}

// Merge returns a new TagMap containing the entries of all maps. If a tag is
// present in more than one map, the entry of the earliest map wins.
func Merge(maps ...TagMap) TagMap {
	ret := make(TagMap)
	for i := len(maps) - 1; i >= 0; i-- {
		for c, inner := range maps[i] {
			for num, k := range inner {
				ret.SetTag(Tag{c, num}, k)
			}
		}
	}
	return ret
}

// ParseTagMap parses a comma-separated list of tag assignments of the form
//
//	class:number=kind
//
// where class is one of "application", "context" or "private", number is a
// non-negative integer and kind is a name accepted by [ParseKind]. For example
// "context:0=octetstring,application:3=set".
func ParseTagMap(str string) (TagMap, error) {
	ret := make(TagMap)
	if strings.TrimSpace(str) == "" {
		return ret, nil
	}
	for part := range strings.SplitSeq(str, ",") {
		part = strings.TrimSpace(part)
		lhs, kindName, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("asn1tree: invalid tag assignment %q", part)
		}
		className, numStr, ok := strings.Cut(lhs, ":")
		if !ok {
			return nil, fmt.Errorf("asn1tree: invalid tag %q", lhs)
		}
		var c Class
		switch strings.ToLower(className) {
		case "application":
			c = ClassApplication
		case "context":
			c = ClassContextSpecific
		case "private":
			c = ClassPrivate
		default:
			return nil, fmt.Errorf("asn1tree: invalid tag class %q", className)
		}
		num, err := ParseNumber(numStr)
		if err != nil {
			return nil, err
		}
		k, err := ParseKind(kindName)
		if err != nil {
			return nil, err
		}
		ret.SetTag(Tag{c, num}, k)
	}
	return ret, nil
}
