// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "codello.dev/asn1tree"

// A Profile restricts the Basic Encoding Rules. Profiles are used to implement
// encoding rules that are a subset of BER, such as the Distinguished Encoding
// Rules.
//
// Errors returned by a Profile are reported as ErrMalformed unless they wrap
// another sentinel of this package.
type Profile interface {
	// CheckLongLength is called for every length decoded using the long form.
	// numOctets is the number of octets following the initial length octet.
	CheckLongLength(length, numOctets int) error

	// CheckContents is called with the contents octets of a primitive value
	// before they are decoded as kind.
	CheckContents(kind asn1tree.Kind, contents []byte) error

	// CheckNode is called for every node after it has been decoded and before
	// it is encoded.
	CheckNode(n *asn1tree.Node) error

	// SortSets reports whether the elements of a SET are encoded in ascending
	// order of their encodings. If true, decoding a SET whose elements are not
	// in that order fails.
	SortSets() bool
}

// basicProfile implements the unrestricted Basic Encoding Rules.
type basicProfile struct{}

func (basicProfile) CheckLongLength(int, int) error            { return nil }
func (basicProfile) CheckContents(asn1tree.Kind, []byte) error { return nil }
func (basicProfile) CheckNode(*asn1tree.Node) error            { return nil }
func (basicProfile) SortSets() bool                            { return false }
