// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"fmt"
	"time"
)

// Node is a single ASN.1 value in a value tree. Nodes of kind [KindSequence]
// and [KindSet] own their children.
//
// Constructed reports whether the value uses the constructed encoding. It is
// always true for [Sequence] and [Set] values and false for other values unless
// they were decoded from a constructed (segmented) string encoding.
type Node struct {
	Tag         Tag
	Constructed bool
	Value       Value
}

// Kind returns the kind of the value of n. A node without a value is reported
// as [KindIncomplete].
func (n *Node) Kind() Kind {
	if n.Value == nil {
		return KindIncomplete
	}
	return n.Value.Kind()
}

// Children returns the elements of a [Sequence] or [Set] value. For other
// values Children returns nil.
func (n *Node) Children() []*Node {
	switch v := n.Value.(type) {
	case Sequence:
		return v
	case Set:
		return v
	}
	return nil
}

//region Factory

// NewNode returns a node holding v using the universal tag of its kind. The
// node is constructed if v is a [Sequence] or [Set].
func NewNode(v Value) *Node {
	k := v.Kind()
	return &Node{
		Tag:         UniversalTag(k.UniversalNumber()),
		Constructed: k == KindSequence || k == KindSet,
		Value:       v,
	}
}

// NewBoolean returns a BOOLEAN node.
func NewBoolean(b bool) *Node {
	return NewNode(Boolean(b))
}

// NewInteger returns an INTEGER node holding v.
func NewInteger(v int64) *Node {
	return NewNode(Integer{NewInt(v)})
}

// NewEnumerated returns an ENUMERATED node holding v.
func NewEnumerated(v int64) *Node {
	return NewNode(Enumerated{NewInt(v)})
}

// NewNull returns a NULL node.
func NewNull() *Node {
	return NewNode(Null{})
}

// NewReal returns a REAL node. Only zero and the infinities can be encoded.
func NewReal(f float64) *Node {
	return NewNode(Real(f))
}

// NewBigInteger returns an INTEGER node holding the base 10 integer s.
func NewBigInteger(s string) (*Node, error) {
	i, err := ParseInt(s)
	if err != nil {
		return nil, err
	}
	return NewNode(Integer{i}), nil
}

// NewBitString returns a BIT STRING node. bits consists of the characters '0'
// and '1'.
func NewBitString(bits string) *Node {
	return NewNode(BitString(bits))
}

// NewOctetString returns an OCTET STRING node holding b.
func NewOctetString(b []byte) *Node {
	return NewNode(OctetString(b))
}

// NewObjectIdentifier returns an OBJECT IDENTIFIER node for the dotted notation
// oid, for example "1.2.840.113549".
func NewObjectIdentifier(oid string) *Node {
	return NewNode(ObjectIdentifier(oid))
}

// NewRelativeOID returns a RELATIVE-OID node for the dotted notation oid.
func NewRelativeOID(oid string) *Node {
	return NewNode(RelativeOID(oid))
}

// NewSequence returns a constructed SEQUENCE node with the given elements.
func NewSequence(children ...*Node) *Node {
	return NewNode(Sequence(children))
}

// NewSet returns a constructed SET node. The elements keep their order unless
// the node is encoded using DER.
func NewSet(children ...*Node) *Node {
	return NewNode(Set(children))
}

// NewIncomplete returns a node holding undecoded contents octets. Use
// [Retag] to give it the tag it was read with.
func NewIncomplete(contents []byte) *Node {
	return NewNode(Incomplete(contents))
}

// NewStringBytes returns a character string node of kind k holding the encoded
// characters b.
func NewStringBytes(k Kind, b []byte) *Node {
	return NewNode(String{k, b})
}

// NewString returns a character string node of kind k holding s. The text is
// converted to the character encoding of k, see [String.Text].
func NewString(k Kind, s string) (*Node, error) {
	if !k.IsCharacterRestricted() && k != KindCharacterString {
		return nil, fmt.Errorf("asn1tree: %v is not a character string kind", k)
	}
	b, err := encodeText(k, s)
	if err != nil {
		return nil, err
	}
	return NewNode(String{k, b}), nil
}

// NewUTCTime returns a UTCTime node. UTCTime cannot be encoded with a
// precision finer than seconds.
func NewUTCTime(t time.Time, p Precision, z Zone) *Node {
	return NewNode(Time{KindUTCTime, t, p, z})
}

// NewGeneralizedTime returns a GeneralizedTime node.
func NewGeneralizedTime(t time.Time, p Precision, z Zone) *Node {
	return NewNode(Time{KindGeneralizedTime, t, p, z})
}

//endregion

//region Tagging

// Retag returns a shallow copy of n using tag t. The constructed flag and the
// value are kept, so the result is an IMPLICIT tagging of n.
func Retag(t Tag, n *Node) *Node {
	c := *n
	c.Tag = t
	return &c
}

// Universal returns n with tag number num in the [ClassUniversal] namespace.
func Universal(num uint64, n *Node) *Node {
	return Retag(Tag{ClassUniversal, Uint(num)}, n)
}

// Application returns n with tag number num in the [ClassApplication]
// namespace.
func Application(num uint64, n *Node) *Node {
	return Retag(Tag{ClassApplication, Uint(num)}, n)
}

// Context returns n with tag number num in the [ClassContextSpecific]
// namespace.
func Context(num uint64, n *Node) *Node {
	return Retag(Tag{ClassContextSpecific, Uint(num)}, n)
}

// Private returns n with tag number num in the [ClassPrivate] namespace.
func Private(num uint64, n *Node) *Node {
	return Retag(Tag{ClassPrivate, Uint(num)}, n)
}

// Explicit wraps n in a constructed node using tag t. This corresponds to an
// EXPLICIT tagging of n. The wrapper is decoded as a [Sequence] when its tag is
// mapped to [KindSequence] in a [TagMap].
func Explicit(t Tag, n *Node) *Node {
	return &Node{Tag: t, Constructed: true, Value: Sequence{n}}
}

//endregion
