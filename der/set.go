// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"slices"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
)

// IsCanonical reports whether the elements of every SET in the tree rooted at n
// are sorted in ascending order of their DER encodings. Elements are encoded
// by a codec created with opts. The encoder of this package sorts SET elements
// regardless of their order in the tree.
func IsCanonical(n *asn1tree.Node, opts ber.Options) (bool, error) {
	return isCanonical(NewCodec(opts), n)
}

func isCanonical(c *ber.Codec, n *asn1tree.Node) (bool, error) {
	if n == nil {
		return true, nil
	}
	if set, ok := n.Value.(asn1tree.Set); ok {
		encs, err := encodeAll(c, set)
		if err != nil {
			return false, err
		}
		if !slices.IsSortedFunc(encs, bytes.Compare) {
			return false, nil
		}
	}
	for _, child := range n.Children() {
		if ok, err := isCanonical(c, child); !ok || err != nil {
			return ok, err
		}
	}
	return true, nil
}

// Canonicalize sorts the elements of every SET in the tree rooted at n by their
// DER encodings. Elements are encoded by a codec created with opts. Elements
// with equal encodings keep their relative order. After a successful call
// IsCanonical(n, opts) reports true.
func Canonicalize(n *asn1tree.Node, opts ber.Options) error {
	return canonicalize(NewCodec(opts), n)
}

func canonicalize(c *ber.Codec, n *asn1tree.Node) error {
	if n == nil {
		return nil
	}
	for _, child := range n.Children() {
		if err := canonicalize(c, child); err != nil {
			return err
		}
	}
	set, ok := n.Value.(asn1tree.Set)
	if !ok {
		return nil
	}
	encs, err := encodeAll(c, set)
	if err != nil {
		return err
	}
	idx := make([]int, len(set))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return bytes.Compare(encs[a], encs[b])
	})
	sorted := make([]*asn1tree.Node, len(set))
	for i, j := range idx {
		sorted[i] = set[j]
	}
	copy(set, sorted)
	return nil
}

// encodeAll returns the encodings of nodes using c.
func encodeAll(c *ber.Codec, nodes []*asn1tree.Node) ([][]byte, error) {
	encs := make([][]byte, len(nodes))
	for i, child := range nodes {
		enc, err := c.Encode(child)
		if err != nil {
			return nil, err
		}
		encs[i] = enc
	}
	return encs, nil
}
