// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
)

// typeNames holds the ASN.1 notation of every kind.
var typeNames = map[asn1tree.Kind]string{
	asn1tree.KindBoolean:          "BOOLEAN",
	asn1tree.KindInteger:          "INTEGER",
	asn1tree.KindBitString:        "BIT STRING",
	asn1tree.KindOctetString:      "OCTET STRING",
	asn1tree.KindNull:             "NULL",
	asn1tree.KindObjectIdentifier: "OBJECT IDENTIFIER",
	asn1tree.KindReal:             "REAL",
	asn1tree.KindEnumerated:       "ENUMERATED",
	asn1tree.KindRelativeOID:      "RELATIVE-OID",
	asn1tree.KindSequence:         "SEQUENCE",
	asn1tree.KindSet:              "SET",
	asn1tree.KindCharacterString:  "CHARACTER STRING",
}

func typeName(k asn1tree.Kind) string {
	if s, ok := typeNames[k]; ok {
		return s
	}
	return k.String()
}

// printTree writes an indented representation of the tree rooted at n to w.
func printTree(w io.Writer, n *asn1tree.Node) error {
	bw := bufio.NewWriter(w)
	printNode(bw, n, 0)
	return bw.Flush()
}

func printNode(w *bufio.Writer, n *asn1tree.Node, depth int) {
	w.WriteString(strings.Repeat("  ", depth))
	k := n.Kind()
	if n.Tag != asn1tree.UniversalTag(k.UniversalNumber()) {
		w.WriteString(n.Tag.String())
		w.WriteByte(' ')
	}
	if k == asn1tree.KindIncomplete {
		if n.Constructed {
			w.WriteString("constructed ")
		}
		raw, _ := n.Value.(asn1tree.Incomplete)
		fmt.Fprintf(w, "%X\n", []byte(raw))
		return
	}
	w.WriteString(typeName(k))
	if v := formatValue(n.Value); v != "" {
		w.WriteByte(' ')
		w.WriteString(v)
	}
	w.WriteByte('\n')
	for _, child := range n.Children() {
		printNode(w, child, depth+1)
	}
}

// formatValue returns the value of a primitive node in ASN.1 value notation.
func formatValue(v asn1tree.Value) string {
	switch v := v.(type) {
	case asn1tree.Boolean:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case asn1tree.Integer:
		return v.String()
	case asn1tree.Enumerated:
		return v.String()
	case asn1tree.Real:
		switch {
		case math.IsInf(float64(v), 1):
			return "PLUS-INFINITY"
		case math.IsInf(float64(v), -1):
			return "MINUS-INFINITY"
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case asn1tree.BitString:
		return "'" + string(v) + "'B"
	case asn1tree.OctetString:
		return fmt.Sprintf("'%X'H", []byte(v))
	case asn1tree.String:
		if s, err := v.Text(); err == nil {
			return strconv.Quote(s)
		}
		return fmt.Sprintf("'%X'H", v.Bytes)
	case asn1tree.ObjectIdentifier:
		return string(v)
	case asn1tree.RelativeOID:
		return string(v)
	case asn1tree.Time:
		return v.String()
	case asn1tree.Sequence:
		return "(" + strconv.Itoa(len(v)) + " elements)"
	case asn1tree.Set:
		return "(" + strconv.Itoa(len(v)) + " elements)"
	}
	return ""
}
