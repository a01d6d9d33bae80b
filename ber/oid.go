// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/bigint"
	"codello.dev/asn1tree/internal/vlq"
)

//region [UNIVERSAL 6] OBJECT IDENTIFIER and [UNIVERSAL 13] RELATIVE-OID

var errEmptyOID = errors.New("object identifier must not be empty")

// decodeOID decodes an OBJECT IDENTIFIER or, if relative is true, a
// RELATIVE-OID into dot-separated notation.
func decodeOID(b []byte, a bigint.Arith, relative bool) (string, error) {
	if len(b) == 0 {
		return "", errEmptyOID
	}
	var s strings.Builder
	first := !relative
	for len(b) > 0 {
		v, big, n, err := vlq.DecodeMinimal(b, a)
		if errors.Is(err, vlq.ErrTruncated) {
			return "", errors.New("truncated object identifier component")
		} else if err != nil {
			return "", err
		}
		b = b[n:]
		if s.Len() > 0 {
			s.WriteByte('.')
		}
		if first {
			// The first subidentifier combines the first two components.
			first = false
			switch {
			case big != nil:
				eighty, err := a.FromUint64(80)
				if err != nil {
					return "", err
				}
				s.WriteString("2.")
				s.WriteString(big.Sub(eighty).String())
			case v < 80:
				s.WriteString(strconv.FormatUint(v/40, 10))
				s.WriteByte('.')
				s.WriteString(strconv.FormatUint(v%40, 10))
			default:
				s.WriteString("2.")
				s.WriteString(strconv.FormatUint(v-80, 10))
			}
			continue
		}
		if big != nil {
			s.WriteString(big.String())
		} else {
			s.WriteString(strconv.FormatUint(v, 10))
		}
	}
	return s.String(), nil
}

// appendOID appends the encoding of an OBJECT IDENTIFIER or, if relative is
// true, a RELATIVE-OID to dst.
func appendOID(dst []byte, comps []asn1tree.Number, a bigint.Arith, relative bool) ([]byte, error) {
	if relative {
		if len(comps) == 0 {
			return dst, errEmptyOID
		}
		return appendComponents(dst, comps, a)
	}
	if len(comps) < 2 {
		return dst, errors.New("object identifier must have at least 2 components")
	}
	first, ok := comps[0].Uint64()
	if !ok || first > 2 {
		return dst, fmt.Errorf("first object identifier component must be 0, 1 or 2, got %v", comps[0])
	}
	second, ok := comps[1].Uint64()
	if first < 2 && (!ok || second >= 40) {
		return dst, fmt.Errorf("second object identifier component must be less than 40, got %v", comps[1])
	}
	if ok && second <= math.MaxUint64-80 {
		dst = vlq.Append(dst, first*40+second)
	} else {
		x, err := a.Parse(comps[1].String())
		if err != nil {
			return dst, err
		}
		eighty, err := a.FromUint64(80)
		if err != nil {
			return dst, err
		}
		dst = vlq.AppendBytes(dst, x.Add(eighty).Bytes())
	}
	return appendComponents(dst, comps[2:], a)
}

func appendComponents(dst []byte, comps []asn1tree.Number, a bigint.Arith) ([]byte, error) {
	for _, c := range comps {
		if v, ok := c.Uint64(); ok {
			dst = vlq.Append(dst, v)
			continue
		}
		x, err := a.Parse(c.String())
		if err != nil {
			return dst, err
		}
		dst = vlq.AppendBytes(dst, x.Bytes())
	}
	return dst, nil
}

//endregion
