// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// textEncoding returns the character encoding used by strings of kind k. A nil
// encoding indicates UTF-8 or one of its ASCII subsets.
func textEncoding(k Kind) encoding.Encoding {
	switch k {
	case KindBMPString:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case KindUniversalString:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case KindTeletexString, KindVideotexString:
		// T.61 is commonly treated as Latin-1.
		return charmap.ISO8859_1
	}
	return nil
}

// Text decodes the contents of s into a Go string. BMPString contents are
// decoded as UTF-16BE, UniversalString contents as UTF-32BE and
// TeletexString and VideotexString contents as ISO 8859-1. Other kinds are
// returned as-is.
func (s String) Text() (string, error) {
	enc := textEncoding(s.Type)
	if enc == nil {
		return string(s.Bytes), nil
	}
	b, err := enc.NewDecoder().Bytes(s.Bytes)
	return string(b), err
}

func encodeText(k Kind, s string) ([]byte, error) {
	enc := textEncoding(k)
	if enc == nil {
		return []byte(s), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}
