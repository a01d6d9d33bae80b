// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Number is a non-negative integer of arbitrary size. Values that fit into a
// uint64 are held natively, larger values as decimal text. Number values are
// comparable and can be used as map keys. The zero value is 0.
type Number struct {
	n   uint64
	dec string // set iff the value exceeds math.MaxUint64
}

// Uint returns v as a Number.
func Uint(v uint64) Number {
	return Number{n: v}
}

// ParseNumber parses a non-negative base 10 integer. Leading zeros are
// ignored.
func ParseNumber(s string) (Number, error) {
	digits, ok := cutDigits(s)
	if !ok {
		return Number{}, fmt.Errorf("asn1tree: invalid number %q", s)
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Number{dec: digits}, nil
	}
	return Number{n: v}, err
}

// Uint64 returns the value of n. If n does not fit into a uint64, ok is false.
func (n Number) Uint64() (v uint64, ok bool) {
	return n.n, n.dec == ""
}

// IsBig reports whether n exceeds the range of a uint64.
func (n Number) IsBig() bool {
	return n.dec != ""
}

// String returns the decimal representation of n.
func (n Number) String() string {
	if n.dec != "" {
		return n.dec
	}
	return strconv.FormatUint(n.n, 10)
}

// Int is a signed integer of arbitrary size. Values that fit into an int64 are
// held natively, larger magnitudes as decimal text. Int values are comparable.
// The zero value is 0.
type Int struct {
	n   int64
	dec string // set iff the value is outside the range of an int64
}

// NewInt returns v as an Int.
func NewInt(v int64) Int {
	return Int{n: v}
}

// ParseInt parses a base 10 integer with an optional sign. Leading zeros are
// ignored.
func ParseInt(s string) (Int, error) {
	neg := false
	rest := s
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	digits, ok := cutDigits(rest)
	if !ok {
		return Int{}, fmt.Errorf("asn1tree: invalid integer %q", s)
	}
	if neg && digits != "0" {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Int{dec: digits}, nil
	}
	return Int{n: v}, err
}

// Int64 returns the value of i. If i does not fit into an int64, ok is false.
func (i Int) Int64() (v int64, ok bool) {
	return i.n, i.dec == ""
}

// IsBig reports whether i is outside the range of an int64.
func (i Int) IsBig() bool {
	return i.dec != ""
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int) Sign() int {
	switch {
	case i.dec != "" && i.dec[0] == '-':
		return -1
	case i.dec != "":
		return 1
	case i.n < 0:
		return -1
	case i.n > 0:
		return 1
	}
	return 0
}

// String returns the decimal representation of i.
func (i Int) String() string {
	if i.dec != "" {
		return i.dec
	}
	return strconv.FormatInt(i.n, 10)
}

// cutDigits validates that s consists of ASCII digits only and strips leading
// zeros.
func cutDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return s, true
}
