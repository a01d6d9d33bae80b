// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint defines the arbitrary-precision arithmetic used by the codecs
// once a value no longer fits into a native machine word.
//
// The codecs never use math/big directly. Instead they are configured with an
// [Arith] value. [Std] is backed by [math/big], [Unavailable] rejects every
// operation with [ErrUnavailable]. Encoders and decoders translate
// [ErrUnavailable] into their "not implemented" error.
package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrUnavailable is returned by an [Arith] that does not support
// arbitrary-precision arithmetic.
var ErrUnavailable = errors.New("bigint: arbitrary-precision arithmetic unavailable")

// Arith creates arbitrary-precision integers.
type Arith interface {
	// Parse parses a base 10 integer with an optional leading minus sign.
	Parse(s string) (Int, error)
	// FromBytes interprets b as an unsigned big-endian magnitude.
	FromBytes(b []byte) (Int, error)
	// FromUint64 returns v as an Int.
	FromUint64(v uint64) (Int, error)
}

// Int is an immutable arbitrary-precision integer. Operands passed to the
// methods of an Int must have been created by the same [Arith].
type Int interface {
	Add(y Int) Int
	Sub(y Int) Int
	Neg() Int
	Abs() Int
	// Lsh returns the value shifted left by n bits.
	Lsh(n uint) Int
	// Cmp compares the value to y and returns -1, 0 or +1.
	Cmp(y Int) int
	Sign() int
	// Bytes returns the absolute value as a big-endian byte slice without
	// leading zeros. The zero value returns an empty slice.
	Bytes() []byte
	// String returns the value in base 10.
	String() string
}

var (
	// Std implements Arith using math/big.
	Std Arith = stdArith{}
	// Unavailable implements Arith by failing every operation.
	Unavailable Arith = unavailable{}
)

type stdArith struct{}

func (stdArith) Parse(s string) (Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bigint: invalid integer %q", s)
	}
	return stdInt{i}, nil
}

func (stdArith) FromBytes(b []byte) (Int, error) {
	return stdInt{new(big.Int).SetBytes(b)}, nil
}

func (stdArith) FromUint64(v uint64) (Int, error) {
	return stdInt{new(big.Int).SetUint64(v)}, nil
}

type stdInt struct{ v *big.Int }

func (x stdInt) Add(y Int) Int  { return stdInt{new(big.Int).Add(x.v, y.(stdInt).v)} }
func (x stdInt) Sub(y Int) Int  { return stdInt{new(big.Int).Sub(x.v, y.(stdInt).v)} }
func (x stdInt) Neg() Int       { return stdInt{new(big.Int).Neg(x.v)} }
func (x stdInt) Abs() Int       { return stdInt{new(big.Int).Abs(x.v)} }
func (x stdInt) Lsh(n uint) Int { return stdInt{new(big.Int).Lsh(x.v, n)} }
func (x stdInt) Cmp(y Int) int  { return x.v.Cmp(y.(stdInt).v) }
func (x stdInt) Sign() int      { return x.v.Sign() }
func (x stdInt) Bytes() []byte  { return x.v.Bytes() }
func (x stdInt) String() string { return x.v.String() }

type unavailable struct{}

func (unavailable) Parse(string) (Int, error)      { return nil, ErrUnavailable }
func (unavailable) FromBytes([]byte) (Int, error)  { return nil, ErrUnavailable }
func (unavailable) FromUint64(uint64) (Int, error) { return nil, ErrUnavailable }
