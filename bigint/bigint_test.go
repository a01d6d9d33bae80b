// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"bytes"
	"errors"
	"testing"
)

func TestStd(t *testing.T) {
	x, err := Std.Parse("18446744073709551615")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	one, _ := Std.FromUint64(1)
	if got := x.Add(one).String(); got != "18446744073709551616" {
		t.Errorf("Add() = %s, want 18446744073709551616", got)
	}
	if got := x.Add(one).Bytes(); !bytes.Equal(got, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0}) {
		t.Errorf("Bytes() = % X", got)
	}
	if got := x.Neg().Sub(one).Abs().String(); got != "18446744073709551616" {
		t.Errorf("Neg().Sub().Abs() = %s", got)
	}
	if got := one.Lsh(64).Cmp(x); got != 1 {
		t.Errorf("Cmp() = %d, want 1", got)
	}
	if got := x.Neg().Sign(); got != -1 {
		t.Errorf("Sign() = %d, want -1", got)
	}
	y, _ := Std.FromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	if y.Cmp(x) != 0 {
		t.Errorf("FromBytes() = %s, want %s", y, x)
	}
	if _, err = Std.Parse("12a"); err == nil {
		t.Errorf("Parse(12a) expected error")
	}
}

func TestUnavailable(t *testing.T) {
	if _, err := Unavailable.Parse("1"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnavailable)
	}
	if _, err := Unavailable.FromBytes([]byte{1}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FromBytes() error = %v, want %v", err, ErrUnavailable)
	}
	if _, err := Unavailable.FromUint64(1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("FromUint64() error = %v, want %v", err, ErrUnavailable)
	}
}
