// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der_test

import (
	"errors"
	"fmt"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/der"
)

func ExampleNewCodec() {
	c := der.NewCodec(ber.Options{})
	data, err := c.Encode(asn1tree.NewSet(
		asn1tree.NewOctetString([]byte("foo")),
		asn1tree.NewOctetString([]byte("bar")),
	))
	if err != nil {
		panic(err)
	}
	fmt.Printf("% X\n", data)

	_, _, err = c.Decode([]byte{0x01, 0x81, 0x01, 0xFF}, nil)
	fmt.Println(errors.Is(err, ber.ErrMalformed))
	// Output:
	// 31 0A 04 03 62 61 72 04 03 66 6F 6F
	// true
}
