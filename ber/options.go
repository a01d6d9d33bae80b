// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"log/slog"
	"time"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/bigint"
)

// DefaultMaxDepth is the nesting depth used if [Options.MaxDepth] is zero.
const DefaultMaxDepth = 64

// Options configure a [Codec]. The zero value is a valid configuration.
type Options struct {
	// BitStringPadding is the character used to fill the unused bits of the last
	// octet of an encoded BIT STRING. It must be '0' or '1'. The zero value
	// selects '0'.
	BitStringPadding byte

	// Arith provides arbitrary-precision arithmetic for values that do not fit
	// into 64 bits. If nil, bigint.Std is used. Use bigint.Unavailable to
	// reject such values with ErrNotImplemented.
	Arith bigint.Arith

	// MaxDepth limits the nesting of constructed values during decoding and
	// encoding. If zero, DefaultMaxDepth is used.
	MaxDepth int

	// Tags resolves non-universal tags during decoding. Tags passed to an
	// individual decoding call take precedence.
	Tags asn1tree.TagMap

	// Location is used for times without a zone designator. If nil, time.Local
	// is used.
	Location *time.Location

	// Logger receives debug output. If nil, logging is disabled.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.BitStringPadding == 0 {
		o.BitStringPadding = '0'
	}
	if o.Arith == nil {
		o.Arith = bigint.Std
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
