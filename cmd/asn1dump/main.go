// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// asn1dump decodes BER or DER encoded data and prints the value tree of every
// data value in the input.
//
// Usage:
//
//	asn1dump [-der] [-format auto|hex|base64|raw] [-tags list] [-v] [file]
//	asn1dump -i [-der] [-tags list] [-v]
//
// Without a file the input is read from standard input. Tags outside the
// universal namespace are resolved using -tags, for example
// "context:0=integer,application:1=sequence". Unresolved values are printed as
// hex. With -i data values are read interactively as hex, one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/ber"
	"codello.dev/asn1tree/der"
)

func main() {
	useDER := flag.Bool("der", false, "enforce the Distinguished Encoding Rules")
	format := flag.String("format", "auto", "input format: auto, hex, base64 or raw")
	tagSpec := flag.String("tags", "", "tag assignments of the form class:number=kind,...")
	verbose := flag.Bool("v", false, "enable debug logging")
	interactive := flag.Bool("i", false, "read hex encoded data values interactively")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var tags asn1tree.TagMap
	if *tagSpec != "" {
		var err error
		if tags, err = asn1tree.ParseTagMap(*tagSpec); err != nil {
			fmt.Fprintf(os.Stderr, "asn1dump: -tags: %v\n", err)
			os.Exit(2)
		}
	}
	opts := ber.Options{Tags: tags, Logger: logger}
	codec := ber.NewCodec(opts)
	if *useDER {
		codec = der.NewCodec(opts)
	}

	if *interactive {
		if err := runInteractive(codec); err != nil {
			fmt.Fprintf(os.Stderr, "asn1dump: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "asn1dump: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	r, err := newInput(in, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asn1dump: %v\n", err)
		os.Exit(2)
	}
	if err = dump(os.Stdout, codec, r); err != nil {
		fmt.Fprintf(os.Stderr, "asn1dump: %v\n", err)
		os.Exit(1)
	}
}

// dump prints every data value in r.
func dump(w io.Writer, c *ber.Codec, r io.Reader) error {
	dec := c.NewDecoder(r, nil)
	for {
		n, err := dec.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		slog.Debug("decoded data value", "offset", dec.InputOffset())
		if err = printTree(w, n); err != nil {
			return err
		}
	}
}
