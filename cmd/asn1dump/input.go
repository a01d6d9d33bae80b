// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"unicode"
)

// sniffSize is the number of bytes inspected to detect the input format.
const sniffSize = 512

// newInput returns a reader producing the binary data encoded in r. format is
// one of "raw", "hex", "base64" or "auto". Hex input may contain whitespace.
func newInput(r io.Reader, format string) (io.Reader, error) {
	switch format {
	case "raw":
		return r, nil
	case "hex":
		return hex.NewDecoder(&spaceSkipper{r: r}), nil
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, &spaceSkipper{r: r}), nil
	case "auto":
		br := bufio.NewReaderSize(r, sniffSize)
		head, _ := br.Peek(sniffSize)
		format = detectFormat(head)
		slog.Debug("detected input format", "format", format)
		return newInput(br, format)
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// detectFormat guesses the format of input starting with head.
func detectFormat(head []byte) string {
	isHex, isBase64 := len(head) > 0, len(head) > 0
	for _, c := range head {
		switch {
		case unicode.IsSpace(rune(c)):
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		case 'g' <= c && c <= 'z', 'G' <= c && c <= 'Z', c == '+', c == '/', c == '=':
			isHex = false
		default:
			isHex, isBase64 = false, false
		}
	}
	switch {
	case isHex:
		return "hex"
	case isBase64:
		return "base64"
	}
	return "raw"
}

// spaceSkipper drops ASCII whitespace from the underlying reader.
type spaceSkipper struct {
	r io.Reader
}

func (s *spaceSkipper) Read(p []byte) (int, error) {
	for {
		n, err := s.r.Read(p)
		j := 0
		for _, c := range p[:n] {
			if !unicode.IsSpace(rune(c)) {
				p[j] = c
				j++
			}
		}
		if j > 0 || err != nil {
			return j, err
		}
	}
}
