// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"codello.dev/asn1tree/ber"
)

// runInteractive reads hex encoded data values from the terminal and prints
// their value trees until the input ends.
func runInteractive(c *ber.Codec) error {
	var historyFile string
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "asn1dump_history")
	} else {
		slog.Debug("history disabled", "err", err)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "asn1> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := eval(os.Stdout, c, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// eval decodes and prints the data values encoded in the hex string line.
// Whitespace in line is ignored.
func eval(w io.Writer, c *ber.Codec, line string) error {
	data, err := hex.DecodeString(strings.Join(strings.Fields(line), ""))
	if err != nil {
		return err
	}
	for len(data) > 0 {
		n, rest, err := c.Decode(data, nil)
		if err != nil {
			return err
		}
		if err = printTree(w, n); err != nil {
			return err
		}
		data = rest
	}
	return nil
}
