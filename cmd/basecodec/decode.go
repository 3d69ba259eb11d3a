package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func decodeCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	input, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	var data []byte
	if name := c.String("format"); name == "auto" || name == "" {
		data, _, err = codec.DecodeAuto(input)
	} else {
		var format codec.Format
		format, err = codec.ParseFormat(name)
		if err == nil {
			data, err = codec.Decode(input, format)
		}
	}
	if err != nil {
		return err
	}

	return writeDecoded(data, c.Bool("binary"))
}

// writeDecoded renders decoded bytes. Raw bytes go straight to stdout when
// requested or when stdout is a pipe; on a terminal, non-UTF-8 payloads
// fall back to a hex dump so the terminal is not flooded with control
// bytes.
func writeDecoded(data []byte, binary bool) error {
	if binary || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := os.Stdout.Write(data)
		return err
	}
	if utf8.Valid(data) {
		fmt.Println(string(data))
		return nil
	}
	fmt.Fprintln(os.Stderr, "Warning: binary data detected, use --binary to output raw bytes")
	hex, err := codec.Encode(data, codec.Base16)
	if err != nil {
		return err
	}
	fmt.Println(strings.ToLower(hex))
	return nil
}
