package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"

	"github.com/urfave/cli/v2"
)

func detectCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	input, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	format := codec.Detect(input)
	fmt.Printf("Detected format: %s\n", format)

	if format == codec.FormatUnknown {
		return nil
	}
	data, err := codec.Decode(input, format)
	if err == nil && utf8.Valid(data) {
		fmt.Printf("Decoded value: %s\n", data)
	} else {
		fmt.Println("(unable to decode as UTF-8 text)")
	}
	return nil
}
