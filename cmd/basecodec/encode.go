package main

import (
	"fmt"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"

	"github.com/urfave/cli/v2"
)

func encodeCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	name := c.String("format")
	if name == "" {
		name = cfg.Encode.DefaultFormat
	}
	format, err := codec.ParseFormat(name)
	if err != nil {
		return err
	}

	input, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	result, err := codec.Encode([]byte(input), format)
	if err != nil {
		return err
	}

	fmt.Println(renderEncoded(result, format, cfg))
	return nil
}
