package main

import (
	"fmt"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"

	"github.com/urfave/cli/v2"
)

func convertCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	from := codec.FormatUnknown // auto-detect
	if name := c.String("from-format"); name != "" && name != "auto" {
		from, err = codec.ParseFormat(name)
		if err != nil {
			return err
		}
	}
	to, err := codec.ParseFormat(c.String("to-format"))
	if err != nil {
		return err
	}

	input, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	result, err := codec.Convert(input, from, to)
	if err != nil {
		return err
	}

	fmt.Println(renderEncoded(result, to, cfg))
	return nil
}
