package main

import (
	"fmt"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"

	"github.com/urfave/cli/v2"
)

func validateCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	format, err := codec.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	input, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	if codec.IsValid(input, format) {
		fmt.Printf("Valid %s\n", format)
		return nil
	}
	fmt.Printf("Invalid %s\n", format)
	return cli.Exit("", 1)
}
