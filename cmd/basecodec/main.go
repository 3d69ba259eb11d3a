package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BaseMax/base-encoder-decoder/internal/codec"
	"github.com/BaseMax/base-encoder-decoder/internal/config"
	"github.com/BaseMax/base-encoder-decoder/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(version.FullInfo())
	}

	app := &cli.App{
		Name:                   "basecodec",
		Usage:                  "Encode, decode, detect, and convert Base16, Base32, and Base64",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode data to a base format",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Encoding format: base16, base32, or base64 (default from config)",
					},
				},
				Action: encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode base-encoded data",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Encoding format: base16, base32, base64, or auto",
						Value:   "auto",
					},
					&cli.BoolFlag{
						Name:    "binary",
						Aliases: []string{"b"},
						Usage:   "Write raw bytes to stdout",
					},
				},
				Action: decodeCommand,
			},
			{
				Name:      "detect",
				Usage:     "Auto-detect the encoding format",
				ArgsUsage: "[input]",
				Action:    detectCommand,
			},
			{
				Name:      "convert",
				Usage:     "Convert between base formats",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "from-format",
						Aliases: []string{"f"},
						Usage:   "Source format: base16, base32, base64, or auto",
						Value:   "auto",
					},
					&cli.StringFlag{
						Name:     "to-format",
						Aliases:  []string{"t"},
						Usage:    "Target format: base16, base32, or base64",
						Required: true,
					},
				},
				Action: convertCommand,
			},
			{
				Name:      "validate",
				Usage:     "Check whether data conforms to a format",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "format",
						Aliases:  []string{"f"},
						Usage:    "Expected format: base16, base32, or base64",
						Required: true,
					},
				},
				Action: validateCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// readInput returns the positional argument when given, otherwise the
// whole of stdin (with the trailing newline stripped unless configured
// off).
func readInput(c *cli.Context, cfg *config.Config) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	input := string(data)
	if cfg.Input.TrimNewline {
		input = strings.TrimRight(input, "\r\n")
	}
	return input, nil
}

// renderEncoded applies the configured presentation to canonical encoder
// output. Only hex has a presentation choice.
func renderEncoded(text string, format codec.Format, cfg *config.Config) string {
	if format == codec.Base16 && cfg.Output.HexCase == config.HexCaseLower {
		return strings.ToLower(text)
	}
	return text
}
