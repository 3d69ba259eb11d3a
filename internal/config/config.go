// Package config loads optional CLI settings from a .basecodec.kdl file.
// The core codec takes no configuration; everything here is presentation
// and default selection for the command-line tool.
package config

import (
	"fmt"
)

// DefaultConfigFile is the config file name looked up in the working
// directory when no --config path is given.
const DefaultConfigFile = ".basecodec.kdl"

// Hex case options for CLI output. The encoder itself always produces the
// canonical upper-case form; "lower" is applied as a presentation step.
const (
	HexCaseUpper = "upper"
	HexCaseLower = "lower"
)

type Config struct {
	Version int
	Encode  Encode
	Output  Output
	Input   Input
}

// Encode holds defaults for the encode subcommand.
type Encode struct {
	DefaultFormat string // "base16", "base32", or "base64"
}

// Output controls how results are rendered.
type Output struct {
	HexCase string // HexCaseUpper or HexCaseLower
}

// Input controls how stdin input is pre-processed.
type Input struct {
	TrimNewline bool // strip one trailing newline from piped input
}

// Default returns the factory configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		Version: 1,
		Encode:  Encode{DefaultFormat: "base64"},
		Output:  Output{HexCase: HexCaseUpper},
		Input:   Input{TrimNewline: true},
	}
}

// Validate checks that configured values are within the supported sets.
func (c *Config) Validate() error {
	switch c.Encode.DefaultFormat {
	case "base16", "base32", "base64":
	default:
		return fmt.Errorf("config: unknown default_format %q", c.Encode.DefaultFormat)
	}
	switch c.Output.HexCase {
	case HexCaseUpper, HexCaseLower:
	default:
		return fmt.Errorf("config: hex_case must be %q or %q, got %q", HexCaseUpper, HexCaseLower, c.Output.HexCase)
	}
	return nil
}
