package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. Every typed error below wraps
// exactly one of these.
var (
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrInvalidPadding    = errors.New("invalid padding")
	ErrInvalidLength     = errors.New("invalid length")
	ErrNoMatch           = errors.New("no encoding format matches")
	ErrUnsupportedFormat = errors.New("unsupported encoding format")
)

// InvalidCharacterError reports a character outside the target format's
// alphabet.
type InvalidCharacterError struct {
	Format Format
	Char   byte
	Pos    int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s: invalid character %q at position %d", e.Format, e.Char, e.Pos)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// InvalidPaddingError reports padding whose count or position violates the
// format's rules.
type InvalidPaddingError struct {
	Format Format
	Pos    int
	Reason string
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("%s: %s at position %d", e.Format, e.Reason, e.Pos)
}

func (e *InvalidPaddingError) Unwrap() error { return ErrInvalidPadding }

// InvalidLengthError reports a length that is not a legal multiple for the
// format.
type InvalidLengthError struct {
	Format Format
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: invalid length %d", e.Format, e.Length)
}

func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// DetectionError reports that no format validates the input.
type DetectionError struct {
	Input string
}

func (e *DetectionError) Error() string {
	return "unable to detect encoding format"
}

func (e *DetectionError) Unwrap() error { return ErrNoMatch }

// UnsupportedFormatError reports a format name outside the supported set.
// Suggestion, when non-empty, is the closest known name.
type UnsupportedFormatError struct {
	Name       string
	Suggestion string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unsupported encoding format %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unsupported encoding format %q", e.Name)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
