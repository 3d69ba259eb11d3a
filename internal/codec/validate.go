package codec

import "github.com/BaseMax/base-encoder-decoder/internal/alphabet"

// Legal '=' counts in a final block: the block size minus the symbol
// counts that leftover bytes can produce (2/4/5/7 symbols for 1-4 leftover
// bytes in Base32, 2/3 symbols for 1-2 leftover bytes in Base64).
var (
	base32PadCounts = map[int]bool{0: true, 1: true, 3: true, 4: true, 6: true}
	base64PadCounts = map[int]bool{0: true, 1: true, 2: true}
)

// Validate checks text against format's structural rules and returns a
// typed error describing the first violation, or nil. The empty string is
// valid in every format.
func Validate(text string, format Format) error {
	switch format {
	case Base16:
		return validateBase16(text)
	case Base32:
		return validatePadded(text, Base32, alphabet.Base32, base32PadCounts)
	case Base64:
		return validatePadded(text, Base64, alphabet.Base64, base64PadCounts)
	default:
		return &UnsupportedFormatError{Name: format.String()}
	}
}

// IsValid reports whether text conforms to format. It is the boolean form
// of Validate and the only operation that folds an error into a bool.
func IsValid(text string, format Format) bool {
	return Validate(text, format) == nil
}

func validateBase16(text string) error {
	for i := 0; i < len(text); i++ {
		if !alphabet.Base16.Contains(text[i]) {
			return &InvalidCharacterError{Format: Base16, Char: text[i], Pos: i}
		}
	}
	if len(text)%2 != 0 {
		return &InvalidLengthError{Format: Base16, Length: len(text)}
	}
	return nil
}

// validatePadded handles the two padded formats: every character must be a
// data symbol or a trailing pad, the padded length must be a whole number
// of blocks, and the pad count must be one the format's block geometry can
// actually produce.
func validatePadded(text string, format Format, a *alphabet.Alphabet, padCounts map[int]bool) error {
	pads := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == alphabet.Pad:
			pads++
		case a.Contains(c):
			if pads > 0 {
				return &InvalidPaddingError{Format: format, Pos: i - 1, Reason: "padding before end of data"}
			}
		default:
			return &InvalidCharacterError{Format: format, Char: c, Pos: i}
		}
	}
	if len(text)%a.BlockChars != 0 {
		return &InvalidLengthError{Format: format, Length: len(text)}
	}
	if !padCounts[pads] {
		return &InvalidPaddingError{Format: format, Pos: len(text) - pads, Reason: "invalid padding length"}
	}
	return nil
}
