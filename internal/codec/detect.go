package codec

import "strings"

// Detect reports the format text is most likely encoded in, or
// FormatUnknown when nothing validates. Leading and trailing whitespace is
// ignored; empty (or all-whitespace) input is FormatUnknown, since the
// empty string is valid in every format at once.
//
// Formats are tried most-restrictive-alphabet first: Base16, then Base32,
// then Base64. Short alphanumeric strings are often valid in several
// formats ("DEAD" is legal hex, Base32, and Base64 data); the fixed
// priority order makes the result deterministic rather than unique. A hex
// string therefore always reports Base16, and a string of A-Z2-7 reports
// Base32 even when it would also decode as Base64. Only characters outside
// the narrower alphabets, or padding shapes only one format allows, push
// detection to Base64.
func Detect(text string) Format {
	text = strings.TrimSpace(text)
	if text == "" {
		return FormatUnknown
	}
	for _, format := range Formats() {
		if IsValid(text, format) {
			return format
		}
	}
	return FormatUnknown
}
