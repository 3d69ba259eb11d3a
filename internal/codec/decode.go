package codec

import (
	"strings"

	"github.com/BaseMax/base-encoder-decoder/internal/alphabet"
)

// Decode converts text back to bytes. Validation runs first: invalid input
// fails with the same typed error Validate would report, never a
// best-effort result. Base16 and Base32 decode case-insensitively. Leading
// and trailing whitespace is ignored.
//
// Trailing bits left over after regrouping Base32/Base64 symbols into bytes
// are dropped without error; canonical encoders always leave them zero, and
// treating a stray non-zero remainder as non-fatal matches the permissive
// behavior of common library decoders.
func Decode(text string, format Format) ([]byte, error) {
	text = strings.TrimSpace(text)
	if err := Validate(text, format); err != nil {
		return nil, err
	}
	switch format {
	case Base16:
		return decodeBase16(text), nil
	case Base32:
		return decodeBits(text, alphabet.Base32), nil
	default:
		return decodeBits(text, alphabet.Base64), nil
	}
}

// DecodeAuto detects the format of text and decodes it, returning the
// format it settled on. Fails with a DetectionError when no format
// validates.
func DecodeAuto(text string) ([]byte, Format, error) {
	format := Detect(text)
	if format == FormatUnknown {
		return nil, FormatUnknown, &DetectionError{Input: text}
	}
	data, err := Decode(text, format)
	if err != nil {
		return nil, FormatUnknown, err
	}
	return data, format, nil
}

func decodeBase16(text string) []byte {
	out := make([]byte, 0, len(text)/2)
	for i := 0; i < len(text); i += 2 {
		hi, _ := alphabet.Base16.Value(text[i])
		lo, _ := alphabet.Base16.Value(text[i+1])
		out = append(out, byte(hi<<4|lo))
	}
	return out
}

// decodeBits reverses encodeBits: strip padding, push each symbol's value
// through the accumulator, and emit a byte per 8 collected bits.
func decodeBits(text string, a *alphabet.Alphabet) []byte {
	text = strings.TrimRight(text, "=")
	out := make([]byte, 0, len(text)*a.Bits/8)

	acc, nbits := 0, 0
	for i := 0; i < len(text); i++ {
		v, _ := a.Value(text[i])
		acc = acc<<a.Bits | v
		nbits += a.Bits
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
	}
	return out
}
