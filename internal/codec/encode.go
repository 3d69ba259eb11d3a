package codec

import (
	"strings"

	"github.com/BaseMax/base-encoder-decoder/internal/alphabet"
)

// Encode renders data in the given format's canonical form: upper-case hex
// for Base16, '='-padded blocks for Base32 and Base64. Encoding is total
// over byte sequences; the only error is an unsupported format tag. Empty
// input encodes to the empty string.
func Encode(data []byte, format Format) (string, error) {
	switch format {
	case Base16:
		return encodeBase16(data), nil
	case Base32:
		return encodeBits(data, alphabet.Base32), nil
	case Base64:
		return encodeBits(data, alphabet.Base64), nil
	default:
		return "", &UnsupportedFormatError{Name: format.String()}
	}
}

func encodeBase16(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 2)
	for _, c := range data {
		b.WriteByte(alphabet.Base16.Char(int(c >> 4)))
		b.WriteByte(alphabet.Base16.Char(int(c & 0x0F)))
	}
	return b.String()
}

// encodeBits feeds bytes through a bit accumulator, emitting one symbol per
// a.Bits bits. A final partial symbol is zero-padded on the right, then the
// output is '='-padded to a whole block.
func encodeBits(data []byte, a *alphabet.Alphabet) string {
	var b strings.Builder
	b.Grow(((len(data) + a.BlockBytes - 1) / a.BlockBytes) * a.BlockChars)

	mask := (1 << a.Bits) - 1
	acc, nbits := 0, 0
	for _, c := range data {
		acc = acc<<8 | int(c)
		nbits += 8
		for nbits >= a.Bits {
			nbits -= a.Bits
			b.WriteByte(a.Char((acc >> nbits) & mask))
		}
	}
	if nbits > 0 {
		b.WriteByte(a.Char((acc << (a.Bits - nbits)) & mask))
	}
	for b.Len()%a.BlockChars != 0 {
		b.WriteByte(alphabet.Pad)
	}
	return b.String()
}
