// Package alphabet defines the character tables for the supported base
// encodings. This is the foundational package for the codec and has no
// dependencies.
//
// Base16: 0-9 A-F (decoding accepts a-f), 4 bits per symbol, no padding.
// Base32: A-Z 2-7 (decoding accepts a-z), 5 bits per symbol, '=' padding
// to 8-character blocks.
// Base64: A-Z a-z 0-9 + /, 6 bits per symbol, '=' padding to 4-character
// blocks.
package alphabet

// Pad is the padding character shared by Base32 and Base64.
const Pad = '='

// Character sets, in value order (index = numeric value of the symbol).
const (
	Base16Chars = "0123456789ABCDEF"
	Base32Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	Base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// Alphabet describes one encoding's symbol table and block geometry.
// Alphabets are process-wide constants; callers must not mutate them.
type Alphabet struct {
	Chars      string // symbols in value order
	Bits       int    // bits per symbol
	BlockChars int    // encoded block size in characters (0 = no block padding)
	BlockBytes int    // decoded block size in bytes

	// lookup maps a byte to its symbol value, or -1 if the byte is not in
	// the alphabet. Case-insensitive alphabets map both cases.
	lookup [256]int8
}

var (
	Base16 = newAlphabet(Base16Chars, 4, 0, 1, true)
	Base32 = newAlphabet(Base32Chars, 5, 8, 5, true)
	Base64 = newAlphabet(Base64Chars, 6, 4, 3, false)
)

func newAlphabet(chars string, bits, blockChars, blockBytes int, foldCase bool) *Alphabet {
	a := &Alphabet{
		Chars:      chars,
		Bits:       bits,
		BlockChars: blockChars,
		BlockBytes: blockBytes,
	}
	for i := range a.lookup {
		a.lookup[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		a.lookup[c] = int8(i)
		if foldCase && c >= 'A' && c <= 'Z' {
			a.lookup[c+('a'-'A')] = int8(i)
		}
	}
	return a
}

// Value returns the numeric value of c, or false if c is not a symbol of
// this alphabet. The pad character is not a symbol.
func (a *Alphabet) Value(c byte) (int, bool) {
	v := a.lookup[c]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// Contains reports whether c is a data symbol of this alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.lookup[c] >= 0
}

// Char returns the symbol for value v. Panics if v is out of range
// (internal error, values come from masked bit arithmetic).
func (a *Alphabet) Char(v int) byte {
	return a.Chars[v]
}
