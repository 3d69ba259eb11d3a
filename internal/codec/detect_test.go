package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"hex upper", "48656C6C6F", Base16},
		{"hex lower", "deadbeef", Base16},
		{"base32 block", "JBSWY3DP", Base32},
		{"base32 padded", "JBSWY3DPEBLW64TMMQ======", Base32},
		{"base64 padded", "SGVsbG8=", Base64},
		{"base64 hello world", "SGVsbG8sIFdvcmxkIQ==", Base64},
		{"base64 symbols", "a+b/c9Zz", Base64},
		{"surrounding whitespace", "  SGVsbG8=\n", Base64},
		{"garbage", "!!! not encoded !!!", FormatUnknown},
		{"empty", "", FormatUnknown},
		{"whitespace only", "   \n\t", FormatUnknown},
		{"unpadded base64 length", "SGVsbG8", FormatUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.input))
		})
	}
}

// Ambiguous strings validate under several formats at once; the fixed
// Base16 > Base32 > Base64 priority keeps the answer deterministic.
func TestDetect_TieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		// Valid hex, Base32, and Base64 data all at once.
		{"hex wins over everything", "DEAD", Base16},
		{"digits only", "2222", Base16},
		// Not hex (odd would fail anyway), valid Base32 and Base64.
		{"base32 wins over base64", "ZZZZZZZZ", Base32},
		// '8' and lower-case-beyond-v force Base64... '8' alone does:
		// it is outside the Base32 alphabet.
		{"digit 8 forces base64", "Zz889wX0", Base64},
		{"plus forces base64", "AB+/", Base64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.input))
		})
	}
}

func TestDetect_Deterministic(t *testing.T) {
	inputs := []string{"DEAD", "JBSWY3DP", "SGVsbG8=", "2222", ""}
	for _, input := range inputs {
		first := Detect(input)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Detect(input))
		}
	}
}

// Every canonical encoding must be detected as a format that decodes back
// to the original payload, even when tie-breaking picks a different format
// than the one that produced the text.
func TestDetect_RoundTripConsistency(t *testing.T) {
	payloads := [][]byte{
		[]byte("Hello"),
		[]byte("Hello, World!"),
		{0xDE, 0xAD, 0xBE, 0xEF},
	}

	for _, payload := range payloads {
		for _, format := range Formats() {
			encoded, err := Encode(payload, format)
			require.NoError(t, err)
			detected := Detect(encoded)
			require.NotEqual(t, FormatUnknown, detected, "detect failed for %q", encoded)
			assert.True(t, IsValid(encoded, detected))
		}
	}
}
