package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Base16(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty", "", []byte{}},
		{"upper case", "48656C6C6F", []byte("Hello")},
		{"lower case", "48656c6c6f", []byte("Hello")},
		{"mixed case", "48656C6c6F", []byte("Hello")},
		{"surrounding whitespace", "  FFFE\n", []byte{0xFF, 0xFE}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input, Base16)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDecode_Base32(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty", "", []byte{}},
		{"full block", "JBSWY3DP", []byte("Hello")},
		{"lower case", "jbswy3dp", []byte("Hello")},
		{"padded", "MZXW6===", []byte("foo")},
		{"max padding", "MY======", []byte("f")},
		{"hello world", "JBSWY3DPFQQFO33SNRSCC===", []byte("Hello, World!")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input, Base32)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDecode_Base64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty", "", []byte{}},
		{"padded", "SGVsbG8=", []byte("Hello")},
		{"double padded", "Zg==", []byte("f")},
		{"no padding needed", "Zm9v", []byte("foo")},
		{"hello world", "SGVsbG8sIFdvcmxkIQ==", []byte("Hello, World!")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input, Base64)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// Non-canonical input whose final partial symbol carries non-zero trailing
// bits still decodes: the leftover bits that do not form a whole byte are
// dropped rather than rejected.
func TestDecode_NonZeroTrailingBitsTruncated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   Format
		expected []byte
	}{
		// Canonical form of 0x65 is "ZQ=="; 'b' leaves the bits 1011.
		{"base64 trailing bits", "Zb==", Base64, []byte{0x65}},
		// Canonical form of 0x66 is "MY======"; 'Z' leaves the bits 01.
		{"base32 trailing bits", "MZ======", Base32, []byte{0x66}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input, tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   Format
		sentinel error
	}{
		{"odd-length hex", "12345", Base16, ErrInvalidLength},
		{"non-hex characters", "GGGG", Base16, ErrInvalidCharacter},
		{"base32 forbidden digit", "JBSW18DP", Base32, ErrInvalidCharacter},
		{"base32 bad length", "JBSWY3D", Base32, ErrInvalidLength},
		{"base32 bad pad count", "JBSWY3==", Base32, ErrInvalidPadding},
		{"base64 missing padding", "SGVsbG8", Base64, ErrInvalidLength},
		{"base64 interior padding", "SG=sbG8=", Base64, ErrInvalidPadding},
		{"base64 foreign character", "SGVs!G8=", Base64, ErrInvalidCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Decode(tc.input, tc.format)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestDecode_ErrorDetails(t *testing.T) {
	_, err := Decode("GGGG", Base16)
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, byte('G'), charErr.Char)
	assert.Equal(t, 0, charErr.Pos)
	assert.Equal(t, Base16, charErr.Format)

	_, err = Decode("12345", Base16)
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 5, lenErr.Length)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode("SGVsbG8=", FormatUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeAuto(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   Format
		expected []byte
	}{
		{"hex", "48656C6C6F", Base16, []byte("Hello")},
		{"base32", "JBSWY3DP", Base32, []byte("Hello")},
		{"base64", "SGVsbG8sIFdvcmxkIQ==", Base64, []byte("Hello, World!")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, format, err := DecodeAuto(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDecodeAuto_NoMatch(t *testing.T) {
	_, format, err := DecodeAuto("!!! not encoded !!!")
	require.Error(t, err)
	assert.Equal(t, FormatUnknown, format)
	assert.ErrorIs(t, err, ErrNoMatch)

	var detErr *DetectionError
	require.ErrorAs(t, err, &detErr)
	assert.Equal(t, "!!! not encoded !!!", detErr.Input)
}

func TestRoundTrip_AllFormats(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x00},
		{0xFF},
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte("abcde"),
		[]byte("Hello, World!"),
		[]byte("Hello 🌍"),
		{0x00, 0x01, 0x02, 0xFD, 0xFE, 0xFF},
	}

	for _, format := range Formats() {
		for _, payload := range payloads {
			encoded, err := Encode(payload, format)
			require.NoError(t, err)
			decoded, err := Decode(encoded, format)
			require.NoError(t, err, "failed to decode %q as %s", encoded, format)
			assert.Equal(t, payload, decoded)
		}
	}
}
