// Package codec implements encoding, decoding, validation, format
// detection, and conversion for Base16, Base32, and Base64.
//
// All operations are pure and synchronous: the only shared state is the
// read-only alphabet tables, so every function is safe for concurrent use.
// The core never logs or recovers; every failure is reported to the caller
// as a typed error (see errors.go).
package codec

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Format identifies one of the supported base encodings. The zero value
// FormatUnknown doubles as the "no match" detection result and, where a
// source format argument is optional, as the auto-detect marker.
type Format int

const (
	FormatUnknown Format = iota
	Base16
	Base32
	Base64
)

// formatNames holds the canonical spelling for each format, used by both
// String and ParseFormat.
var formatNames = map[Format]string{
	Base16: "base16",
	Base32: "base32",
	Base64: "base64",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// minSuggestionScore is the Jaro-Winkler similarity below which ParseFormat
// does not offer a did-you-mean suggestion.
const minSuggestionScore = 0.75

// ParseFormat maps a format name ("base16", "base32", "base64", any case)
// to its Format. Unknown names yield an UnsupportedFormatError carrying the
// closest known name as a suggestion when one is similar enough.
func ParseFormat(name string) (Format, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if lower == formatNames[f] {
			return f, nil
		}
	}
	return FormatUnknown, &UnsupportedFormatError{
		Name:       name,
		Suggestion: suggestFormat(lower),
	}
}

// suggestFormat returns the known format name most similar to input, or ""
// if nothing is close. Candidates are scanned in Formats() order so ties
// resolve deterministically.
func suggestFormat(input string) string {
	best := ""
	var bestScore float32
	for _, f := range Formats() {
		canonical := formatNames[f]
		score, err := edlib.StringsSimilarity(input, canonical, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	if bestScore < minSuggestionScore {
		return ""
	}
	return best
}

// Formats lists the supported formats in detection priority order (most
// restrictive alphabet first).
func Formats() []Format {
	return []Format{Base16, Base32, Base64}
}
