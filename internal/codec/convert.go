package codec

// Convert re-encodes text from one format to another. Passing
// FormatUnknown as from auto-detects the source format and fails with a
// DetectionError when nothing validates. Decoder errors propagate
// unchanged.
func Convert(text string, from, to Format) (string, error) {
	var data []byte
	var err error
	if from == FormatUnknown {
		data, _, err = DecodeAuto(text)
	} else {
		data, err = Decode(text, from)
	}
	if err != nil {
		return "", err
	}
	return Encode(data, to)
}
