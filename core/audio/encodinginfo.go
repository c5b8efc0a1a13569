// Package audio holds the encoding contract shared by capture, playback and
// the speech clients.
package audio

const (
	DefaultSampleRate = 16000
	DefaultEncoding   = "linear16"
)

type EncodingInfo struct {
	SampleRate int
	Encoding   string
}

func DefaultEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: DefaultSampleRate, Encoding: DefaultEncoding}
}

func (e EncodingInfo) IsZero() bool {
	return e.SampleRate == 0 || e.Encoding == ""
}

// BytesPerSample returns the sample width for the encoding, or -1 when the
// encoding is unknown.
func (e EncodingInfo) BytesPerSample() int {
	switch e.Encoding {
	case "mulaw", "alaw":
		return 1
	case "linear16":
		return 2
	}
	return -1
}

// SilenceValue is the byte that encodes silence for the encoding.
func (e EncodingInfo) SilenceValue() byte {
	switch e.Encoding {
	case "alaw":
		return 0x55
	case "mulaw":
		return 0xFF
	}
	return 0
}
