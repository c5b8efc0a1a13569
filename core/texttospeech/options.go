// Package texttospeech defines the blocking speech synthesis contract
// consumed by the orchestration engine.
package texttospeech

import "github.com/mira-assistant/mira-core/core/audio"

type SpeakOptions struct {
	// Voice selects the synthesis voice; empty keeps the client default.
	Voice string

	EncodingInfo audio.EncodingInfo
}

func DefaultSpeakOptions() SpeakOptions {
	return SpeakOptions{EncodingInfo: audio.DefaultEncodingInfo()}
}

type SpeakOption func(*SpeakOptions)

func WithVoice(voice string) SpeakOption {
	return func(o *SpeakOptions) {
		o.Voice = voice
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) SpeakOption {
	return func(o *SpeakOptions) {
		o.EncodingInfo = encodingInfo
	}
}
