// Package deepgram implements blocking speech synthesis against the
// Deepgram speak websocket, playing the synthesized audio through a local
// playback device.
package deepgram

import (
	"context"
	"fmt"
	"slices"

	"github.com/mira-assistant/mira-core/core/audio"
)

type deepgramVoice string

const (
	VoiceThalia  deepgramVoice = "aura-2-thalia-en"
	VoiceAsteria deepgramVoice = "aura-asteria-en"
	VoiceOrion   deepgramVoice = "aura-orion-en"
	VoiceLuna    deepgramVoice = "aura-luna-en"

	defaultVoice = VoiceThalia
)

func GetAvailableVoices() []deepgramVoice {
	return []deepgramVoice{VoiceThalia, VoiceAsteria, VoiceOrion, VoiceLuna}
}

// AudioPlayback is the output device the synthesized audio is written to.
type AudioPlayback interface {
	SendAudio(audio []byte) error
	Drain(ctx context.Context) error
	EncodingInfo() audio.EncodingInfo
}

type SpeechClient struct {
	playback AudioPlayback
	voice    deepgramVoice
}

func NewSpeechClient(playback AudioPlayback, voice deepgramVoice) (*SpeechClient, error) {
	client := &SpeechClient{playback: playback, voice: defaultVoice}

	if voice != "" {
		if !slices.Contains(GetAvailableVoices(), voice) {
			return nil, fmt.Errorf("invalid voice")
		}
		client.voice = voice
	}

	return client, nil
}

func (c *SpeechClient) SetVoice(voice deepgramVoice) {
	c.voice = voice
}
