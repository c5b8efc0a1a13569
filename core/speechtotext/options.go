// Package speechtotext defines the listen-once contract consumed by the
// orchestration engine.
package speechtotext

import (
	"errors"
	"time"

	"github.com/mira-assistant/mira-core/core/audio"
)

// ErrNoSpeech is returned when no transcript was obtained within the
// configured bounds. Callers treat it as "nothing recognized", never as a
// fatal condition.
var ErrNoSpeech = errors.New("no speech recognized")

type ListenOptions struct {
	// Timeout bounds the wait for speech to start.
	Timeout time.Duration
	// PhraseTimeLimit bounds the phrase duration once speech has started.
	PhraseTimeLimit time.Duration

	EncodingInfo audio.EncodingInfo
}

func DefaultListenOptions() ListenOptions {
	return ListenOptions{
		Timeout:         5 * time.Second,
		PhraseTimeLimit: 6 * time.Second,
		EncodingInfo:    audio.DefaultEncodingInfo(),
	}
}

type ListenOption func(*ListenOptions)

func WithTimeout(timeout time.Duration) ListenOption {
	return func(o *ListenOptions) {
		o.Timeout = timeout
	}
}

func WithPhraseTimeLimit(limit time.Duration) ListenOption {
	return func(o *ListenOptions) {
		o.PhraseTimeLimit = limit
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) ListenOption {
	return func(o *ListenOptions) {
		o.EncodingInfo = encodingInfo
	}
}
