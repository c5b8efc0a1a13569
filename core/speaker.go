package orchestration

import (
	"context"
	"sync"

	"github.com/mira-assistant/mira-core/core/texttospeech"
)

// speechSynth is the synthesis facade. The speech engine is a single global
// resource; the mutex serializes concurrent speech tasks so utterances are
// never interleaved or overlapped.
type speechSynth struct {
	client SpeechSynthesizer
	opts   []texttospeech.SpeakOption

	mu sync.Mutex
}

func (s *speechSynth) set(client SpeechSynthesizer) {
	if s != nil {
		s.client = client
	}
}

func (s *speechSynth) isConfigured() bool {
	return s != nil && s.client != nil
}

// speakBlocking voices text under the speak lock, returning once playback
// completes. Without a configured client it is a no-op.
func (s *speechSynth) speakBlocking(ctx context.Context, text string) error {
	if !s.isConfigured() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.SpeakBlocking(ctx, text, s.opts...)
}
