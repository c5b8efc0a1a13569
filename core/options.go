package orchestration

import (
	"context"
	"time"

	"github.com/mira-assistant/mira-core/core/intent"
	"github.com/mira-assistant/mira-core/core/speechtotext"
	"github.com/mira-assistant/mira-core/core/texttospeech"
)

type OrchestratorOption func(*Orchestrator)

// Listener captures one utterance from the microphone, blocking for at most
// the configured wait-for-speech timeout plus the phrase time limit.
type Listener interface {
	ListenOnce(ctx context.Context, opts ...speechtotext.ListenOption) (string, error)
}

func WithListener(client Listener) OrchestratorOption {
	return func(o *Orchestrator) {
		o.listener.set(client)
	}
}

// WithListenOptions forwards options to every ListenOnce call, e.g. the
// wait-for-speech timeout and phrase time limit.
func WithListenOptions(opts ...speechtotext.ListenOption) OrchestratorOption {
	return func(o *Orchestrator) {
		o.listener.opts = opts
	}
}

// SpeechSynthesizer voices one reply, blocking until playback completes.
// The engine serializes invocations through a speak lock; implementations
// are never called concurrently.
type SpeechSynthesizer interface {
	SpeakBlocking(ctx context.Context, text string, opts ...texttospeech.SpeakOption) error
}

func WithSpeechSynthesizer(client SpeechSynthesizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.synth.set(client)
	}
}

// WithSpeakOptions forwards options to every SpeakBlocking call, e.g. the
// voice selection.
func WithSpeakOptions(opts ...texttospeech.SpeakOption) OrchestratorOption {
	return func(o *Orchestrator) {
		o.synth.opts = opts
	}
}

// Navigator opens a URL in the user's browser. Fire-and-forget.
type Navigator interface {
	Navigate(url string) error
}

func WithNavigator(navigator Navigator) OrchestratorOption {
	return func(o *Orchestrator) {
		o.navigator = navigator
	}
}

// Clock supplies the wall-clock timestamp used by the time-of-day handlers.
type Clock func() time.Time

func WithClock(clock Clock) OrchestratorOption {
	return func(o *Orchestrator) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithQuitGracePeriod caps how long the quit turn waits for the farewell's
// speech before posting the exit event; it posts sooner when speech
// completes first.
func WithQuitGracePeriod(period time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.quitGracePeriod = period
	}
}

// WithHandler installs or overwrites the handler registered for label. The
// last registration for a given label wins. Applied after the built-in
// handlers are registered, before the registry is sealed.
func WithHandler(label intent.Intent, handler Handler) OrchestratorOption {
	return func(o *Orchestrator) {
		o.handlerOverrides = append(o.handlerOverrides, handlerOverride{label: label, handler: handler})
	}
}

type handlerOverride struct {
	label   intent.Intent
	handler Handler
}
