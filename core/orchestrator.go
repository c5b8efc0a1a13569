// Package orchestration is the intent classification and dispatch engine of
// the assistant, together with the coordination protocol that lets blocking
// listen/speak workers communicate with a single-threaded presentation
// surface through an ordered mailbox.
package orchestration

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mira-assistant/mira-core/core/events"
)

const defaultQuitGracePeriod = 1500 * time.Millisecond

type Orchestrator struct {
	mailbox  *Mailbox
	registry *registry

	// listener is the capture facade used to handle optional client wiring.
	listener listener
	// synth is the synthesis facade serializing the global voice resource.
	synth speechSynth

	navigator Navigator
	clock     Clock

	quitGracePeriod time.Duration

	// capturing guards the microphone: at most one audio turn in flight.
	capturing atomic.Bool
	// exiting refuses new turns once the quit intent has been dispatched.
	exiting atomic.Bool

	transcriptMu  sync.Mutex
	transcriptLog []TranscriptEntry

	handlerOverrides []handlerOverride

	baseContext context.Context
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		mailbox:         NewMailbox(),
		clock:           time.Now,
		quitGracePeriod: defaultQuitGracePeriod,
		baseContext:     context.Background(),
	}

	for _, opt := range opts {
		opt(o)
	}

	// Handlers run on per-turn goroutines; the top-level rand source is
	// safe for concurrent use where a private *rand.Rand is not.
	o.registry = newRegistry(handlerDeps{
		clock:     o.clock,
		navigator: o.navigator,
		pickFact:  rand.Intn,
	})
	for _, override := range o.handlerOverrides {
		o.registry.register(override.label, override.handler)
	}
	o.handlerOverrides = nil

	return o
}

// Mailbox returns the event queue the presentation surface drains.
func (o *Orchestrator) Mailbox() *Mailbox {
	return o.mailbox
}

// StartAudioTurn spawns one listen-and-respond turn. It reports false when
// a capture is already in flight or the engine is shutting down; the
// surface re-enables the trigger when it drains the turn's InputUnlocked
// event.
func (o *Orchestrator) StartAudioTurn() bool {
	if o.exiting.Load() {
		return false
	}
	if !o.capturing.CompareAndSwap(false, true) {
		return false
	}

	turn := newTurn(o, true)
	go turn.runAudio()
	return true
}

// StartTextTurn spawns one respond turn for typed text. Text turns hold no
// exclusive hardware resource and may run concurrently with each other and
// with an audio turn; their events interleave safely through the mailbox.
func (o *Orchestrator) StartTextTurn(text string) bool {
	if o.exiting.Load() || strings.TrimSpace(text) == "" {
		return false
	}

	turn := newTurn(o, false)
	go turn.runText(text)
	return true
}

// StopSpeaking is advisory only: synthesis is never interrupted mid-call,
// the user is just told to wait.
func (o *Orchestrator) StopSpeaking() {
	o.post(events.NewTranscriptAppended(events.SpeakerSystem, replyStillTalking))
}

// post records transcript lines and relays the event to the surface.
func (o *Orchestrator) post(event events.Event) {
	if appended, ok := event.(events.TranscriptAppended); ok {
		o.transcriptMu.Lock()
		o.transcriptLog = append(o.transcriptLog, TranscriptEntry{
			Speaker: appended.Speaker,
			Message: appended.Message,
			At:      appended.Timestamp(),
		})
		o.transcriptMu.Unlock()
	}

	o.mailbox.Post(event)
}
