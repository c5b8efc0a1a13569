package orchestration

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mira-assistant/mira-core/core/events"
	"github.com/mira-assistant/mira-core/core/intent"
	"github.com/mira-assistant/mira-core/core/speechtotext"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// turn is one conversational cycle: Idle -> Capturing -> Classified ->
// Responding -> Idle, or -> Terminating when the quit intent is dispatched.
// Each turn runs on its own detached goroutine; its only contract is to
// eventually post a terminal status event.
type turn struct {
	orchestrator *Orchestrator
	id           string
	isAudio      bool
}

func newTurn(o *Orchestrator, isAudio bool) *turn {
	return &turn{orchestrator: o, id: uuid.NewString(), isAudio: isAudio}
}

func (t *turn) runAudio() {
	ctx, span := tracer.Start(t.orchestrator.baseContext, "audio turn")
	defer span.End()

	t.postStatus(events.StatusListening)

	transcript, err := t.orchestrator.listener.listenOnce(ctx)
	if err != nil || strings.TrimSpace(transcript) == "" {
		if err != nil && !errors.Is(err, speechtotext.ErrNoSpeech) {
			span.RecordError(err)
			logger.Warn("Listen failed", "error", err)
		}
		t.postAppend(events.SpeakerSystem, replyDidNotCatch)
		t.finishIdle()
		return
	}

	t.respond(transcript)
}

func (t *turn) runText(text string) {
	_, span := tracer.Start(t.orchestrator.baseContext, "text turn")
	defer span.End()

	t.respond(text)
}

// respond covers the Classified and Responding states: classification and
// dispatch run synchronously inside the worker (they are cheap and must
// never block the surface), speech runs on its own task.
func (t *turn) respond(text string) {
	t.postAppend(events.SpeakerYou, text)
	t.postStatus(events.StatusThinking)

	_, span := tracer.Start(t.orchestrator.baseContext, "classify and dispatch")
	result := intent.Classify(text)
	span.SetAttributes(attribute.String("intent", string(result.Intent)))
	reply := t.orchestrator.registry.dispatch(result)
	span.End()

	t.postAppend(events.SpeakerAssistant, reply)

	if result.Intent == intent.Quit {
		t.terminate(reply)
		return
	}

	go t.speak(reply)
}

// speak voices the reply under the shared speak lock and posts the turn's
// terminal events. Synthesis failures are contained: the reply stays
// visible in the transcript and the status still returns to Idle.
func (t *turn) speak(reply string) {
	ctx, span := tracer.Start(t.orchestrator.baseContext, "speak reply")
	defer span.End()

	t.postStatus(events.StatusSpeaking)
	if err := t.orchestrator.synth.speakBlocking(ctx, reply); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("Speech synthesis failed", "error", err)
	}

	t.finishIdle()
}

// terminate handles the quit intent: the farewell is queued for speech and
// the turn posts an exit event instead of returning to Idle, as soon as the
// farewell completes or the grace period elapses, whichever is first.
func (t *turn) terminate(farewell string) {
	t.orchestrator.exiting.Store(true)

	done := make(chan struct{})
	go func() {
		defer close(done)

		ctx, span := tracer.Start(t.orchestrator.baseContext, "speak farewell")
		defer span.End()

		t.postStatus(events.StatusSpeaking)
		if err := t.orchestrator.synth.speakBlocking(ctx, farewell); err != nil {
			span.RecordError(err)
			logger.Warn("Speech synthesis failed", "error", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(t.orchestrator.quitGracePeriod):
	}
	t.orchestrator.post(events.NewExitRequested(events.ForTurn(t.id)))
}

// finishIdle posts the terminal events of a non-terminating turn and, for
// audio turns, releases the microphone guard before the surface is told to
// re-enable input.
func (t *turn) finishIdle() {
	t.postStatus(events.StatusIdle)
	if t.isAudio {
		t.orchestrator.capturing.Store(false)
	}
	t.orchestrator.post(events.NewInputUnlocked(events.ForTurn(t.id)))
}

func (t *turn) postAppend(speaker events.Speaker, message string) {
	t.orchestrator.post(events.NewTranscriptAppended(speaker, message, events.ForTurn(t.id)))
}

func (t *turn) postStatus(status events.Status) {
	t.orchestrator.post(events.NewStatusChanged(status, events.ForTurn(t.id)))
}
