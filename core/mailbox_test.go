package orchestration

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/mira-assistant/mira-core/core/events"
)

func TestMailboxPreservesPostOrder(t *testing.T) {
	mailbox := NewMailbox()

	for i := range 5 {
		mailbox.Post(events.NewTranscriptAppended(events.SpeakerSystem, fmt.Sprintf("msg-%d", i)))
	}

	for i := range 5 {
		event, ok := mailbox.TryTake()
		if !ok {
			t.Fatalf("expected event %d to be available", i)
		}
		appended, ok := event.(events.TranscriptAppended)
		if !ok {
			t.Fatalf("expected transcript appended event, got %T", event)
		}
		if expected := fmt.Sprintf("msg-%d", i); appended.Message != expected {
			t.Fatalf("expected message %q at position %d, got %q", expected, i, appended.Message)
		}
	}

	if _, ok := mailbox.TryTake(); ok {
		t.Fatalf("expected mailbox to be empty after draining")
	}
}

func TestMailboxTryTakeDoesNotBlockWhenEmpty(t *testing.T) {
	mailbox := NewMailbox()

	if event, ok := mailbox.TryTake(); ok {
		t.Fatalf("expected no event from empty mailbox, got %v", event)
	}
}

func TestMailboxConcurrentProducersLoseNothing(t *testing.T) {
	mailbox := NewMailbox()

	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for producer := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				mailbox.Post(events.NewTranscriptAppended(
					events.SpeakerSystem,
					fmt.Sprintf("p%d-%d", producer, i),
				))
			}
		}()
	}
	wg.Wait()

	drained := mailbox.DrainPending()
	if len(drained) != producers*perProducer {
		t.Fatalf("expected %d events, got %d", producers*perProducer, len(drained))
	}

	// Per-producer order must survive interleaving.
	next := map[string]int{}
	seen := map[string]bool{}
	for _, event := range drained {
		message := event.(events.TranscriptAppended).Message
		if seen[message] {
			t.Fatalf("event %q delivered twice", message)
		}
		seen[message] = true

		producer := message[:strings.Index(message, "-")]
		expected := fmt.Sprintf("%s-%d", producer, next[producer])
		if message != expected {
			t.Fatalf("expected next event from %s to be %q, got %q", producer, expected, message)
		}
		next[producer]++
	}
}

func TestMailboxDrainPendingEmptiesTheQueue(t *testing.T) {
	mailbox := NewMailbox()
	mailbox.Post(events.NewInputUnlocked())
	mailbox.Post(events.NewExitRequested())

	drained := mailbox.DrainPending()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained events, got %d", len(drained))
	}
	if drained[0].Kind() != events.KindInputUnlocked || drained[1].Kind() != events.KindExitRequested {
		t.Fatalf("expected drained events in post order, got %v then %v", drained[0].Kind(), drained[1].Kind())
	}

	if mailbox.Len() != 0 {
		t.Fatalf("expected empty mailbox after drain, got %d events", mailbox.Len())
	}
}
