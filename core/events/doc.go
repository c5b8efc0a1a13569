// Package events defines the typed event contract between turn workers and
// the presentation surface.
//
// Workers post events to the mailbox; the surface's drain loop consumes them
// in FIFO order and applies them to the transcript and status line. Events
// are immutable once constructed and are consumed exactly once.
//
// All kinds live in the surface.* namespace:
//
//   - TranscriptAppended (surface.transcript_appended): a line to append to
//     the transcript, attributed to a speaker (You, Assistant, System).
//   - StatusChanged (surface.status_changed): the session status moved to
//     Idle, Listening, Thinking or Speaking.
//   - InputUnlocked (surface.input_unlocked): the audio input trigger may be
//     re-enabled; posted as the final event of every non-terminating turn.
//   - ExitRequested (surface.exit_requested): orderly shutdown; no further
//     turns are accepted once this is drained.
package events
