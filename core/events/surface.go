package events

// Speaker attributes a transcript line.
type Speaker string

const (
	SpeakerYou       Speaker = "You"
	SpeakerAssistant Speaker = "Assistant"
	SpeakerSystem    Speaker = "System"
)

// Status is the process-wide session status. It is mutated only through
// StatusChanged events observed by the single-threaded surface, never
// directly by a worker.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusListening Status = "listening"
	StatusThinking  Status = "thinking"
	StatusSpeaking  Status = "speaking"
)

const (
	// KindTranscriptAppended identifies a transcript line append.
	KindTranscriptAppended Kind = "surface.transcript_appended"
	// KindStatusChanged identifies a session status transition.
	KindStatusChanged Kind = "surface.status_changed"
	// KindInputUnlocked identifies re-enabling of the audio input trigger.
	KindInputUnlocked Kind = "surface.input_unlocked"
	// KindExitRequested identifies an orderly shutdown request.
	KindExitRequested Kind = "surface.exit_requested"
)

// TranscriptAppended carries one transcript line.
type TranscriptAppended struct {
	Base
	Speaker Speaker
	Message string
}

// NewTranscriptAppended creates a transcript append event.
func NewTranscriptAppended(speaker Speaker, message string, opts ...BaseOption) TranscriptAppended {
	return TranscriptAppended{Base: NewBase(KindTranscriptAppended, opts...), Speaker: speaker, Message: message}
}

// StatusChanged carries a session status transition.
type StatusChanged struct {
	Base
	Status Status
}

// NewStatusChanged creates a status transition event.
func NewStatusChanged(status Status, opts ...BaseOption) StatusChanged {
	return StatusChanged{Base: NewBase(KindStatusChanged, opts...), Status: status}
}

// InputUnlocked marks the end of a turn's exclusive hold on audio input.
type InputUnlocked struct{ Base }

// NewInputUnlocked creates an input unlocked event.
func NewInputUnlocked(opts ...BaseOption) InputUnlocked {
	return InputUnlocked{Base: NewBase(KindInputUnlocked, opts...)}
}

// ExitRequested marks an orderly shutdown triggered by the quit intent.
type ExitRequested struct{ Base }

// NewExitRequested creates an exit request event.
func NewExitRequested(opts ...BaseOption) ExitRequested {
	return ExitRequested{Base: NewBase(KindExitRequested, opts...)}
}
