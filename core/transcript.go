package orchestration

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/mira-assistant/mira-core/core/events"
)

// TranscriptEntry is one line of the conversation log.
type TranscriptEntry struct {
	Speaker events.Speaker
	Message string
	At      time.Time
}

// Transcript returns a point-in-time deep copy of the conversation log.
// Conversation history is kept in memory only; nothing is persisted.
func (o *Orchestrator) Transcript() []TranscriptEntry {
	o.transcriptMu.Lock()
	defer o.transcriptMu.Unlock()

	snapshot := make([]TranscriptEntry, 0, len(o.transcriptLog))
	if err := copier.CopyWithOption(&snapshot, &o.transcriptLog, copier.Option{DeepCopy: true}); err != nil {
		logger.Warn("Failed to snapshot transcript", "error", err)
		return nil
	}
	return snapshot
}
