package orchestration

import (
	"context"

	"github.com/mira-assistant/mira-core/core/speechtotext"
)

// listener is the capture facade used to handle optional client wiring.
type listener struct {
	client Listener
	opts   []speechtotext.ListenOption
}

func (l *listener) set(client Listener) {
	if l != nil {
		l.client = client
	}
}

func (l *listener) isConfigured() bool {
	return l != nil && l.client != nil
}

// listenOnce blocks until one utterance is captured or the configured
// bounds expire. Without a configured client it reports ErrNoSpeech, which
// the turn worker surfaces as "didn't catch that".
func (l *listener) listenOnce(ctx context.Context) (string, error) {
	if !l.isConfigured() {
		return "", speechtotext.ErrNoSpeech
	}

	return l.client.ListenOnce(ctx, l.opts...)
}
