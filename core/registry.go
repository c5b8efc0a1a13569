package orchestration

import "github.com/mira-assistant/mira-core/core/intent"

// Handler produces the reply text for one classified utterance. Handlers
// must not fail: any internal failure is converted to a user-facing reply.
type Handler func(result intent.Result) string

// registry maps intent labels to handlers. It is fully populated during
// orchestrator construction and never mutated afterwards; lookups only
// begin once construction completes, so no locking is needed.
type registry struct {
	handlers map[intent.Intent]Handler
}

func newRegistry(deps handlerDeps) *registry {
	r := &registry{handlers: map[intent.Intent]Handler{}}
	for label, handler := range builtinHandlers(deps) {
		r.register(label, handler)
	}
	return r
}

// register installs handler under label. The last registration for a given
// label wins.
func (r *registry) register(label intent.Intent, handler Handler) {
	if handler == nil {
		return
	}
	r.handlers[label] = handler
}

// resolve returns the handler registered for label, or the fallback handler
// when the label is absent. The fallback entry always exists.
func (r *registry) resolve(label intent.Intent) Handler {
	if handler, ok := r.handlers[label]; ok {
		return handler
	}
	return r.handlers[intent.Fallback]
}
