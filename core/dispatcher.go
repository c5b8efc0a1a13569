package orchestration

import "github.com/mira-assistant/mira-core/core/intent"

// dispatch resolves the handler for result and invokes it, returning the
// reply text. It never fails: unregistered intents fall back to the
// fallback handler, and handlers convert their own failures to replies.
func (r *registry) dispatch(result intent.Result) string {
	return r.resolve(result.Intent)(result)
}
