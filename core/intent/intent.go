// Package intent classifies raw utterances into a fixed set of intents.
//
// Classification is deterministic and total: an ordered rule table is
// evaluated top to bottom and the first rule with any matching keyword wins.
// The ordering is a deliberate tie-break (e.g. "hello, what time is it"
// classifies as greet) and is part of the compatibility contract.
package intent

import "strings"

type Intent string

const (
	Greet    Intent = "greet"
	Time     Intent = "time"
	OpenSite Intent = "open_site"
	Calc     Intent = "calc"
	Weather  Intent = "weather"
	Fact     Intent = "fact"
	Quit     Intent = "quit"
	Fallback Intent = "fallback"
)

// Result pairs a classified intent with the utterance that produced it.
// It is created once per utterance and consumed exactly once by dispatch.
type Result struct {
	Intent Intent
	Text   string
}

type rule struct {
	keywords []string
	intent   Intent
}

// Rules are checked in priority order; containment is case-insensitive
// substring matching, as the original keyword matcher did it.
var rules = []rule{
	{keywords: []string{"hello", "hey", "hi"}, intent: Greet},
	{keywords: []string{"time", "date", "day"}, intent: Time},
	{keywords: []string{"open", "youtube", "google", "github"}, intent: OpenSite},
	{keywords: []string{"calculate", "+", "-", "*", "/", "what is", "what's"}, intent: Calc},
	{keywords: []string{"weather", "forecast"}, intent: Weather},
	{keywords: []string{"fact", "interesting"}, intent: Fact},
	{keywords: []string{"quit", "exit", "goodbye"}, intent: Quit},
}

// Classify maps raw text to an intent. It never fails; text matching no rule
// (including the empty string) classifies as Fallback.
func Classify(text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return Result{Intent: rule.intent, Text: text}
			}
		}
	}

	return Result{Intent: Fallback, Text: text}
}
