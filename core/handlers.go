package orchestration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mira-assistant/mira-core/core/calc"
	"github.com/mira-assistant/mira-core/core/intent"
)

const (
	replyDidNotCatch  = "Sorry, I didn't catch that."
	replyGoodbye      = "Goodbye!"
	replyWhichSite    = "Which website should I open?"
	replyCannotCalc   = "I can only handle simple arithmetic."
	replyCalcFailed   = "Sorry, that math expression failed."
	replyWeather      = "I can't check live weather yet, but I hear it's lovely out there."
	replyFallback     = "I didn't get that. Try: time, open YouTube, or calculate 12 times 7."
	replyStillTalking = "Bear with me, I'll finish this sentence first."
)

var facts = []string{
	"Honey never spoils; sealed jars from ancient tombs are still edible.",
	"Octopuses have three hearts and blue blood.",
	"A day on Venus lasts longer than its year.",
	"Bananas are berries, but strawberries are not.",
	"The Eiffel Tower grows about fifteen centimeters every summer.",
}

type handlerDeps struct {
	clock     Clock
	navigator Navigator
	// pickFact returns a uniform index into facts.
	pickFact func(n int) int
}

func builtinHandlers(deps handlerDeps) map[intent.Intent]Handler {
	return map[intent.Intent]Handler{
		intent.Greet:    greetHandler(deps.clock),
		intent.Time:     timeHandler(deps.clock),
		intent.OpenSite: openSiteHandler(deps.navigator),
		intent.Calc:     calcHandler,
		intent.Weather:  func(intent.Result) string { return replyWeather },
		intent.Fact:     factHandler(deps.pickFact),
		intent.Quit:     func(intent.Result) string { return replyGoodbye },
		intent.Fallback: func(intent.Result) string { return replyFallback },
	}
}

func greetHandler(clock Clock) Handler {
	return func(intent.Result) string {
		var part string
		switch hour := clock().Hour(); {
		case hour < 12:
			part = "morning"
		case hour < 18:
			part = "afternoon"
		default:
			part = "evening"
		}
		return fmt.Sprintf("Good %s! How can I help?", part)
	}
}

func timeHandler(clock Clock) Handler {
	return func(intent.Result) string {
		now := clock()
		return fmt.Sprintf("It is %s on %s.",
			now.Format("03:04 PM"),
			now.Format("Monday, January 02, 2006"))
	}
}

var sites = []struct {
	keyword string
	name    string
	url     string
}{
	{keyword: "youtube", name: "YouTube", url: "https://youtube.com"},
	{keyword: "github", name: "GitHub", url: "https://github.com"},
	{keyword: "google", name: "Google", url: "https://google.com"},
}

func openSiteHandler(navigator Navigator) Handler {
	return func(result intent.Result) string {
		text := strings.ToLower(result.Text)
		for _, site := range sites {
			if !strings.Contains(text, site.keyword) {
				continue
			}

			if navigator != nil {
				go func(url string) {
					if err := navigator.Navigate(url); err != nil {
						logger.Warn("Failed to open site", "url", url, "error", err)
					}
				}(site.url)
			}
			return fmt.Sprintf("Opening %s.", site.name)
		}
		return replyWhichSite
	}
}

// calcHandler evaluates a whitelisted arithmetic expression. Anything
// outside the allowed character set, or without a single digit, is refused
// before evaluation is attempted.
func calcHandler(result intent.Result) string {
	expr := strings.ToLower(result.Text)
	for _, filler := range []string{"calculate", "what is", "what's"} {
		expr = strings.ReplaceAll(expr, filler, "")
	}
	expr = strings.ReplaceAll(expr, " x ", " * ")
	expr = strings.TrimSpace(expr)

	if !isArithmetic(expr) {
		return replyCannotCalc
	}

	value, err := calc.Evaluate(expr)
	if err != nil {
		return replyCalcFailed
	}
	return fmt.Sprintf("The result is %s.", strconv.FormatFloat(value, 'f', -1, 64))
}

func isArithmetic(expr string) bool {
	hasDigit := false
	for _, char := range expr {
		switch {
		case char >= '0' && char <= '9':
			hasDigit = true
		case strings.ContainsRune("+-*/.()% ", char):
		default:
			return false
		}
	}
	return hasDigit
}

func factHandler(pickFact func(n int) int) Handler {
	return func(intent.Result) string {
		return facts[pickFact(len(facts))]
	}
}
