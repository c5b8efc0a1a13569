package orchestration

import (
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/mira-assistant/mira-core/core/intent"
)

func fixedClock(hour int) Clock {
	return func() time.Time {
		return time.Date(2026, time.August, 31, hour, 5, 0, 0, time.UTC)
	}
}

func TestGreetHandlerBucketsTimeOfDay(t *testing.T) {
	testCases := []struct {
		name     string
		hour     int
		expected string
	}{
		{name: "early morning", hour: 0, expected: "Good morning! How can I help?"},
		{name: "morning", hour: 9, expected: "Good morning! How can I help?"},
		{name: "noon", hour: 12, expected: "Good afternoon! How can I help?"},
		{name: "afternoon", hour: 17, expected: "Good afternoon! How can I help?"},
		{name: "evening", hour: 18, expected: "Good evening! How can I help?"},
		{name: "night", hour: 23, expected: "Good evening! How can I help?"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler := greetHandler(fixedClock(testCase.hour))
			if reply := handler(intent.Result{Intent: intent.Greet}); reply != testCase.expected {
				t.Fatalf("expected %q at hour %d, got %q", testCase.expected, testCase.hour, reply)
			}
		})
	}
}

func TestTimeHandlerFormatsDateAndTwelveHourClock(t *testing.T) {
	handler := timeHandler(fixedClock(16))

	expected := "It is 04:05 PM on Monday, August 31, 2026."
	if reply := handler(intent.Result{Intent: intent.Time}); reply != expected {
		t.Fatalf("expected %q, got %q", expected, reply)
	}
}

type navigatorStub struct {
	urls chan string
}

func newNavigatorStub() *navigatorStub {
	return &navigatorStub{urls: make(chan string, 1)}
}

func (n *navigatorStub) Navigate(url string) error {
	n.urls <- url
	return nil
}

func (n *navigatorStub) await(t *testing.T) string {
	t.Helper()
	select {
	case url := <-n.urls:
		return url
	case <-time.After(time.Second):
		t.Fatalf("expected a navigation request")
		return ""
	}
}

func TestOpenSiteHandlerNavigatesToKnownSites(t *testing.T) {
	testCases := []struct {
		name        string
		text        string
		expectedURL string
		expected    string
	}{
		{name: "youtube", text: "open YouTube please", expectedURL: "https://youtube.com", expected: "Opening YouTube."},
		{name: "github", text: "open github", expectedURL: "https://github.com", expected: "Opening GitHub."},
		{name: "google", text: "go open google", expectedURL: "https://google.com", expected: "Opening Google."},
		{name: "youtube checked before google", text: "open google or youtube", expectedURL: "https://youtube.com", expected: "Opening YouTube."},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			navigator := newNavigatorStub()
			handler := openSiteHandler(navigator)

			reply := handler(intent.Result{Intent: intent.OpenSite, Text: testCase.text})
			if reply != testCase.expected {
				t.Fatalf("expected reply %q, got %q", testCase.expected, reply)
			}
			if url := navigator.await(t); url != testCase.expectedURL {
				t.Fatalf("expected navigation to %q, got %q", testCase.expectedURL, url)
			}
		})
	}
}

func TestOpenSiteHandlerAsksWhenNoSiteMatches(t *testing.T) {
	navigator := newNavigatorStub()
	handler := openSiteHandler(navigator)

	if reply := handler(intent.Result{Intent: intent.OpenSite, Text: "open the pod bay doors"}); reply != replyWhichSite {
		t.Fatalf("expected clarifying question, got %q", reply)
	}

	select {
	case url := <-navigator.urls:
		t.Fatalf("expected no navigation, got %q", url)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCalcHandlerEvaluatesNormalizedExpressions(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "word multiplication", text: "what is 12 x 7", expected: "The result is 84."},
		{name: "calculate prefix", text: "calculate 2 + 2", expected: "The result is 4."},
		{name: "contraction prefix", text: "what's 10 / 4", expected: "The result is 2.5."},
		{name: "parentheses", text: "calculate (1 + 2) * 3", expected: "The result is 9."},
		{name: "modulo", text: "calculate 17 % 5", expected: "The result is 2."},
		{name: "bare expression", text: "3 * 4", expected: "The result is 12."},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if reply := calcHandler(intent.Result{Intent: intent.Calc, Text: testCase.text}); reply != testCase.expected {
				t.Fatalf("expected %q for %q, got %q", testCase.expected, testCase.text, reply)
			}
		})
	}
}

func TestCalcHandlerRefusesNonArithmeticInput(t *testing.T) {
	refused := []string{
		"calculate my taxes",
		"what is the meaning of life",
		"calculate",
		"what is",
		"calculate rm -rf",
		"what is 2 plus 2",
	}

	for _, text := range refused {
		if reply := calcHandler(intent.Result{Intent: intent.Calc, Text: text}); reply != replyCannotCalc {
			t.Fatalf("expected refusal for %q, got %q", text, reply)
		}
	}
}

func TestCalcHandlerContainsEvaluationFailures(t *testing.T) {
	failed := []string{
		"calculate 5 / 0",
		"calculate 17 % 0",
		"calculate (1 + 2",
		"calculate 1 + + 2 +",
	}

	for _, text := range failed {
		if reply := calcHandler(intent.Result{Intent: intent.Calc, Text: text}); reply != replyCalcFailed {
			t.Fatalf("expected failure message for %q, got %q", text, reply)
		}
	}
}

func TestFactHandlerPicksFromTheFixedList(t *testing.T) {
	for i := range facts {
		handler := factHandler(func(int) int { return i })
		if reply := handler(intent.Result{Intent: intent.Fact}); reply != facts[i] {
			t.Fatalf("expected fact %d, got %q", i, reply)
		}
	}

	random := factHandler(func(n int) int { return n - 1 })
	if reply := random(intent.Result{Intent: intent.Fact}); !slices.Contains(facts, reply) {
		t.Fatalf("expected a reply from the fact list, got %q", reply)
	}
}

func TestFactHandlerSupportsConcurrentTurns(t *testing.T) {
	// Concurrent text turns may invoke the same handler simultaneously;
	// the picker behind it must tolerate that (run under -race).
	o := NewOrchestrator()
	handler := o.registry.resolve(intent.Fact)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if reply := handler(intent.Result{Intent: intent.Fact}); !slices.Contains(facts, reply) {
					t.Errorf("expected a reply from the fact list, got %q", reply)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFixedReplyHandlers(t *testing.T) {
	handlers := builtinHandlers(handlerDeps{clock: time.Now, pickFact: func(int) int { return 0 }})

	if reply := handlers[intent.Weather](intent.Result{}); reply != replyWeather {
		t.Fatalf("expected weather placeholder, got %q", reply)
	}
	if reply := handlers[intent.Quit](intent.Result{}); reply != replyGoodbye {
		t.Fatalf("expected farewell, got %q", reply)
	}
	if reply := handlers[intent.Fallback](intent.Result{}); reply != replyFallback {
		t.Fatalf("expected fallback hint, got %q", reply)
	}
}

func TestCalcHandlerRejectionPerformsNoEvaluation(t *testing.T) {
	// Characters outside the whitelist must short-circuit before the
	// evaluator ever runs, even when the rest is a valid expression.
	for _, char := range []string{"a", "$", "=", "_", ";"} {
		text := fmt.Sprintf("calculate 1 + 1 %s", char)
		if reply := calcHandler(intent.Result{Intent: intent.Calc, Text: text}); reply != replyCannotCalc {
			t.Fatalf("expected refusal for %q, got %q", text, reply)
		}
	}
}
