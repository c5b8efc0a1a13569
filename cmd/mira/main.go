// Command mira runs the assistant in a terminal: a viewport transcript plus
// a text prompt, with voice turns wired through Deepgram when an API key is
// available.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	orchestration "github.com/mira-assistant/mira-core/core"
	"github.com/mira-assistant/mira-core/core/audio/miniaudio"
	"github.com/mira-assistant/mira-core/core/audio/portaudio"
	sttdeepgram "github.com/mira-assistant/mira-core/core/speechtotext/deepgram"
	ttsdeepgram "github.com/mira-assistant/mira-core/core/texttospeech/deepgram"
)

const captureBufferSize = 480

func main() {
	opts := []orchestration.OrchestratorOption{
		orchestration.WithNavigator(orchestration.BrowserNavigator{}),
	}

	if _, ok := os.LookupEnv("DEEPGRAM_API_KEY"); !ok {
		fmt.Fprintln(os.Stderr, "DEEPGRAM_API_KEY is not set, voice is disabled")
	} else if audioClient, err := miniaudio.NewClient(); err == nil {
		defer audioClient.Close()

		synth, err := ttsdeepgram.NewSpeechClient(audioClient, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to set up speech synthesis: %v\n", err)
			os.Exit(1)
		}

		stt := sttdeepgram.NewTranscriptionClient(audioClient)
		defer func() { _ = stt.Close() }()

		opts = append(opts,
			orchestration.WithListener(stt),
			orchestration.WithSpeechSynthesizer(synth),
		)
	} else if captureClient, paErr := portaudio.NewClient(captureBufferSize); paErr == nil {
		// Capture-only fallback: voice input works, replies stay text-only.
		fmt.Fprintf(os.Stderr, "miniaudio unavailable (%v), playback is disabled\n", err)
		defer captureClient.Close()

		stt := sttdeepgram.NewTranscriptionClient(captureClient)
		defer func() { _ = stt.Close() }()

		opts = append(opts, orchestration.WithListener(stt))
	} else {
		fmt.Fprintf(os.Stderr, "no audio devices, voice is disabled: %v\n", paErr)
	}

	orchestrator := orchestration.NewOrchestrator(opts...)

	program := tea.NewProgram(newModel(orchestrator), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
