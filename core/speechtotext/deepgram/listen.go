package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/websocket/interfaces"
	"github.com/gorilla/websocket"
	"github.com/mira-assistant/mira-core/core/speechtotext"
)

// ListenOnce captures one utterance from the microphone and returns its
// transcript. It blocks for at most the configured wait-for-speech timeout
// plus the phrase time limit. A timeout, an empty transcript or a transport
// failure yields speechtotext.ErrNoSpeech.
func (c *TranscriptionClient) ListenOnce(ctx context.Context, opts ...speechtotext.ListenOption) (string, error) {
	options := speechtotext.DefaultListenOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.EncodingInfo.IsZero() && c.capture != nil {
		options.EncodingInfo = c.capture.EncodingInfo()
	}

	conn, err := connectWebsocket(connectionOptions{
		sampleRate: options.EncodingInfo.SampleRate,
		encoding:   options.EncodingInfo.Encoding,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open websocket: %w", err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	speechStarted := make(chan struct{}, 1)
	transcriptDone := make(chan string, 1)
	go c.readAndProcessMessages(conn, speechStarted, transcriptDone)

	if err := c.capture.StartCapture(listenCtx, func(audio []byte) {
		if err := c.sendAudio(audio); err != nil {
			log.Printf("Failed to send audio to deepgram: %v", err)
		}
	}); err != nil {
		_ = c.Close()
		return "", fmt.Errorf("failed to start capture: %w", err)
	}
	defer func() {
		if err := c.capture.StopCapture(); err != nil {
			log.Printf("Failed to stop capture: %v", err)
		}
		_ = c.Close()
	}()

	// Wait for speech to start within the timeout bound.
	select {
	case <-speechStarted:
	case <-time.After(options.Timeout):
		return "", speechtotext.ErrNoSpeech
	case <-listenCtx.Done():
		return "", speechtotext.ErrNoSpeech
	}

	// Wait for the utterance to end, truncating at the phrase limit.
	select {
	case transcript := <-transcriptDone:
		if transcript == "" {
			return "", speechtotext.ErrNoSpeech
		}
		return transcript, nil
	case <-time.After(options.PhraseTimeLimit):
		if err := c.stopStream(); err != nil {
			return "", speechtotext.ErrNoSpeech
		}
		select {
		case transcript := <-transcriptDone:
			if transcript == "" {
				return "", speechtotext.ErrNoSpeech
			}
			return transcript, nil
		case <-time.After(2 * time.Second):
			return "", speechtotext.ErrNoSpeech
		}
	case <-listenCtx.Done():
		return "", speechtotext.ErrNoSpeech
	}
}

type connectionOptions struct {
	sampleRate int
	encoding   string
}

func connectWebsocket(options connectionOptions) (*websocket.Conn, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	listenUrl, _ := url.Parse("wss://api.deepgram.com/v1/listen")
	queryParams := listenUrl.Query()
	queryParams.Set("encoding", options.encoding)
	queryParams.Set("sample_rate", strconv.Itoa(options.sampleRate))
	queryParams.Set("channels", "1")
	queryParams.Set("model", "nova-3")
	queryParams.Set("language", "en-US")
	queryParams.Set("smart_format", "true")
	queryParams.Set("utterance_end_ms", "1000")
	queryParams.Set("interim_results", "true")
	queryParams.Set("endpointing", "300")
	queryParams.Set("vad_events", "true")

	listenUrl.RawQuery = queryParams.Encode()
	conn, _, err := websocket.DefaultDialer.Dial(listenUrl.String(),
		http.Header{"Authorization": {"Token " + apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, nil
}

func (c *TranscriptionClient) sendAudio(audio []byte) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("connection closed")
	}

	if err := c.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		return fmt.Errorf("failed to write to deepgram client: %w", err)
	}
	return nil
}

func (c *TranscriptionClient) stopStream() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		if err := c.conn.WriteJSON(struct {
			Type string `json:"type"`
		}{Type: string(api.TypeCloseStreamResponse)}); err != nil {
			return fmt.Errorf("failed to close deepgram stream through websocket: %w", err)
		}
	}
	return nil
}

func (c *TranscriptionClient) readAndProcessMessages(conn *websocket.Conn, speechStarted chan<- struct{}, transcriptDone chan<- string) {
	var accumulated string

	finish := func() {
		transcript := strings.TrimSpace(accumulated)
		accumulated = ""
		select {
		case transcriptDone <- transcript:
		default:
		}
	}

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if err.Error() != "websocket: close 1000 (normal)" {
				log.Printf("Failed to read deepgram websocket message: %v", err)
			}
			finish()
			return
		}
		if msgType == websocket.BinaryMessage {
			continue
		}

		var parsedMsg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &parsedMsg); err != nil {
			log.Printf("Failed to unmarshal deepgram message: %v", err)
			continue
		}

		switch api.TypeResponse(parsedMsg.Type) {
		case api.TypeSpeechStartedResponse:
			select {
			case speechStarted <- struct{}{}:
			default:
			}

		case api.TypeMessageResponse:
			var msgResp api.MessageResponse
			if err := json.Unmarshal(msg, &msgResp); err != nil {
				log.Printf("Failed to unmarshal deepgram message: %v", err)
				continue
			}
			if msgResp.IsFinal && len(msgResp.Channel.Alternatives) > 0 {
				transcript := strings.TrimSpace(msgResp.Channel.Alternatives[0].Transcript)
				if len(transcript) > 0 {
					accumulated += " " + transcript
				}
			}
			if msgResp.SpeechFinal {
				finish()
				return
			}

		case api.TypeUtteranceEndResponse:
			finish()
			return
		}
	}
}
