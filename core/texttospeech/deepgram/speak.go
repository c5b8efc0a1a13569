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

	"github.com/gorilla/websocket"
	"github.com/mira-assistant/mira-core/core/audio"
	"github.com/mira-assistant/mira-core/core/texttospeech"
)

// SpeakBlocking synthesizes text and plays it through the playback device,
// returning once the audio has fully drained. Callers are expected to
// serialize invocations; the engine holds a speak lock around this call.
func (c *SpeechClient) SpeakBlocking(ctx context.Context, text string, opts ...texttospeech.SpeakOption) error {
	options := texttospeech.DefaultSpeakOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.EncodingInfo.IsZero() && c.playback != nil {
		options.EncodingInfo = c.playback.EncodingInfo()
	}

	voice := c.voice
	if options.Voice != "" {
		voice = deepgramVoice(options.Voice)
	}

	conn, err := connectWebsocket(voice, options.EncodingInfo)
	if err != nil {
		return fmt.Errorf("failed to open websocket: %w", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{Type: "Speak", Text: text}); err != nil {
		return fmt.Errorf("failed to send text to deepgram: %w", err)
	}
	if err := conn.WriteJSON(struct {
		Type string `json:"type"`
	}{Type: "Flush"}); err != nil {
		return fmt.Errorf("failed to flush deepgram buffer: %w", err)
	}

	if err := c.readUntilFlushed(ctx, conn); err != nil {
		return err
	}

	if err := conn.WriteJSON(struct {
		Type string `json:"type"`
	}{Type: "Close"}); err != nil {
		log.Printf("Failed to close deepgram stream: %v", err)
	}

	if err := c.playback.Drain(ctx); err != nil {
		return fmt.Errorf("failed to drain playback: %w", err)
	}
	return nil
}

func (c *SpeechClient) readUntilFlushed(ctx context.Context, conn *websocket.Conn) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if err.Error() == "websocket: close 1000 (normal)" {
				return nil
			}
			return fmt.Errorf("websocket read error: %w", err)
		}

		switch msgType {
		case websocket.BinaryMessage:
			if err := c.playback.SendAudio(msg); err != nil {
				return fmt.Errorf("failed to queue synthesized audio: %w", err)
			}
		case websocket.TextMessage:
			var parsedMsg struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(msg, &parsedMsg); err != nil {
				log.Printf("Failed to unmarshal deepgram message: %v", err)
				continue
			}
			if parsedMsg.Type == "Flushed" {
				return nil
			}
		}
	}
}

func connectWebsocket(voice deepgramVoice, encodingInfo audio.EncodingInfo) (*websocket.Conn, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	urlValues := url.Values{}
	urlValues.Set("encoding", encodingInfo.Encoding)
	urlValues.Set("sample_rate", strconv.Itoa(encodingInfo.SampleRate))
	urlValues.Set("model", string(voice))
	urlValues.Set("container", "none")

	conn, _, err := websocket.DefaultDialer.Dial(
		(&url.URL{
			Scheme: "wss",
			Host:   "api.deepgram.com", Path: "/v1/speak",
			RawQuery: urlValues.Encode(),
		}).String(),
		http.Header{"Authorization": {"token " + apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, nil
}
