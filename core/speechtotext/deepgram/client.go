// Package deepgram implements the listen-once contract against the Deepgram
// live transcription websocket.
package deepgram

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mira-assistant/mira-core/core/audio"
)

// AudioCapture is the microphone device the client streams from during a
// single listen window.
type AudioCapture interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
	EncodingInfo() audio.EncodingInfo
}

type TranscriptionClient struct {
	capture AudioCapture

	conn   *websocket.Conn
	connMu sync.Mutex
}

func NewTranscriptionClient(capture AudioCapture) *TranscriptionClient {
	return &TranscriptionClient{capture: capture}
}

func (c *TranscriptionClient) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
