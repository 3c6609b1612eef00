package llm

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yaronha/demo-llm-agent/pkg/config"
)

// WhisperTranscriber converts audio to text with the Whisper API.
type WhisperTranscriber struct {
	client *openai.Client
}

// NewWhisperTranscriber creates a transcriber, or nil when no API key is
// configured.
func NewWhisperTranscriber(cfg config.LLMConfig) *WhisperTranscriber {
	if cfg.APIKey == "" {
		return nil
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &WhisperTranscriber{client: openai.NewClientWithConfig(clientCfg)}
}

// Transcribe returns the text of the audio stream r. filename carries the
// original name so the API can detect the audio format.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, filename string, r io.Reader) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   r,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return resp.Text, nil
}
