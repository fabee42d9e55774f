package speech

import (
	"context"
	"fmt"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITTSClient is the alternate synthesis backend, selected with
// AI_PROVIDER=openai. The pcm response format is 24 kHz mono 16-bit, the same
// shape the Google backend produces.
type OpenAITTSClient struct {
	client *openai.Client
}

func NewOpenAITTSClient() *OpenAITTSClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		panic("OPENAI_API_KEY not set")
	}
	return &OpenAITTSClient{
		client: openai.NewClient(apiKey),
	}
}

func (c *OpenAITTSClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return nil, fmt.Errorf("openai tts request: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai tts read: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("openai tts returned no audio")
	}
	return audio, nil
}
