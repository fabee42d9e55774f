package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	googleTTSURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

	// Fixed output format: headerless pipeline works with LINEAR16 @ 24 kHz.
	ttsSampleRate = 24000
	languageCode  = "pt-BR"
)

type GoogleTTSClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleTTSClient() *GoogleTTSClient {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		panic("GEMINI_API_KEY not set")
	}

	return &GoogleTTSClient{
		apiKey:  key,
		baseURL: googleTTSURL,
		client:  &http.Client{},
	}
}

type googleTTSRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding   string `json:"audioEncoding"`
		SampleRateHertz int    `json:"sampleRateHertz"`
	} `json:"audioConfig"`
}

// TEXT → SPEECH
func (c *GoogleTTSClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	var payload googleTTSRequest
	payload.Input.Text = text
	payload.Voice.LanguageCode = languageCode
	payload.Voice.Name = voice
	payload.AudioConfig.AudioEncoding = "LINEAR16"
	payload.AudioConfig.SampleRateHertz = ttsSampleRate

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tts request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("google tts error: %s", raw)
	}

	var parsed struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("google tts decode: %w", err)
	}
	if parsed.AudioContent == "" {
		return nil, fmt.Errorf("google tts returned no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("google tts audio decode: %w", err)
	}
	return audio, nil
}
