package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.5-flash"

	// Fixed STT instruction sent alongside the audio blob.
	transcribePrompt = "Transcreva este áudio em português:"
)

// GeminiClient talks to the Generative Language API over plain HTTP. The same
// client serves both transcription (audio part + instruction) and chat
// completions, mirroring how the API exposes both through generateContent.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient() *GeminiClient {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiClient{
		apiKey:  key,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{},
	}
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64 encoded
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) generate(ctx context.Context, system *geminiContent, contents []geminiContent) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents:          contents,
		SystemInstruction: system,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini error: %s", raw)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// VOICE → TEXT
func (c *GeminiClient) Transcribe(ctx context.Context, wav []byte) (string, error) {
	contents := []geminiContent{{
		Role: "user",
		Parts: []geminiPart{
			{Text: transcribePrompt},
			{InlineData: &geminiInlineData{
				MimeType: "audio/wav",
				Data:     base64.StdEncoding.EncodeToString(wav),
			}},
		},
	}}

	text, err := c.generate(ctx, nil, contents)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// NewConversation starts an empty chat bound to the given system instruction.
func (c *GeminiClient) NewConversation(system string) Conversation {
	conv := &geminiConversation{client: c}
	if system != "" {
		conv.system = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	return conv
}

type geminiConversation struct {
	client  *GeminiClient
	system  *geminiContent
	mu      sync.Mutex
	history []geminiContent
}

// Send posts the full history plus the new user turn. The exchange is only
// recorded once the model answered, so a failed call leaves history intact.
func (g *geminiConversation) Send(ctx context.Context, text string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	contents := append(g.historyCopy(), geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: text}},
	})

	reply, err := g.client.generate(ctx, g.system, contents)
	if err != nil {
		return "", err
	}

	g.history = append(contents, geminiContent{
		Role:  "model",
		Parts: []geminiPart{{Text: reply}},
	})
	return reply, nil
}

func (g *geminiConversation) historyCopy() []geminiContent {
	out := make([]geminiContent, len(g.history))
	copy(out, g.history)
	return out
}
