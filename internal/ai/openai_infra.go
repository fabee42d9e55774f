package ai

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the alternate backend (AI_PROVIDER=openai): Whisper for
// transcription, chat completions for the conversation.
type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
	}
}

// VOICE → TEXT
func (c *OpenAIClient) Transcribe(ctx context.Context, wav []byte) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(wav),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

func (c *OpenAIClient) NewConversation(system string) Conversation {
	conv := &openaiConversation{client: c}
	if system != "" {
		conv.messages = append(conv.messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	return conv
}

type openaiConversation struct {
	client   *OpenAIClient
	mu       sync.Mutex
	messages []openai.ChatCompletionMessage
}

func (o *openaiConversation) Send(ctx context.Context, text string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	messages := append(o.messagesCopy(), openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := o.client.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    openai.GPT4oMini,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	reply := resp.Choices[0].Message.Content
	o.messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return reply, nil
}

func (o *openaiConversation) messagesCopy() []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(o.messages))
	copy(out, o.messages)
	return out
}
