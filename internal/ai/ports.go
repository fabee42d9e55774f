package ai

import "context"

// Conversation is a language-model chat that keeps its own turn history.
// Send appends the user turn, obtains the model reply and records it, so the
// next Send sees everything said before.
type Conversation interface {
	Send(ctx context.Context, text string) (string, error)
}

// ConversationFactory builds a fresh Conversation bound to a system
// instruction. One is created lazily per session id.
type ConversationFactory interface {
	NewConversation(system string) Conversation
}

// Transcriber converts a WAV payload into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte) (string, error)
}
