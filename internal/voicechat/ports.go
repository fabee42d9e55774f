package voicechat

import (
	"context"

	"github.com/Vovarama1992/voice_relay/internal/ai"
)

// Synthesizer produces audio for one sentence, nil when the sentence could
// not be synthesized (the orchestrator skips it).
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) []byte
}

// Sessions hands out the single conversation bound to a session id.
type Sessions interface {
	GetOrCreate(id, personality string) ai.Conversation
}
