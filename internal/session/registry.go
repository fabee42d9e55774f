package session

import (
	"sync"

	"github.com/Vovarama1992/voice_relay/internal/ai"
)

// Registry owns every live conversation, one per session id. Entries never
// expire on their own; /clear-session is the only way out.
type Registry struct {
	factory ai.ConversationFactory

	mu       sync.Mutex
	sessions map[string]ai.Conversation
}

func NewRegistry(factory ai.ConversationFactory) *Registry {
	return &Registry{
		factory:  factory,
		sessions: make(map[string]ai.Conversation),
	}
}

// GetOrCreate returns the conversation for the id, creating it on first use.
// The personality only matters at creation time: an existing session keeps
// the instruction it was born with.
func (r *Registry) GetOrCreate(id, personality string) ai.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv, ok := r.sessions[id]; ok {
		return conv
	}

	conv := r.factory.NewConversation(personality)
	r.sessions[id] = conv
	return conv
}

// Clear drops the session and reports whether it existed.
func (r *Registry) Clear(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len reports the number of live sessions. Used in the status endpoint.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
