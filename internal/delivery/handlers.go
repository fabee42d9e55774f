package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/Vovarama1992/voice_relay/internal/voicechat"
)

// VoiceChatService runs one voice turn, pushing sentence chunks to emit.
type VoiceChatService interface {
	Respond(ctx context.Context, req voicechat.Request, emit func(chunk []byte) error) error
}

// SessionStore exposes the session operations the HTTP layer needs: clearing
// a stored session (reporting whether it existed) and counting live ones.
type SessionStore interface {
	Clear(id string) bool
	Len() int
}

type VoiceChatHandler struct {
	service  VoiceChatService
	sessions SessionStore
	log      *logger.ZapLogger
}

func NewVoiceChatHandler(service VoiceChatService, sessions SessionStore, log *logger.ZapLogger) *VoiceChatHandler {
	return &VoiceChatHandler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

func (h *VoiceChatHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (voicechat.Request, bool) {
	var req voicechat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid voicechat body", Error: err})
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// failRespond maps orchestrator errors to generic client responses. Internal
// detail stays in the logs.
func (h *VoiceChatHandler) failRespond(w http.ResponseWriter, err error) {
	if errors.Is(err, voicechat.ErrInvalidRequest) {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "voicechat request rejected", Error: err})
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.log.Log(logger.LogEntry{Level: "error", Message: "voicechat request failed", Error: err})
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Stream emits each synthesized sentence as soon as it is ready. An empty
// transcript produces a zero-length 200 body.
func (h *VoiceChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	flusher, _ := w.(http.Flusher)
	started := false
	emit := func(chunk []byte) error {
		if !started {
			w.Header().Set("Content-Type", "application/octet-stream")
			started = true
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	if err := h.service.Respond(r.Context(), req, emit); err != nil {
		if started {
			// Headers are gone; nothing to do but log.
			h.log.Log(logger.LogEntry{Level: "error", Message: "voicechat stream aborted", Error: err})
			return
		}
		h.failRespond(w, err)
		return
	}

	if !started {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
	}
}

// StreamBuffered returns all sentence chunks concatenated in one body.
func (h *VoiceChatHandler) StreamBuffered(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	emit := func(chunk []byte) error {
		_, err := buf.Write(chunk)
		return err
	}

	if err := h.service.Respond(r.Context(), req, emit); err != nil {
		h.failRespond(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(buf.Bytes())
}

// ClearSession drops a session's history. Always success-shaped: clearing a
// session that does not exist is reported in the message, not the status.
func (h *VoiceChatHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	message := fmt.Sprintf("Session %s not found.", req.SessionID)
	if h.sessions.Clear(req.SessionID) {
		message = fmt.Sprintf("Session %s history cleared.", req.SessionID)
		h.log.Log(logger.LogEntry{Level: "info", Message: "session cleared: " + req.SessionID})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Root is the status endpoint, reporting how many sessions are held in memory.
func (h *VoiceChatHandler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":        "Voice chat server with context memory is running!",
		"activeSessions": h.sessions.Len(),
	})
}
