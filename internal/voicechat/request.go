package voicechat

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Defaults match the public contract: callers may omit personality and voice.
const (
	DefaultPersonality = "Você é um assistente virtual amigável. Responda de forma concisa."
	DefaultVoice       = "pt-BR-Standard-A"
)

// ErrInvalidRequest marks failures the caller is responsible for. Handlers
// map it to 400, everything else to 500.
var ErrInvalidRequest = errors.New("invalid request")

// Request is one inbound voice-chat turn.
type Request struct {
	AudioBase64 string `json:"audioBase64"`
	SampleRate  int    `json:"sampleRate"`
	Personality string `json:"personality"`
	VoiceName   string `json:"voiceName"`
	SessionID   string `json:"sessionId"`
}

// Validate checks the request shape, applies defaults and returns the decoded
// PCM payload.
func (r *Request) Validate() ([]byte, error) {
	if r.SessionID == "" {
		return nil, fmt.Errorf("%w: missing sessionId", ErrInvalidRequest)
	}
	if r.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sampleRate must be positive", ErrInvalidRequest)
	}

	pcm, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: audioBase64 is not valid base64: %v", ErrInvalidRequest, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("%w: audio payload is empty", ErrInvalidRequest)
	}

	if r.Personality == "" {
		r.Personality = DefaultPersonality
	}
	if r.VoiceName == "" {
		r.VoiceName = DefaultVoice
	}
	return pcm, nil
}
