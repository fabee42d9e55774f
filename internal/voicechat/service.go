package voicechat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_relay/internal/ai"
	"github.com/Vovarama1992/voice_relay/internal/audio"
	"github.com/Vovarama1992/voice_relay/internal/text"
)

// Service runs one voice turn end to end: frame audio, transcribe, ask the
// session's conversation, then synthesize the reply sentence by sentence.
type Service struct {
	stt      ai.Transcriber
	sessions Sessions
	synth    Synthesizer
	log      *zap.Logger
}

func NewService(stt ai.Transcriber, sessions Sessions, synth Synthesizer, log *zap.Logger) *Service {
	return &Service{
		stt:      stt,
		sessions: sessions,
		synth:    synth,
		log:      log,
	}
}

// Respond feeds synthesized sentence chunks to emit, in reply order. An empty
// transcript is a success with zero chunks. A sentence whose synthesis failed
// is skipped; emit errors (caller gone) stop the pipeline.
func (s *Service) Respond(ctx context.Context, req Request, emit func(chunk []byte) error) error {
	pcm, err := req.Validate()
	if err != nil {
		return err
	}

	log := s.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("session_id", req.SessionID),
	)

	wav, err := audio.EncodePCM(pcm, req.SampleRate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	transcript, err := s.stt.Transcribe(ctx, wav)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	if transcript == "" {
		log.Info("transcript empty, returning empty stream")
		return nil
	}
	log.Info("audio transcribed", zap.String("transcript", transcript))

	conv := s.sessions.GetOrCreate(req.SessionID, req.Personality)
	reply, err := conv.Send(ctx, transcript)
	if err != nil {
		return fmt.Errorf("conversation turn: %w", err)
	}
	log.Info("reply received", zap.String("reply", reply))

	for sentence := range text.Sentences(reply) {
		// Stop synthesizing once the caller is gone.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		chunk := s.synth.Synthesize(ctx, sentence, req.VoiceName)
		if chunk == nil {
			continue
		}
		log.Debug("sentence synthesized",
			zap.String("sentence", sentence),
			zap.Int("bytes", len(chunk)),
		)
		if err := emit(chunk); err != nil {
			return fmt.Errorf("emit chunk: %w", err)
		}
	}

	return nil
}
