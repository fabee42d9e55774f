package speech

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_relay/internal/audio"
)

// synthTimeout bounds every call to the external service so a single hung
// sentence cannot stall the rest of the stream.
const synthTimeout = 30 * time.Second

// Service is the synthesis adapter the orchestrator talks to: cache first,
// external backend on miss. Any backend failure is logged and swallowed —
// a missing chunk means "skip this sentence", never "abort the response".
type Service struct {
	tts   TTSClient
	cache *Cache
	log   *zap.Logger
}

func NewService(tts TTSClient, cache *Cache, log *zap.Logger) *Service {
	return &Service{
		tts:   tts,
		cache: cache,
		log:   log,
	}
}

// Synthesize returns the audio for one sentence, or nil when it could not be
// produced.
func (s *Service) Synthesize(ctx context.Context, text, voice string) []byte {
	if chunk, ok := s.cache.Get(voice, text); ok {
		s.log.Debug("tts cache hit",
			zap.String("voice", voice),
			zap.String("text", text),
		)
		return chunk
	}

	callCtx, cancel := context.WithTimeout(ctx, synthTimeout)
	defer cancel()

	chunk, err := s.tts.Synthesize(callCtx, text, voice)
	if err != nil {
		s.log.Warn("tts synthesis failed",
			zap.String("voice", voice),
			zap.String("text", text),
			zap.Error(err),
		)
		return nil
	}

	s.cache.Put(voice, text, chunk)
	s.log.Info("tts synthesized",
		zap.String("voice", voice),
		zap.String("text", text),
		zap.Duration("length", audio.Duration(chunk, ttsSampleRate)),
	)
	return chunk
}
