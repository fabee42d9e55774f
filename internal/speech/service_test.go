package speech

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTTS struct {
	calls int
	fail  bool
	audio []byte
}

func (f *fakeTTS) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("quota exceeded")
	}
	return f.audio, nil
}

func TestServiceCachesSynthesis(t *testing.T) {
	tts := &fakeTTS{audio: []byte{1, 2, 3}}
	svc := NewService(tts, NewCache(10, time.Minute), zap.NewNop())

	first := svc.Synthesize(context.Background(), "Olá!", "voice-a")
	require.Equal(t, []byte{1, 2, 3}, first)
	assert.Equal(t, 1, tts.calls)

	second := svc.Synthesize(context.Background(), "Olá!", "voice-a")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, tts.calls, "cache hit must not call the backend")

	// different voice misses the cache
	svc.Synthesize(context.Background(), "Olá!", "voice-b")
	assert.Equal(t, 2, tts.calls)
}

func TestServiceSwallowsFailures(t *testing.T) {
	tts := &fakeTTS{fail: true}
	svc := NewService(tts, NewCache(10, time.Minute), zap.NewNop())

	chunk := svc.Synthesize(context.Background(), "Olá!", "voice-a")
	assert.Nil(t, chunk)

	// failures are not cached
	svc.Synthesize(context.Background(), "Olá!", "voice-a")
	assert.Equal(t, 2, tts.calls)
}
