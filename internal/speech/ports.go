package speech

import "context"

// TTSClient converts one sentence into raw audio bytes.
type TTSClient interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}
