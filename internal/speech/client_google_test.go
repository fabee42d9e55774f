package speech

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleTTSSynthesizeRequestShape(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}

	var got googleTTSRequest
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Goog-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString(pcm),
		})
	}))
	defer srv.Close()

	client := &GoogleTTSClient{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}

	audio, err := client.Synthesize(context.Background(), "Olá, tudo bem?", "pt-BR-Standard-A")
	require.NoError(t, err)
	assert.Equal(t, pcm, audio)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Olá, tudo bem?", got.Input.Text)
	assert.Equal(t, "pt-BR", got.Voice.LanguageCode)
	assert.Equal(t, "pt-BR-Standard-A", got.Voice.Name)
	assert.Equal(t, "LINEAR16", got.AudioConfig.AudioEncoding)
	assert.Equal(t, ttsSampleRate, got.AudioConfig.SampleRateHertz)
}

func TestGoogleTTSSynthesizeBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &GoogleTTSClient{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}

	_, err := client.Synthesize(context.Background(), "Olá.", "pt-BR-Standard-A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGoogleTTSSynthesizeEmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := &GoogleTTSClient{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}

	_, err := client.Synthesize(context.Background(), "Olá.", "pt-BR-Standard-A")
	assert.Error(t, err)
}
