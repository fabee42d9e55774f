package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_relay/internal/ai"
	"github.com/Vovarama1992/voice_relay/internal/delivery"
	"github.com/Vovarama1992/voice_relay/internal/session"
	"github.com/Vovarama1992/voice_relay/internal/speech"
	"github.com/Vovarama1992/voice_relay/internal/voicechat"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	ttsCacheSize = 100
	ttsCacheTTL  = time.Hour
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		if os.Getenv("GEMINI_API_KEY") == "" {
			log.Fatal("GEMINI_API_KEY is not set")
		}
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			log.Fatal("OPENAI_API_KEY is not set")
		}
	default:
		log.Fatalf("unknown AI_PROVIDER %q (want gemini or openai)", provider)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / LLM / TTS)
	// =========================================================================

	var (
		transcriber ai.Transcriber
		convFactory ai.ConversationFactory
		ttsClient   speech.TTSClient
	)

	if provider == "openai" {
		openAIClient := ai.NewOpenAIClient()
		transcriber = openAIClient
		convFactory = openAIClient
		ttsClient = speech.NewOpenAITTSClient()
	} else {
		geminiClient := ai.NewGeminiClient()
		transcriber = geminiClient
		convFactory = geminiClient
		ttsClient = speech.NewGoogleTTSClient()
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	ttsCache := speech.NewCache(ttsCacheSize, ttsCacheTTL)
	speechService := speech.NewService(ttsClient, ttsCache, baseLogger)

	registry := session.NewRegistry(convFactory)

	voiceChatService := voicechat.NewService(
		transcriber,
		registry,
		speechService,
		baseLogger,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	handler := delivery.NewVoiceChatHandler(voiceChatService, registry, zl)
	delivery.RegisterRoutes(r, handler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr + " (provider: " + provider + ")",
		Service: "voice_relay",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
