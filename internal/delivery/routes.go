package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *VoiceChatHandler) {
	r.With(httputil.RecoverMiddleware).Get("/", h.Root)

	// --- voice chat ---
	r.Group(func(vr chi.Router) {
		vr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(30, time.Minute),
		)

		vr.Post("/voicechat-stream", h.Stream)
		vr.Post("/voicechat-stream-buffered", h.StreamBuffered)
		vr.Post("/clear-session", h.ClearSession)
	})
}
