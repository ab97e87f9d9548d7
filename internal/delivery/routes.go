package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hChat *ChatHandler,
	hSpeech *SpeechHandler,
) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- подсказки ---
		pr.Post("/chat/options", hChat.GenerateOptions)

		// --- расшифровка ---
		pr.Post("/audio/transcribe", hSpeech.Transcribe)
	})
}
