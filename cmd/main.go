package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/eye_talker/internal/ai"
	"github.com/Vovarama1992/eye_talker/internal/delivery"
	"github.com/Vovarama1992/eye_talker/internal/error_notificator"
	"github.com/Vovarama1992/eye_talker/internal/groq"
	"github.com/Vovarama1992/eye_talker/internal/infra"
	"github.com/Vovarama1992/eye_talker/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
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

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	// пул ключей ленивый: пустой пул — это 500 на запросе, а не падение старта
	keyPool := groq.NewKeyPool()
	groqClient := groq.NewClient(keyPool)

	var audioArchive speech.AudioArchive
	if os.Getenv("S3_ENDPOINT") != "" {
		archive, err := infra.NewS3Client()
		if err != nil {
			log.Printf("audio archive disabled: %v", err)
		} else {
			audioArchive = archive
		}
	}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra()
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	history := ai.NewHistory()

	aiService := ai.NewSuggestionService(
		groqClient,
		history,
		errService,
	)

	speechService := speech.NewService(
		groqClient, // Whisper
		audioArchive,
		errService,
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

	// HANDLERS
	chatHandler := delivery.NewChatHandler(aiService, zl)
	speechHandler := delivery.NewSpeechHandler(speechService, zl)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		chatHandler,
		speechHandler,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "eye_talker",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
