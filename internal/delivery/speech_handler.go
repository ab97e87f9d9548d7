package delivery

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Vovarama1992/eye_talker/internal/speech"
	"github.com/Vovarama1992/go-utils/logger"
)

type SpeechHandler struct {
	speechService speech.TranscriptionService
	log           *logger.ZapLogger
}

func NewSpeechHandler(speechService speech.TranscriptionService, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		log:           log,
	}
}

func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	text, err := h.speechService.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"text": text})
}
