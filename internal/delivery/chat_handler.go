package delivery

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vovarama1992/eye_talker/internal/ai"
	"github.com/Vovarama1992/go-utils/logger"
)

type ChatHandler struct {
	aiService ai.Service
	log       *logger.ZapLogger
}

func NewChatHandler(aiService ai.Service, log *logger.ZapLogger) *ChatHandler {
	return &ChatHandler{
		aiService: aiService,
		log:       log,
	}
}

func (h *ChatHandler) GenerateOptions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	// валидация до любого похода в Groq
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "missing message", http.StatusBadRequest)
		return
	}

	options, history, err := h.aiService.Suggest(r.Context(), req.Message)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "suggest failed", Error: err})
		http.Error(w, "Failed to generate chat suggestions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"options":        options,
		"recent_history": history,
	})
}
