package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vovarama1992/eye_talker/internal/error_notificator"
	tiktoken "github.com/pkoukk/tiktoken-go"
)

type SuggestionService struct {
	client   ChatCompleter
	history  *History
	notifier error_notificator.Notificator
}

func NewSuggestionService(
	client ChatCompleter,
	history *History,
	notifier error_notificator.Notificator,
) *SuggestionService {
	return &SuggestionService{
		client:   client,
		history:  history,
		notifier: notifier,
	}
}

func countPromptTokens(prompt string) int {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		log.Printf("tokenizer init fail: %v", err)
		return 0
	}
	return len(enc.Encode(prompt, nil, nil))
}

// === главный метод ===
func (s *SuggestionService) Suggest(
	ctx context.Context,
	message string,
) ([]string, [][]string, error) {

	start := time.Now()
	log.Printf("[ai] >>> START suggest")

	// 1) снимок истории до запроса
	snapshot := s.history.Snapshot()
	log.Printf("[ai] history batches: %d", len(snapshot))

	// 2) промпт
	prompt := buildUserPrompt(message, snapshot)
	log.Printf("[ai] prompt tokens: %d", countPromptTokens(prompt))

	// 3) Groq с перебором ключей
	raw, err := s.client.Complete(ctx, systemPrompt, prompt)
	log.Printf("[ai][%.1fs] groq done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		s.notifier.Notify(ctx, "chat", err,
			fmt.Sprintf("Не удалось сгенерировать варианты ответа: %v", err))
		return nil, nil, err
	}

	// 4) строгая валидация формы; при отказе история не трогается
	options, err := extractOptions(raw)
	if err != nil {
		log.Printf("[ai] bad model output: %v", err)
		return nil, nil, err
	}

	// 5) фиксируем партию и отдаём свежий снимок (уже с ней)
	s.history.Append(options)

	return options, s.history.Snapshot(), nil
}
