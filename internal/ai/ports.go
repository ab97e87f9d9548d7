package ai

import "context"

// ChatCompleter — провайдер чат-комплишенов (Groq с перебором ключей).
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Service interface {
	// Suggest генерирует 4 варианта ответа на входящее сообщение.
	// Возвращает новую партию и свежий снимок истории (включая эту партию).
	Suggest(ctx context.Context, message string) (options []string, history [][]string, err error)
}
