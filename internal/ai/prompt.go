package ai

import "strings"

const systemPrompt = "You assist individuals who rely on eye-tracking to communicate. " +
	"Given an incoming message, craft four empathetic, conversational reply options that " +
	"help them continue the conversation." +
	"\nGuidelines:\n" +
	"- Each option must be no longer than 40 words.\n" +
	"- Avoid numbered lists; prefix options with natural labels like 'Option A:' etc.\n" +
	"- Keep tone warm, respectful, and collaborative.\n" +
	"- Do not repeat any options that have already been suggested in recent turns.\n" +
	"- Reply in JSON strictly as an array of four strings."

// buildUserPrompt собирает пользовательский промпт: блок дедупликации из
// истории (если она непуста) плюс само сообщение в фиксированном шаблоне.
// Чистая функция, детерминирована.
func buildUserPrompt(message string, history [][]string) string {
	var b strings.Builder

	if len(history) > 0 {
		var flattened []string
		for _, batch := range history {
			flattened = append(flattened, batch...)
		}
		if len(flattened) > 0 {
			b.WriteString("Previously suggested replies to avoid repeating:\n")
			for _, entry := range flattened {
				b.WriteString("- ")
				b.WriteString(entry)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("Incoming message:\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(message))
	b.WriteString("\n\"\"\"\nGenerate four fresh reply options as instructed above.")

	return b.String()
}
