package groq

import (
	"bytes"
	"context"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	baseURL = "https://api.groq.com/openai/v1"

	defaultChatModel = "llama-3.3-70b-versatile"
	whisperModel     = "whisper-large-v3"

	chatTemperature = 0.75
	chatMaxTokens   = 512
)

// Client — клиент Groq поверх openai-совместимого API.
// Под каждый ключ из пула создаётся свой sdk-клиент, перебор — через tryKeys.
type Client struct {
	pool      *KeyPool
	chatModel string
}

func NewClient(pool *KeyPool) *Client {
	model := os.Getenv("GROQ_CHAT_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &Client{
		pool:      pool,
		chatModel: model,
	}
}

func (c *Client) sdk(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return openai.NewClientWithConfig(cfg)
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	keys, err := c.pool.Keys()
	if err != nil {
		return "", err
	}

	return tryKeys(ctx, keys, "chat", func(ctx context.Context, apiKey string) (string, error) {
		resp, err := c.sdk(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: chatTemperature,
			MaxTokens:   chatMaxTokens,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		log.Printf("[groq] chat ok with key ending %s", MaskKey(apiKey))
		return resp.Choices[0].Message.Content, nil
	})
}

func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	keys, err := c.pool.Keys()
	if err != nil {
		return "", err
	}

	return tryKeys(ctx, keys, "transcription", func(ctx context.Context, apiKey string) (string, error) {
		resp, err := c.sdk(apiKey).CreateTranscription(ctx, openai.AudioRequest{
			Model:    whisperModel,
			FilePath: filename,
			Reader:   bytes.NewReader(audio),
			Format:   openai.AudioResponseFormatJSON,
		})
		if err != nil {
			return "", err
		}
		return resp.Text, nil
	})
}
