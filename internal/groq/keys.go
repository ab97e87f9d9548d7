package groq

import (
	"errors"
	"log"
	"os"
	"sync"
)

// ErrNoAPIKeys — в окружении не нашлось ни одного ключа Groq.
var ErrNoAPIKeys = errors.New("no groq api keys configured")

var keyEnvVars = []string{
	"GROQ_API_KEY",
	"GROQ_API_KEY_ALT_1",
	"GROQ_API_KEY_ALT_2",
	"GROQ_API_KEY_ALT_3",
	"GROQ_API_KEY_ALT_4",
}

// KeyPool хранит упорядоченный список ключей Groq.
// Загружается из окружения один раз, при первом обращении.
type KeyPool struct {
	once sync.Once
	keys []string
}

func NewKeyPool() *KeyPool {
	return &KeyPool{}
}

func (p *KeyPool) Keys() ([]string, error) {
	p.once.Do(func() {
		for _, name := range keyEnvVars {
			if v := os.Getenv(name); v != "" {
				p.keys = append(p.keys, v)
			}
		}
		if len(p.keys) == 0 {
			log.Printf("[groq] no api keys found, set GROQ_API_KEY or GROQ_API_KEY_ALT_* in environment")
		}
	})
	if len(p.keys) == 0 {
		return nil, ErrNoAPIKeys
	}
	return p.keys, nil
}

// MaskKey возвращает последние 6 символов ключа — только их можно логировать.
func MaskKey(key string) string {
	if len(key) <= 6 {
		return key
	}
	return key[len(key)-6:]
}
