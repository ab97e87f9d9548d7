package groq

import (
	"context"
	"fmt"
	"log"
)

// KeysExhaustedError — все ключи из пула перепробованы, ни один не сработал.
type KeysExhaustedError struct {
	Op       string
	Attempts int
}

func (e *KeysExhaustedError) Error() string {
	return fmt.Sprintf("all %d groq api keys failed for %s", e.Attempts, e.Op)
}

// tryKeys перебирает ключи строго по порядку пула, по одному за раз.
// Первый успех — сразу выходим. Ошибка ключа логируется (только хвост ключа)
// и не ретраится: один проход по пулу на запрос.
func tryKeys[T any](
	ctx context.Context,
	keys []string,
	op string,
	attempt func(ctx context.Context, apiKey string) (T, error),
) (T, error) {
	var zero T

	for _, key := range keys {
		result, err := attempt(ctx, key)
		if err != nil {
			log.Printf("[groq] %s failed with key ending %s: %v", op, MaskKey(key), err)
			continue
		}
		return result, nil
	}

	return zero, &KeysExhaustedError{Op: op, Attempts: len(keys)}
}
