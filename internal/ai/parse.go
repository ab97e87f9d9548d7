package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const optionCount = 4

var (
	// ErrMalformedOutput — ответ модели не распарсился как JSON.
	ErrMalformedOutput = errors.New("model output is not valid json")
	// ErrBadShape — JSON валидный, но форма не та: не массив из 4 строк.
	ErrBadShape = errors.New("model output has wrong shape")
)

var fenceRe = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*)```")

// extractOptions достаёт ровно 4 строки-варианта из сырого текста модели.
// Терпит обёртку в ```-фенс и в объект с ключом "options", всё остальное —
// отказ целиком: ни одна частично валидная партия не проходит.
func extractOptions(raw string) ([]string, error) {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, "```") {
		if m := fenceRe.FindStringSubmatch(content); m != nil {
			content = strings.TrimSpace(m[1])
		}
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if obj, ok := parsed.(map[string]any); ok {
		if nested, ok := obj["options"]; ok {
			parsed = nested
		}
	}

	list, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array", ErrBadShape)
	}
	if len(list) != optionCount {
		return nil, fmt.Errorf("%w: expected %d options, got %d", ErrBadShape, optionCount, len(list))
	}

	options := make([]string, 0, optionCount)
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: option %T is not a string", ErrBadShape, item)
		}
		options = append(options, strings.TrimSpace(s))
	}
	return options, nil
}
