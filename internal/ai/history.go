package ai

import "sync"

const historyLimit = 5

// History — окно последних партий подсказок (FIFO, максимум 5).
// Мьютекс держится только на время копирования в памяти, никакого I/O под ним.
type History struct {
	mu      sync.Mutex
	batches [][]string
}

func NewHistory() *History {
	return &History{}
}

// Append добавляет партию как самую новую; при переполнении самая старая уходит.
func (h *History) Append(batch []string) {
	cp := make([]string, len(batch))
	copy(cp, batch)

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.batches) == historyLimit {
		h.batches = h.batches[1:]
	}
	h.batches = append(h.batches, cp)
}

// Snapshot возвращает независимую копию истории, от старых к новым.
func (h *History) Snapshot() [][]string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([][]string, len(h.batches))
	for i, batch := range h.batches {
		cp := make([]string, len(batch))
		copy(cp, batch)
		out[i] = cp
	}
	return out
}
