package speech

import (
	"context"
	"io"
)

type STTClient interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error) // голос → текст
}

// TranscriptionService — то, что видит delivery-слой.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// AudioArchive — опциональное хранилище исходных записей (S3).
type AudioArchive interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
