package speech

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vovarama1992/eye_talker/internal/error_notificator"
)

type Service struct {
	stt      STTClient
	archive  AudioArchive // может быть nil
	notifier error_notificator.Notificator
}

func NewService(
	stt STTClient,
	archive AudioArchive,
	notifier error_notificator.Notificator,
) *Service {
	return &Service{
		stt:      stt,
		archive:  archive,
		notifier: notifier,
	}
}

// Transcribe гонит аудио через Groq Whisper (с перебором ключей).
// Пустая строка — валидный результат, текст провайдера не проверяем.
func (s *Service) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	start := time.Now()
	log.Printf("[speech] >>> START transcribe file=%s size=%d", filename, len(audio))

	text, err := s.stt.Transcribe(ctx, audio, filename)
	log.Printf("[speech][%.1fs] whisper done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		s.notifier.Notify(ctx, "transcription", err,
			fmt.Sprintf("Не удалось расшифровать %s: %v", filename, err))
		return "", err
	}

	s.archiveAudio(ctx, audio, filename)

	return text, nil
}

// archiveAudio складывает запись в S3, если он настроен.
// Только best-effort: любая ошибка логируется и на ответ не влияет.
func (s *Service) archiveAudio(ctx context.Context, audio []byte, filename string) {
	if s.archive == nil {
		return
	}

	key := fmt.Sprintf("audio/%s_%s", time.Now().UTC().Format("20060102T150405"), filename)

	url, err := s.archive.PutObject(ctx, key, bytes.NewReader(audio), int64(len(audio)), "application/octet-stream")
	if err != nil {
		log.Printf("[speech] archive fail for %s: %v", filename, err)
		return
	}
	log.Printf("[speech] archived %s -> %s", filename, url)
}
