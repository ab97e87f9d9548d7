package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAiService struct {
	options []string
	history [][]string
	err     error
	called  int
}

func (f *fakeAiService) Suggest(_ context.Context, _ string) ([]string, [][]string, error) {
	f.called++
	return f.options, f.history, f.err
}

type fakeSpeechService struct {
	text string
	err  error
}

func (f *fakeSpeechService) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, f.err
}

func testLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

func newTestRouter(aiSvc *fakeAiService, speechSvc *fakeSpeechService) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r,
		NewChatHandler(aiSvc, testLogger()),
		NewSpeechHandler(speechSvc, testLogger()),
	)
	return r
}

func TestGenerateOptions_Success(t *testing.T) {
	aiSvc := &fakeAiService{
		options: []string{"a", "b", "c", "d"},
		history: [][]string{{"a", "b", "c", "d"}},
	}
	router := newTestRouter(aiSvc, &fakeSpeechService{})

	req := httptest.NewRequest(http.MethodPost, "/chat/options",
		strings.NewReader(`{"message": "I'm feeling tired today."}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Options       []string   `json:"options"`
		RecentHistory [][]string `json:"recent_history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b", "c", "d"}, resp.Options)
	require.Len(t, resp.RecentHistory, 1)
	assert.Equal(t, resp.Options, resp.RecentHistory[0])
}

func TestGenerateOptions_EmptyMessageRejectedBeforeService(t *testing.T) {
	aiSvc := &fakeAiService{}
	router := newTestRouter(aiSvc, &fakeSpeechService{})

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/chat/options", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}

	assert.Zero(t, aiSvc.called)
}

func TestGenerateOptions_ServiceFailureIsGeneric500(t *testing.T) {
	aiSvc := &fakeAiService{err: errors.New("all 5 groq api keys failed for chat")}
	router := newTestRouter(aiSvc, &fakeSpeechService{})

	req := httptest.NewRequest(http.MethodPost, "/chat/options",
		strings.NewReader(`{"message": "hello"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// наружу уходит общий текст, без внутренних деталей
	assert.NotContains(t, rec.Body.String(), "groq")
}

func multipartAudio(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestTranscribe_Success(t *testing.T) {
	router := newTestRouter(&fakeAiService{}, &fakeSpeechService{text: "hello there"})

	body, contentType := multipartAudio(t, "voice.ogg", []byte("audio-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/audio/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello there", resp["text"])
}

func TestTranscribe_MissingFile(t *testing.T) {
	router := newTestRouter(&fakeAiService{}, &fakeSpeechService{})

	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/audio/transcribe", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscribe_ServiceFailure(t *testing.T) {
	router := newTestRouter(&fakeAiService{},
		&fakeSpeechService{err: errors.New("all 5 groq api keys failed for transcription")})

	body, contentType := multipartAudio(t, "voice.ogg", []byte("audio-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/audio/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}
