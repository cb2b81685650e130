package whisper

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speakup/internal/speech"
)

func fixedRecording(pcm []byte, err error) RecordFunc {
	return func(context.Context, time.Duration) ([]byte, error) {
		return pcm, err
	}
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/inference" {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, _, err := r.FormFile("file")
			require.NoError(t, err)
			wav, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(wav[0:4]))
			assert.Equal(t, "en", r.FormValue("language"))
			seen = r.Method
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestRecognize(t *testing.T) {
	srv, seen := newServer(t, http.StatusOK, `{"text":" The cat. "}`)
	r := New(srv.URL, WithRecordFunc(fixedRecording(make([]byte, 3200), nil)))

	require.True(t, r.Available())
	got, err := r.Recognize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "The cat.", got)
	assert.Equal(t, http.MethodPost, *seen)
}

func TestRecognize_BlankAudio(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"text":" [BLANK_AUDIO]\n"}`)
	r := New(srv.URL, WithRecordFunc(fixedRecording(make([]byte, 3200), nil)))

	_, err := r.Recognize(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, speech.ErrNoSpeech))

	var ce *speech.CaptureError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "whisper", ce.Backend)
}

func TestRecognize_Errors(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, `oops`)
	recErr := errors.New("device busy")

	tests := []struct {
		name   string
		url    string
		record RecordFunc
		reason string
	}{
		{"recorder fails", srv.URL, fixedRecording(nil, recErr), "could not record"},
		{"empty recording", srv.URL, fixedRecording(nil, nil), "no audio"},
		{"server error", srv.URL, fixedRecording(make([]byte, 320), nil), "could not transcribe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.url, WithRecordFunc(tt.record))
			_, err := r.Recognize(context.Background())

			var ce *speech.CaptureError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tt.reason, ce.Reason)
		})
	}
}

func TestAvailable(t *testing.T) {
	assert.False(t, New("").Available())

	r := New("http://localhost:8080", WithRecorderCommand("no-such-recorder"))
	r.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.False(t, r.Available())

	_, err := r.Recognize(context.Background())
	assert.True(t, errors.Is(err, speech.ErrUnavailable))

	r.lookPath = func(p string) (string, error) { return "/usr/bin/" + p, nil }
	assert.True(t, r.Available())
}

func TestPing(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, "ok")
	assert.NoError(t, New(srv.URL).Ping(context.Background()))
	assert.ErrorIs(t, New("").Ping(context.Background()), errNoServer)
}

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" hello  world ", "hello world"},
		{"[BLANK_AUDIO]", ""},
		{"(wind blowing) dog", "dog"},
		{"sun [music] moon", "sun moon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanTranscript(tt.in), tt.in)
	}
}

func TestEncodeWAV(t *testing.T) {
	pcm := make([]byte, 100)
	wav := encodeWAV(pcm, 16000, 1)

	require.Len(t, wav, 144)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(136), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(32000), binary.LittleEndian.Uint32(wav[28:32]))
	assert.Equal(t, uint32(100), binary.LittleEndian.Uint32(wav[40:44]))
}
