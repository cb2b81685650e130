package gtts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speakup/internal/speech"
)

func newTestSynth(t *testing.T, handler http.HandlerFunc) (*Synthesizer, *[]string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := New(t.TempDir(), "en-US", 0.8, WithBaseURL(srv.URL), WithPlayer("mpv", "--really-quiet"))
	s.lookPath = func(p string) (string, error) { return "/usr/bin/" + p, nil }

	var played []string
	s.run = func(cmd *exec.Cmd) error {
		played = append(played, cmd.Args...)
		return nil
	}
	return s, &played
}

func TestSpeak_FetchesOnceAndCaches(t *testing.T) {
	var hits atomic.Int32
	s, played := newTestSynth(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "cat", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.Equal(t, "tw-ob", r.URL.Query().Get("client"))
		assert.Equal(t, "0.80", r.URL.Query().Get("ttsspeed"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("ID3fake-mp3"))
	})

	ctx := context.Background()
	require.NoError(t, s.Speak(ctx, "cat"))
	require.NoError(t, s.Speak(ctx, "cat"))

	assert.Equal(t, int32(1), hits.Load())

	clip := filepath.Join(s.cacheDir, "word_en_cat.mp3")
	data, err := os.ReadFile(clip)
	require.NoError(t, err)
	assert.Equal(t, "ID3fake-mp3", string(data))
	assert.Equal(t, []string{"mpv", "--really-quiet", clip, "mpv", "--really-quiet", clip}, *played)
}

func TestSpeak_HTTPErrorLeavesNoClip(t *testing.T) {
	s, played := newTestSynth(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := s.Speak(context.Background(), "dog")
	require.Error(t, err)
	assert.Empty(t, *played)

	entries, err := os.ReadDir(s.cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSpeak_Unavailable(t *testing.T) {
	s := New(t.TempDir(), "en-US", 0.8)
	s.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	assert.False(t, s.Available())
	assert.True(t, errors.Is(s.Speak(context.Background(), "cat"), speech.ErrUnavailable))
}

func TestClipName(t *testing.T) {
	assert.Equal(t, "word_en_ice_cream.mp3", clipName("en", " Ice Cream "))
	assert.Equal(t, "word_es_a-b.mp3", clipName("es", "a/b"))
	assert.Equal(t, "word_en_--x.mp3", clipName("en", "../x"))
}
