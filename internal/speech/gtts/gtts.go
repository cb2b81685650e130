// Package gtts implements speech.Synthesizer with the Google Translate TTS
// endpoint. Clips are cached on disk per word and played with an external
// MP3 player.
package gtts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/speakup/internal/speech"
)

const (
	defaultBaseURL = "https://translate.google.com/translate_tts"
	defaultPlayer  = "mpg123"
	requestTimeout = 10 * time.Second
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var _ speech.Synthesizer = (*Synthesizer)(nil)

// Option is a functional option for configuring a Synthesizer.
type Option func(*Synthesizer)

// WithPlayer sets the MP3 player command and its leading arguments. The clip
// path is appended as the last argument.
func WithPlayer(cmd string, args ...string) Option {
	return func(s *Synthesizer) {
		if cmd != "" {
			s.player = cmd
			s.playerArgs = args
		}
	}
}

// WithBaseURL overrides the TTS endpoint.
func WithBaseURL(u string) Option {
	return func(s *Synthesizer) {
		s.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Synthesizer) {
		s.httpClient = c
	}
}

// Synthesizer fetches and plays cached TTS clips.
type Synthesizer struct {
	cacheDir   string
	lang       string
	rate       float64
	baseURL    string
	player     string
	playerArgs []string
	httpClient *http.Client
	lookPath   func(string) (string, error)
	run        func(cmd *exec.Cmd) error
}

// New creates a Synthesizer that caches clips under cacheDir.
func New(cacheDir, locale string, rate float64, opts ...Option) *Synthesizer {
	if rate <= 0 {
		rate = speech.DefaultRate
	}
	s := &Synthesizer{
		cacheDir:   cacheDir,
		lang:       speech.Language(locale),
		rate:       rate,
		baseURL:    defaultBaseURL,
		player:     defaultPlayer,
		playerArgs: []string{"-q"},
		httpClient: &http.Client{Timeout: requestTimeout},
		lookPath:   exec.LookPath,
		run:        func(cmd *exec.Cmd) error { return cmd.Run() },
	}
	if s.lang == "" {
		s.lang = speech.Language(speech.DefaultLocale)
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Available reports whether the player command is on PATH.
func (s *Synthesizer) Available() bool {
	_, err := s.lookPath(s.player)
	return err == nil && s.cacheDir != ""
}

// Speak fetches (or reuses) the clip for text and plays it.
func (s *Synthesizer) Speak(ctx context.Context, text string) error {
	if !s.Available() {
		return speech.ErrUnavailable
	}
	path, err := s.Clip(ctx, text)
	if err != nil {
		return err
	}

	args := append(append([]string{}, s.playerArgs...), path)
	cmd := exec.CommandContext(ctx, s.player, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := s.run(cmd); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.player, err, msg)
		}
		return fmt.Errorf("%s: %w", s.player, err)
	}
	return nil
}

// Clip returns the path of the cached MP3 for text, downloading it first if
// needed.
func (s *Synthesizer) Clip(ctx context.Context, text string) (string, error) {
	path := filepath.Join(s.cacheDir, clipName(s.lang, text))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create clip cache: %w", err)
	}
	if err := s.download(ctx, text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return path, nil
}

func (s *Synthesizer) download(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", s.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len(text)))
	params.Set("ttsspeed", strconv.FormatFloat(s.rate, 'f', 2, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Write to a temp file first so a failed download never leaves a
	// truncated clip in the cache.
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".clip-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return os.Rename(tmp.Name(), outputPath)
}

// clipName derives a filesystem-safe cache key for a word.
func clipName(lang, text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == '.' || r == ':':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("word_%s_%s.mp3", lang, b.String())
}
